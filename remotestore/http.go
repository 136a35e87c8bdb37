package remotestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6/httpclient"
)

// HTTPRequest abstraksi klien HTTP keluar; test menyuntikkan fake.
type HTTPRequest interface {
	Do(ctx context.Context, method, url string, reqBody []byte, headers map[string]string) ([]byte, error)
}

type httpRequest struct {
	client *httpclient.Client
}

// NewHTTPRequest membungkus heimdall httpclient. Gateway spreadsheet tidak
// punya jaminan read-after-write, jadi sesuai kontrak klien: tanpa retry,
// tanpa backoff, hanya timeout.
func NewHTTPRequest(timeout time.Duration) HTTPRequest {
	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(timeout),
		httpclient.WithRetryCount(0),
	)
	return &httpRequest{client: client}
}

func (r *httpRequest) Do(ctx context.Context, method, url string, reqBody []byte, headers map[string]string) ([]byte, error) {
	var body io.Reader
	if reqBody != nil {
		body = bytes.NewBuffer(reqBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return respBody, fmt.Errorf("status tidak OK: %s", resp.Status)
	}
	return respBody, nil
}
