// Package remotestore klien gateway spreadsheet: pembacaan selalu punya
// fallback (cache lokal lalu dokumen bawaan), penulisan commit lokal dulu
// baru mirror best-effort ke remote. UI tidak pernah diblokir oleh remote.
package remotestore

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/metrics"
	"undangan.link/models"

	"go.uber.org/zap"
)

const (
	actionUpdateSettings = "update_settings"
	actionSubmitMessage  = "submit_message"
	actionGetMessages    = "get_messages"
	actionGetCatalog     = "get_catalog"
	actionUpdateCatalog  = "update_catalog"

	guestbookSheetName = "guestbook"

	defaultTimeout = 10 * time.Second
)

// IClient kontrak klien remote store. Pembacaan tidak pernah mengembalikan
// error ke pemanggil; penulisan melaporkan SyncOutcome.
type IClient interface {
	FetchDocument(ctx context.Context) models.ContentDocument
	SaveDocument(ctx context.Context, doc models.ContentDocument) (SyncOutcome, error)
	FetchGuestMessages(ctx context.Context) []models.GuestMessage
	SubmitGuestMessage(ctx context.Context, msg models.GuestMessage) (SyncOutcome, error)
	FetchCatalog(ctx context.Context) []models.InvitationTemplate
	SaveCatalog(ctx context.Context, catalog []models.InvitationTemplate) (SyncOutcome, error)
}

// Client IClient atas gateway Apps Script + cache lokal.
type Client struct {
	cfg   *configs.Config
	local LocalStore
	http  HTTPRequest
}

// NewClient membuat klien dengan semua dependensi eksplisit.
func NewClient(cfg *configs.Config, local LocalStore, httpReq HTTPRequest) IClient {
	if httpReq == nil {
		httpReq = NewHTTPRequest(defaultTimeout)
	}
	return &Client{cfg: cfg, local: local, http: httpReq}
}

// --- Dokumen konten ---

// FetchDocument mengambil dokumen dari remote; gagal dalam bentuk apa pun
// jatuh ke salinan lokal terakhir, lalu ke dokumen bawaan.
func (c *Client) FetchDocument(ctx context.Context) models.ContentDocument {
	if !c.cfg.RemoteEnabled() {
		return c.documentFallback(ctx)
	}

	body, err := c.http.Do(ctx, "GET", c.cfg.RemoteEndpoint, nil, nil)
	if err != nil {
		configslog.Log.Warn("FetchDocument: remote tidak terjangkau, pakai fallback", zap.Error(err))
		return c.documentFallback(ctx)
	}

	doc, err := decodeDocument(body)
	if err != nil {
		configslog.Log.Warn("FetchDocument: respons remote tidak bisa diparse", zap.Error(err))
		return c.documentFallback(ctx)
	}

	merged := models.MergeWithDefault(doc)

	// Salin ke cache supaya fallback berikutnya memakai data terbaru.
	if payload, err := json.Marshal(merged); err == nil {
		if err := c.local.Put(ctx, models.CacheKeyDocument, payload); err != nil {
			configslog.Log.Warn("FetchDocument: gagal menulis cache lokal", zap.Error(err))
		}
	}
	return merged
}

func (c *Client) documentFallback(ctx context.Context) models.ContentDocument {
	if payload, err := c.local.Get(ctx, models.CacheKeyDocument); err == nil {
		var doc models.ContentDocument
		if err := json.Unmarshal(payload, &doc); err == nil {
			metrics.RemoteFallbackTotal.WithLabelValues("fetch_document", "local").Inc()
			return models.MergeWithDefault(doc)
		}
		configslog.Log.Warn("documentFallback: cache lokal korup, pakai bawaan", zap.Error(err))
	}
	metrics.RemoteFallbackTotal.WithLabelValues("fetch_document", "default").Inc()
	return models.DefaultDocument()
}

// decodeDocument menangani dua bentuk respons gateway: dokumen datar atau
// terbungkus kunci "settings". Ada-tidaknya groomName di level atas jadi
// pembeda.
func decodeDocument(body []byte) (models.ContentDocument, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return models.ContentDocument{}, err
	}
	if _, ok := probe["groomName"]; !ok {
		if settings, ok := probe["settings"]; ok {
			body = settings
		}
	}

	var doc models.ContentDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.ContentDocument{}, err
	}
	return doc, nil
}

// SaveDocument menulis cache lokal secara sinkron dulu (suntingan tidak
// boleh hilang walau jaringan mati), lalu POST fire-and-forget ke remote.
// Kegagalan POST ditelan menjadi OutcomePersistedLocallyOnly.
func (c *Client) SaveDocument(ctx context.Context, doc models.ContentDocument) (SyncOutcome, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		metrics.RemoteSyncTotal.WithLabelValues("save_document", OutcomeFailed.String()).Inc()
		return OutcomeFailed, err
	}
	if err := c.local.Put(ctx, models.CacheKeyDocument, payload); err != nil {
		configslog.Log.Error("SaveDocument: penulisan lokal gagal", zap.Error(err))
		metrics.RemoteSyncTotal.WithLabelValues("save_document", OutcomeFailed.String()).Inc()
		return OutcomeFailed, err
	}

	outcome := c.postAction("save_document", withAction(payload, actionUpdateSettings))
	return outcome, nil
}

// --- Buku tamu ---

// FetchGuestMessages selalu membaca segar dari remote; tidak ada fallback
// lokal untuk buku tamu — kegagalan menghasilkan daftar kosong.
func (c *Client) FetchGuestMessages(ctx context.Context) []models.GuestMessage {
	if !c.cfg.RemoteEnabled() {
		return nil
	}

	body, err := c.http.Do(ctx, "GET", actionURL(c.cfg.RemoteEndpoint, actionGetMessages), nil, nil)
	if err != nil {
		configslog.Log.Warn("FetchGuestMessages: remote tidak terjangkau", zap.Error(err))
		return nil
	}

	var msgs []models.GuestMessage
	if err := json.Unmarshal(body, &msgs); err == nil {
		return msgs
	}
	var wrapped struct {
		Messages []models.GuestMessage `json:"messages"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Messages
	}
	configslog.Log.Warn("FetchGuestMessages: bentuk respons tidak dikenal")
	return nil
}

// SubmitGuestMessage meneruskan entri buku tamu ke remote. Tidak ada
// persistensi lokal untuk pesan; POST yang gagal berarti OutcomeFailed
// sehingga pemanggil bisa memberi tahu tamu (berbeda dengan SaveDocument
// yang punya commit lokal).
func (c *Client) SubmitGuestMessage(ctx context.Context, msg models.GuestMessage) (SyncOutcome, error) {
	if !c.cfg.RemoteEnabled() {
		metrics.GuestbookSubmitTotal.WithLabelValues(OutcomeFailed.String()).Inc()
		return OutcomeFailed, LocalStoreError("remote store belum dikonfigurasi")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		metrics.GuestbookSubmitTotal.WithLabelValues(OutcomeFailed.String()).Inc()
		return OutcomeFailed, err
	}
	body := withAction(payload, actionSubmitMessage)
	body = withField(body, "sheetName", guestbookSheetName)

	if _, err := c.http.Do(context.WithoutCancel(ctx), "POST", c.cfg.RemoteEndpoint, body, jsonHeaders()); err != nil {
		configslog.Log.Warn("SubmitGuestMessage: POST gagal", zap.Error(err))
		metrics.GuestbookSubmitTotal.WithLabelValues(OutcomeFailed.String()).Inc()
		return OutcomeFailed, err
	}
	metrics.GuestbookSubmitTotal.WithLabelValues(OutcomePersisted.String()).Inc()
	return OutcomePersisted, nil
}

// --- Katalog template ---

// FetchCatalog mengambil katalog dari remote dengan fallback cache lokal.
// Daftar kosong dibiarkan kosong; contoh bawaan urusan CatalogService.
func (c *Client) FetchCatalog(ctx context.Context) []models.InvitationTemplate {
	if !c.cfg.RemoteEnabled() {
		return c.catalogFallback(ctx)
	}

	body, err := c.http.Do(ctx, "GET", actionURL(c.cfg.RemoteEndpoint, actionGetCatalog), nil, nil)
	if err != nil {
		configslog.Log.Warn("FetchCatalog: remote tidak terjangkau, pakai fallback", zap.Error(err))
		return c.catalogFallback(ctx)
	}

	catalog, err := decodeCatalog(body)
	if err != nil {
		configslog.Log.Warn("FetchCatalog: respons remote tidak bisa diparse", zap.Error(err))
		return c.catalogFallback(ctx)
	}

	if payload, err := json.Marshal(catalog); err == nil {
		if err := c.local.Put(ctx, models.CacheKeyCatalog, payload); err != nil {
			configslog.Log.Warn("FetchCatalog: gagal menulis cache lokal", zap.Error(err))
		}
	}
	return catalog
}

func (c *Client) catalogFallback(ctx context.Context) []models.InvitationTemplate {
	payload, err := c.local.Get(ctx, models.CacheKeyCatalog)
	if err != nil {
		metrics.RemoteFallbackTotal.WithLabelValues("fetch_catalog", "empty").Inc()
		return nil
	}
	var catalog []models.InvitationTemplate
	if err := json.Unmarshal(payload, &catalog); err != nil {
		configslog.Log.Warn("catalogFallback: cache lokal korup", zap.Error(err))
		return nil
	}
	metrics.RemoteFallbackTotal.WithLabelValues("fetch_catalog", "local").Inc()
	return catalog
}

func decodeCatalog(body []byte) ([]models.InvitationTemplate, error) {
	var catalog []models.InvitationTemplate
	if err := json.Unmarshal(body, &catalog); err == nil {
		return catalog, nil
	}
	var wrapped struct {
		Catalog []models.InvitationTemplate `json:"catalog"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Catalog, nil
}

// SaveCatalog pola yang sama dengan SaveDocument: lokal sebagai sumber
// kebenaran, remote sebagai mirror best-effort.
func (c *Client) SaveCatalog(ctx context.Context, catalog []models.InvitationTemplate) (SyncOutcome, error) {
	payload, err := json.Marshal(catalog)
	if err != nil {
		metrics.RemoteSyncTotal.WithLabelValues("save_catalog", OutcomeFailed.String()).Inc()
		return OutcomeFailed, err
	}
	if err := c.local.Put(ctx, models.CacheKeyCatalog, payload); err != nil {
		configslog.Log.Error("SaveCatalog: penulisan lokal gagal", zap.Error(err))
		metrics.RemoteSyncTotal.WithLabelValues("save_catalog", OutcomeFailed.String()).Inc()
		return OutcomeFailed, err
	}

	body, _ := json.Marshal(map[string]any{
		"action":  actionUpdateCatalog,
		"catalog": json.RawMessage(payload),
	})
	outcome := c.postAction("save_catalog", body)
	return outcome, nil
}

// --- Helper ---

// postAction mengirim POST fire-and-forget; respons tidak diparse (mode
// kirim-saja lintas origin pada sumber aslinya). Context sengaja tidak
// dibatalkan: save yang ditinggal navigasi tetap jalan sampai selesai.
func (c *Client) postAction(operation string, body []byte) SyncOutcome {
	if !c.cfg.RemoteEnabled() {
		metrics.RemoteSyncTotal.WithLabelValues(operation, OutcomePersistedLocallyOnly.String()).Inc()
		return OutcomePersistedLocallyOnly
	}
	if _, err := c.http.Do(context.WithoutCancel(context.Background()), "POST", c.cfg.RemoteEndpoint, body, jsonHeaders()); err != nil {
		configslog.Log.Warn("postAction: POST remote gagal, data aman di lokal",
			zap.String("operation", operation), zap.Error(err))
		metrics.RemoteSyncTotal.WithLabelValues(operation, OutcomePersistedLocallyOnly.String()).Inc()
		return OutcomePersistedLocallyOnly
	}
	metrics.RemoteSyncTotal.WithLabelValues(operation, OutcomePersisted.String()).Inc()
	return OutcomePersisted
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func actionURL(endpoint, action string) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "action=" + action
}

// withAction menyisipkan field action ke payload JSON objek.
func withAction(payload []byte, action string) []byte {
	return withField(payload, "action", action)
}

func withField(payload []byte, key, value string) []byte {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(payload, &m); err != nil {
		return payload
	}
	raw, _ := json.Marshal(value)
	m[key] = raw
	out, err := json.Marshal(m)
	if err != nil {
		return payload
	}
	return out
}

var _ IClient = (*Client)(nil)
