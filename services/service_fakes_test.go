package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
	"undangan.link/remotestore"
	"undangan.link/repositories"

	"go.uber.org/zap"
)

func init() {
	configslog.Log = zap.NewNop()
	configslog.SLog = configslog.Log.Sugar()
}

func testConfig() *configs.Config {
	return &configs.Config{
		BaseURL:        "https://undangan.link",
		InvitationPath: "/undangan/hani-pupud",
		CheckoutDelay:  10 * time.Millisecond,
	}
}

// fakeStore remotestore.IClient terprogram untuk test service.
type fakeStore struct {
	mu            sync.Mutex
	doc           models.ContentDocument
	saveOutcome   remotestore.SyncOutcome
	saveErr       error
	savedDocs     []models.ContentDocument
	messages      []models.GuestMessage
	submitOutcome remotestore.SyncOutcome
	submitErr     error
	submitted     []models.GuestMessage
	catalog       []models.InvitationTemplate
	savedCatalogs [][]models.InvitationTemplate
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		doc:           models.DefaultDocument(),
		saveOutcome:   remotestore.OutcomePersisted,
		submitOutcome: remotestore.OutcomePersisted,
	}
}

func (f *fakeStore) FetchDocument(context.Context) models.ContentDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doc.Clone()
}

func (f *fakeStore) SaveDocument(_ context.Context, doc models.ContentDocument) (remotestore.SyncOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr == nil {
		f.savedDocs = append(f.savedDocs, doc.Clone())
	}
	return f.saveOutcome, f.saveErr
}

func (f *fakeStore) FetchGuestMessages(context.Context) []models.GuestMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.GuestMessage(nil), f.messages...)
}

func (f *fakeStore) SubmitGuestMessage(_ context.Context, msg models.GuestMessage) (remotestore.SyncOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr == nil {
		f.submitted = append(f.submitted, msg)
		// Seperti gateway asli: pesan yang diterima masuk ke sheet dan
		// ikut terbaca pada fetch berikutnya.
		f.messages = append(f.messages, msg)
	}
	return f.submitOutcome, f.submitErr
}

func (f *fakeStore) FetchCatalog(context.Context) []models.InvitationTemplate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.InvitationTemplate(nil), f.catalog...)
}

func (f *fakeStore) SaveCatalog(_ context.Context, catalog []models.InvitationTemplate) (remotestore.SyncOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedCatalogs = append(f.savedCatalogs, catalog)
	return f.saveOutcome, f.saveErr
}

var _ remotestore.IClient = (*fakeStore)(nil)

// memQueueRepo antrian di memori dengan semantik filter yang sama dengan
// implementasi SQL-nya.
type memQueueRepo struct {
	mu    sync.Mutex
	items []*models.GuestQueueItem
}

func (m *memQueueRepo) Create(_ context.Context, item *models.GuestQueueItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.CreatedAt = time.Now()
	// Paling-baru-dulu.
	m.items = append([]*models.GuestQueueItem{item}, m.items...)
	return nil
}

func (m *memQueueRepo) FindByID(_ context.Context, id string) (*models.GuestQueueItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memQueueRepo) Update(_ context.Context, item *models.GuestQueueItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == item.ID {
			cp := *item
			m.items[i] = &cp
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *memQueueRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *memQueueRepo) FindFiltered(_ context.Context, params queryparams.ListParams) ([]models.GuestQueueItem, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	params.Validate()

	var out []models.GuestQueueItem
	for _, it := range m.items {
		if q := strings.TrimSpace(params.Query); q != "" {
			nameHit := strings.Contains(strings.ToLower(it.Name), strings.ToLower(q))
			phoneHit := strings.Contains(it.Phone, q)
			if !nameHit && !phoneHit {
				continue
			}
		}
		if params.Status != "" && params.Status != models.QueueFilterAll && string(it.Status) != params.Status {
			continue
		}
		out = append(out, *it)
	}
	return out, int64(len(out)), nil
}

var _ repositories.IGuestQueueRepository = (*memQueueRepo)(nil)

// memTplRepo template pesan di memori.
type memTplRepo struct {
	mu   sync.Mutex
	tpls []*models.MessageTemplate
}

func (m *memTplRepo) Create(_ context.Context, tpl *models.MessageTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tpl.CreatedAt = time.Now()
	m.tpls = append(m.tpls, tpl)
	return nil
}

func (m *memTplRepo) FindByID(_ context.Context, id string) (*models.MessageTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tpls {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memTplRepo) FindAll(context.Context) ([]models.MessageTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.MessageTemplate, 0, len(m.tpls))
	for _, t := range m.tpls {
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTplRepo) Update(_ context.Context, tpl *models.MessageTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tpls {
		if t.ID == tpl.ID {
			cp := *tpl
			m.tpls[i] = &cp
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *memTplRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tpls {
		if t.ID == id {
			m.tpls = append(m.tpls[:i], m.tpls[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *memTplRepo) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.tpls)), nil
}

var _ repositories.IMessageTemplateRepository = (*memTplRepo)(nil)

// memOrderRepo pesanan di memori.
type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*models.TemplateOrder
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*models.TemplateOrder{}}
}

func (m *memOrderRepo) Create(_ context.Context, order *models.TemplateOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *memOrderRepo) FindByID(_ context.Context, id string) (*models.TemplateOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (m *memOrderRepo) MarkPaid(_ context.Context, id string, paidAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok || order.Status != models.OrderStatusPending {
		return repositories.ErrNotFound
	}
	order.Status = models.OrderStatusPaid
	order.PaidAt = &paidAt
	return nil
}

var _ repositories.IOrderRepository = (*memOrderRepo)(nil)
