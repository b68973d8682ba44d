package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
)

func testTime() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

// nopLogger глушит логи в тестах.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx подменяет pgx.Tx: фиксация и откат всегда успешны,
// остальные методы в тестах не вызываются.
type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

// fakePool выдаёт фиктивные транзакции для менеджера транзакций.
type fakePool struct{}

func (fakePool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return fakeTx{}, nil
}

type fakeProductRepo struct {
	mu            sync.Mutex
	product       *domain.Product
	variantsCount int64
	storedUpdates int
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if f.product == nil || f.product.ID != id {
		return nil, e.ErrProductNotFound
	}
	copied := *f.product
	return &copied, nil
}

func (f *fakeProductRepo) UpdateVariantsCount(ctx context.Context, id int64, count int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.variantsCount = count
	return nil
}

func (f *fakeProductRepo) UpdateStoredPrices(ctx context.Context, product *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.storedUpdates++
	f.product = product
	return nil
}

// fakeVariantRepo хранит варианты в памяти и воспроизводит уникальный
// индекс по (product_id, combination_signature) среди живых записей.
type fakeVariantRepo struct {
	mu       sync.Mutex
	variants []domain.Variant
	nextID   int64

	// duplicateOnce имитирует конкурентную вставку: первая попытка создать
	// комбинацию с этой подписью получает отказ уникального индекса.
	duplicateOnce map[string]bool

	storedUpdates int
}

func newFakeVariantRepo() *fakeVariantRepo {
	return &fakeVariantRepo{nextID: 1, duplicateOnce: map[string]bool{}}
}

func (f *fakeVariantRepo) GetByProductID(ctx context.Context, productID int64) ([]domain.Variant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]domain.Variant, 0)
	for _, v := range f.variants {
		if v.ProductID == productID && v.DeletedAt == nil {
			result = append(result, v)
		}
	}
	return result, nil
}

func (f *fakeVariantRepo) Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sig := variant.Combination().Signature()
	if f.duplicateOnce[sig] {
		// Соперник успел первым: его строка уже зафиксирована,
		// а наша вставка получает отказ уникального индекса.
		f.duplicateOnce[sig] = false
		rival := *variant
		rival.ID = f.nextID
		f.nextID++
		f.variants = append(f.variants, rival)
		return nil, e.ErrDuplicateCombination
	}
	for _, v := range f.variants {
		if v.ProductID == variant.ProductID && v.DeletedAt == nil && v.Combination().Signature() == sig {
			return nil, e.ErrDuplicateCombination
		}
	}

	created := *variant
	created.ID = f.nextID
	f.nextID++
	f.variants = append(f.variants, created)
	return &created, nil
}

func (f *fakeVariantRepo) ExistsBySignature(ctx context.Context, productID int64, signature string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.variants {
		if v.ProductID == productID && v.DeletedAt == nil && v.Combination().Signature() == signature {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVariantRepo) SoftDeleteByProductID(ctx context.Context, productID int64) ([]domain.Variant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deleted := make([]domain.Variant, 0)
	now := testTime()
	for i := range f.variants {
		if f.variants[i].ProductID == productID && f.variants[i].DeletedAt == nil {
			deleted = append(deleted, f.variants[i])
			f.variants[i].DeletedAt = &now
		}
	}
	return deleted, nil
}

func (f *fakeVariantRepo) UpdateStoredPrices(ctx context.Context, variant *domain.Variant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.variants {
		if f.variants[i].ID == variant.ID {
			f.variants[i] = *variant
			f.storedUpdates++
			return nil
		}
	}
	return e.ErrVariantNotFound
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) RequeueStalled(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

// fakeCacheRepo — всегда промах, запись учитывается, но не читается обратно.
// Поведение кэширования проверяется отдельными сценариями через seed-поля.
type fakeCacheRepo struct {
	mu    sync.Mutex
	rates *domain.ExchangeRateSnapshot
	attrs map[int64]*domain.AttributeSummary

	ratesWrites int
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{attrs: map[int64]*domain.AttributeSummary{}}
}

func (f *fakeCacheRepo) GetRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rates, nil
}

func (f *fakeCacheRepo) SetRates(ctx context.Context, snapshot *domain.ExchangeRateSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ratesWrites++
	return nil
}

func (f *fakeCacheRepo) EvictRates(ctx context.Context) error { return nil }

func (f *fakeCacheRepo) GetAttribute(ctx context.Context, id int64) (*domain.AttributeSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attrs[id], nil
}

func (f *fakeCacheRepo) SetAttribute(ctx context.Context, summary *domain.AttributeSummary) error {
	return nil
}

func (f *fakeCacheRepo) EvictAttribute(ctx context.Context, id int64) error { return nil }

type fakeRateProvider struct {
	snapshot *domain.ExchangeRateSnapshot
	err      error
	calls    atomic.Int32
}

func (f *fakeRateProvider) GetCurrentRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

type usageOp struct {
	attributeID int64
	valueID     int64
	increment   bool
}

type fakeCatalog struct {
	mu    sync.Mutex
	attrs map[int64]*domain.AttributeSummary
	ops   []usageOp
	done  chan struct{} // закрывается после каждого изменения счётчика
}

func newFakeCatalog(attrs map[int64]*domain.AttributeSummary) *fakeCatalog {
	return &fakeCatalog{attrs: attrs, done: make(chan struct{}, 128)}
}

func (f *fakeCatalog) GetAttribute(ctx context.Context, id int64) (*domain.AttributeSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	attr, ok := f.attrs[id]
	if !ok {
		return nil, e.ErrAttributeNotFound
	}
	return attr, nil
}

func (f *fakeCatalog) IncrementUsage(ctx context.Context, attributeID, valueID int64) error {
	f.mu.Lock()
	f.ops = append(f.ops, usageOp{attributeID, valueID, true})
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeCatalog) DecrementUsage(ctx context.Context, attributeID, valueID int64) error {
	f.mu.Lock()
	f.ops = append(f.ops, usageOp{attributeID, valueID, false})
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

type fakePromotions struct {
	previews map[int64]PromoPreview
	err      error

	mu     sync.Mutex
	inputs []PromoPreviewInput
}

func (f *fakePromotions) PreviewBatch(ctx context.Context, inputs []PromoPreviewInput) (map[int64]PromoPreview, error) {
	f.mu.Lock()
	f.inputs = append(f.inputs, inputs...)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.previews, nil
}
