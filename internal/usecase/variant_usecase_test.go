package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type variantFixture struct {
	uc          *VariantUseCase
	productRepo *fakeProductRepo
	variantRepo *fakeVariantRepo
	outboxRepo  *fakeOutboxRepo
	catalog     *fakeCatalog
	cache       *fakeCacheRepo
}

func newVariantFixture(product *domain.Product) *variantFixture {
	attrs := make(map[int64]*domain.AttributeSummary)
	for _, summary := range colorSizeAttributes() {
		s := summary
		attrs[s.ID] = &s
	}

	f := &variantFixture{
		productRepo: &fakeProductRepo{product: product},
		variantRepo: newFakeVariantRepo(),
		outboxRepo:  &fakeOutboxRepo{},
		catalog:     newFakeCatalog(attrs),
		cache:       newFakeCacheRepo(),
	}
	f.uc = NewVariantUC(
		f.productRepo,
		f.variantRepo,
		f.outboxRepo,
		fakePool{},
		f.catalog,
		f.cache,
		nopLogger{},
	)
	f.uc.retryPolicy = fastRetry()
	return f
}

func productWithAttributes(ids ...int64) *domain.Product {
	return &domain.Product{
		ID:           testProductID,
		Name:         "Куртка",
		MoneySet:     domain.MoneySet{BasePriceUSD: dec("20")},
		AttributeIDs: ids,
	}
}

func generateReq(overwrite bool) *GenerateVariantsReq {
	return &GenerateVariantsReq{
		ProductID:    testProductID,
		DefaultPrice: dec("20"),
		DefaultStock: 5,
		Overwrite:    overwrite,
	}
}

// awaitUsageOps дожидается n фоновых изменений счётчиков использования
// и возвращает накопленный журнал операций.
func awaitUsageOps(t *testing.T, catalog *fakeCatalog, n int) []usageOp {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-catalog.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for usage counter op %d of %d", i+1, n)
		}
	}
	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	return append([]usageOp(nil), catalog.ops...)
}

func TestGenerateVariants_CartesianProduct(t *testing.T) {
	f := newVariantFixture(productWithAttributes(1, 2))

	res, err := f.uc.GenerateVariants(context.Background(), generateReq(false))

	require.NoError(t, err)
	assert.Equal(t, int64(6), res.GeneratedCount)
	assert.Equal(t, int64(6), res.TotalCount)
	assert.Equal(t, int64(6), f.productRepo.variantsCount)

	variants, _ := f.variantRepo.GetByProductID(context.Background(), testProductID)
	require.Len(t, variants, 6)
	for _, v := range variants {
		assert.True(t, v.BasePriceUSD.Equal(dec("20")))
		assert.Equal(t, int64(5), v.Stock)
		assert.True(t, v.IsActive)
		assert.True(t, v.IsAvailable)
		assert.Len(t, v.Attributes, 2)
	}

	require.Len(t, f.outboxRepo.events, 1)
	assert.Equal(t, EventVariantsGenerated, f.outboxRepo.events[0].EventType)

	// По паре на вариант, все шесть вариантов, все инкременты.
	ops := awaitUsageOps(t, f.catalog, 12)
	require.Len(t, ops, 12)
	for _, op := range ops {
		assert.True(t, op.increment)
	}
}

func TestGenerateVariants_SecondRunIsIdempotent(t *testing.T) {
	f := newVariantFixture(productWithAttributes(1, 2))

	_, err := f.uc.GenerateVariants(context.Background(), generateReq(false))
	require.NoError(t, err)
	ops := awaitUsageOps(t, f.catalog, 12)

	res, err := f.uc.GenerateVariants(context.Background(), generateReq(false))

	require.NoError(t, err)
	assert.Equal(t, int64(0), res.GeneratedCount, "все комбинации уже существуют")
	assert.Equal(t, int64(6), res.TotalCount)
	assert.Len(t, ops, 12, "повторный запуск не трогает счётчики")
}

func TestGenerateVariants_NoAttributes(t *testing.T) {
	f := newVariantFixture(productWithAttributes())

	_, err := f.uc.GenerateVariants(context.Background(), generateReq(false))

	assert.ErrorIs(t, err, e.ErrNoAttributesForGeneration)
}

func TestGenerateVariants_UnknownAttribute(t *testing.T) {
	f := newVariantFixture(productWithAttributes(1, 99))

	_, err := f.uc.GenerateVariants(context.Background(), generateReq(false))

	assert.ErrorIs(t, err, e.ErrAttributeNotFound)
	assert.Empty(t, f.outboxRepo.events, "генерация не начинается без полного набора атрибутов")
}

func TestGenerateVariants_AttributeCacheHit(t *testing.T) {
	f := newVariantFixture(productWithAttributes(1, 2))
	// Каталог пуст; успех возможен только через кэш.
	for id := range f.catalog.attrs {
		f.cache.attrs[id] = f.catalog.attrs[id]
	}
	f.catalog.attrs = map[int64]*domain.AttributeSummary{}

	res, err := f.uc.GenerateVariants(context.Background(), generateReq(false))

	require.NoError(t, err)
	assert.Equal(t, int64(6), res.GeneratedCount)
}

func TestGenerateVariants_OverwriteRegenerates(t *testing.T) {
	f := newVariantFixture(productWithAttributes(1, 2))

	_, err := f.uc.GenerateVariants(context.Background(), generateReq(false))
	require.NoError(t, err)
	awaitUsageOps(t, f.catalog, 12)

	res, err := f.uc.GenerateVariants(context.Background(), generateReq(true))

	require.NoError(t, err)
	assert.Equal(t, int64(6), res.GeneratedCount, "после перезаписи всё пространство генерируется заново")
	assert.Equal(t, int64(6), res.TotalCount)

	live, _ := f.variantRepo.GetByProductID(context.Background(), testProductID)
	assert.Len(t, live, 6)
	f.variantRepo.mu.Lock()
	assert.Len(t, f.variantRepo.variants, 12, "старые варианты мягко удалены, не стёрты")
	f.variantRepo.mu.Unlock()

	// Перезапись снимает счётчики удалённых пар и заводит новые.
	ops := awaitUsageOps(t, f.catalog, 24)
	var increments, decrements int
	for _, op := range ops[12:] {
		if op.increment {
			increments++
		} else {
			decrements++
		}
	}
	assert.Equal(t, 12, increments)
	assert.Equal(t, 12, decrements)
}

// stalePoolVariantRepo моделирует правила видимости PostgreSQL при read
// committed: чтение без транзакции в контексте идёт через пул и не видит
// незафиксированный мягкий delete, чтение с транзакцией видит собственные
// изменения.
type stalePoolVariantRepo struct {
	*fakeVariantRepo
	stale []domain.Variant
}

func (r *stalePoolVariantRepo) GetByProductID(ctx context.Context, productID int64) ([]domain.Variant, error) {
	if ctx.Value("tx") == nil {
		return append([]domain.Variant(nil), r.stale...), nil
	}
	return r.fakeVariantRepo.GetByProductID(ctx, productID)
}

func TestGenerateVariants_OverwriteSeedsSignaturesThroughTransaction(t *testing.T) {
	f := newVariantFixture(productWithAttributes(1, 2))

	_, err := f.uc.GenerateVariants(context.Background(), generateReq(false))
	require.NoError(t, err)
	awaitUsageOps(t, f.catalog, 12)

	stale, err := f.variantRepo.GetByProductID(context.Background(), testProductID)
	require.NoError(t, err)
	require.Len(t, stale, 6)
	f.uc.variantRepo = &stalePoolVariantRepo{fakeVariantRepo: f.variantRepo, stale: stale}

	res, err := f.uc.GenerateVariants(context.Background(), generateReq(true))

	require.NoError(t, err)
	assert.Equal(t, int64(6), res.GeneratedCount, "подписи старых вариантов читаются внутри транзакции, иначе всё пространство выглядит занятым")
	assert.Equal(t, int64(6), res.TotalCount)

	live, err := f.variantRepo.GetByProductID(context.Background(), testProductID)
	require.NoError(t, err)
	assert.Len(t, live, 6, "после перезаписи товар не остаётся без живых вариантов")
}

func TestGenerateVariants_ConcurrentDuplicateSkipped(t *testing.T) {
	f := newVariantFixture(productWithAttributes(1, 2))
	f.variantRepo.duplicateOnce["1=10|2=20"] = true

	res, err := f.uc.GenerateVariants(context.Background(), generateReq(false))

	require.NoError(t, err, "проигранная гонка за комбинацию не валит партию")
	assert.Equal(t, int64(5), res.GeneratedCount)
	assert.Equal(t, int64(6), res.TotalCount, "чужая вставка входит в итоговое число")
	assert.Equal(t, int64(6), f.productRepo.variantsCount)
}

func TestGenerateVariants_CancelledContextStillCommits(t *testing.T) {
	f := newVariantFixture(productWithAttributes(1, 2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := f.uc.GenerateVariants(ctx, generateReq(false))

	require.NoError(t, err, "отмена прерывает приём комбинаций, но не фиксацию сделанного")
	assert.Equal(t, int64(0), res.GeneratedCount)
	assert.Equal(t, int64(0), res.TotalCount)
	require.Len(t, f.outboxRepo.events, 1, "событие фиксируется и при частичной генерации")
	assert.Equal(t, int64(0), f.productRepo.variantsCount)
}
