package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProductID int64 = 1

func fastRetry() retry.Policy {
	return retry.Policy{MaxAttempts: 2, BaseBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
}

type pricingFixture struct {
	uc          *PricingUseCase
	productRepo *fakeProductRepo
	variantRepo *fakeVariantRepo
	outboxRepo  *fakeOutboxRepo
	rates       *fakeRateProvider
	cache       *fakeCacheRepo
	promotions  *fakePromotions
}

func newPricingFixture(product *domain.Product, variants []domain.Variant) *pricingFixture {
	f := &pricingFixture{
		productRepo: &fakeProductRepo{product: product},
		variantRepo: newFakeVariantRepo(),
		outboxRepo:  &fakeOutboxRepo{},
		rates:       &fakeRateProvider{snapshot: testSnapshot()},
		cache:       newFakeCacheRepo(),
	}
	f.variantRepo.variants = variants
	f.variantRepo.nextID = int64(len(variants) + 1)

	f.uc = NewPricingUC(
		f.productRepo,
		f.variantRepo,
		f.outboxRepo,
		fakePool{},
		f.rates,
		nil,
		f.cache,
		nopLogger{},
	)
	f.uc.retryPolicy = fastRetry()
	return f
}

func simpleProduct(basePriceUSD string) *domain.Product {
	return &domain.Product{
		ID:       testProductID,
		Name:     "Куртка",
		MoneySet: domain.MoneySet{BasePriceUSD: dec(basePriceUSD)},
	}
}

func variantWith(id int64, basePriceUSD string) domain.Variant {
	return domain.Variant{
		ID:        id,
		ProductID: testProductID,
		Attributes: []domain.AttributePair{
			{AttributeID: 1, ValueID: id * 10},
		},
		MoneySet:  domain.MoneySet{BasePriceUSD: dec(basePriceUSD)},
		CreatedAt: testTime(),
	}
}

func TestPriceProduct_USDOnlyNeverCallsRateProvider(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80"), variantWith(2, "120")})

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"USD"},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(0), f.rates.calls.Load(), "чисто долларовый запрос не ходит за курсами")
	assert.True(t, res.HasVariants)
	require.Len(t, res.Prices[domain.CurrencyUSD], 2)
	assert.True(t, res.Prices[domain.CurrencyUSD][0].Amount.BasePrice.Equal(dec("80")))
}

func TestPriceProduct_StoredSnapshotsAvoidRateProvider(t *testing.T) {
	v := variantWith(1, "100")
	v.BasePriceSAR = decPtr("380")
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{v})

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"SAR"},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(0), f.rates.calls.Load(), "сохранённый снимок покрывает запрос без живого курса")
	amount := res.Prices[domain.CurrencySAR][0].Amount
	require.NotNil(t, amount.BasePrice)
	assert.True(t, amount.BasePrice.Equal(dec("380")), "снимок используется дословно")
}

func TestPriceProduct_FetchesRatesAtMostOncePerRequest(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80"), variantWith(2, "120")})

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"USD", "SAR", "YER"},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), f.rates.calls.Load(), "один снимок на запрос для всех сущностей и валют")
	assert.Equal(t, "v42", res.RateVersion)

	sar := res.Prices[domain.CurrencySAR]
	require.Len(t, sar, 2)
	assert.Equal(t, "300.00", sar[0].Amount.FormattedBase())
	assert.Equal(t, "450.00", sar[1].Amount.FormattedBase())

	yer := res.Prices[domain.CurrencyYER]
	assert.Equal(t, "20000", yer[0].Amount.FormattedBase())
}

func TestPriceProduct_CachedRatesSkipProvider(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), nil)
	f.cache.rates = testSnapshot()

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"SAR"},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(0), f.rates.calls.Load())
	assert.Equal(t, "v42", res.RateVersion)
}

func TestPriceProduct_DegradesWhenRateProviderDown(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80")})
	f.rates.err = fmt.Errorf("connection refused")

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"USD", "SAR"},
	})

	require.NoError(t, err, "чтение цен не падает из-за провайдера курсов")

	usd := res.Prices[domain.CurrencyUSD][0].Amount
	require.NotNil(t, usd.BasePrice)
	assert.True(t, usd.BasePrice.Equal(dec("80")))

	sar := res.Prices[domain.CurrencySAR][0].Amount
	assert.Nil(t, sar.BasePrice, "валюта без курса отдаётся с пустой суммой, а не ошибкой")
	assert.Nil(t, sar.FinalPrice)
	assert.Empty(t, res.RateVersion)
}

func TestPriceProduct_SimpleProductFallback(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), nil)

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"USD"},
	})

	require.NoError(t, err)
	assert.False(t, res.HasVariants)
	require.Len(t, res.Prices[domain.CurrencyUSD], 1)
	entity := res.Prices[domain.CurrencyUSD][0]
	assert.Equal(t, testProductID, entity.EntityID)
	assert.False(t, entity.IsVariant)
}

func TestPriceProduct_DiscountApplied(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), nil)

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:       testProductID,
		Currencies:      []string{"USD"},
		DiscountPercent: dec("10"),
	})

	require.NoError(t, err)
	amount := res.Prices[domain.CurrencyUSD][0].Amount
	assert.True(t, amount.DiscountAmount.Equal(dec("10")))
	require.NotNil(t, amount.FinalPrice)
	assert.True(t, amount.FinalPrice.Equal(dec("90")))
}

func TestPriceProduct_UnknownProduct(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), nil)

	_, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{ProductID: 999})

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestPriceProduct_PromoOverridePropagatesPercent(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80")})
	f.promotions = &fakePromotions{previews: map[int64]PromoPreview{
		1: {FinalPrice: dec("72")},
	}}
	f.uc.promotions = f.promotions

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"USD", "SAR"},
	})

	require.NoError(t, err)

	usd := res.Prices[domain.CurrencyUSD][0].Amount
	require.NotNil(t, usd.FinalPrice)
	assert.True(t, usd.FinalPrice.Equal(dec("72")), "в первичной валюте промо-цена берётся как есть")
	assert.True(t, usd.DiscountPercent.Equal(dec("10")))

	// В остальные валюты переносится восстановленный процент, не сумма.
	sar := res.Prices[domain.CurrencySAR][0].Amount
	require.NotNil(t, sar.BasePrice)
	require.NotNil(t, sar.FinalPrice)
	expected := sar.BasePrice.Mul(dec("0.9"))
	assert.True(t, sar.FinalPrice.Equal(expected))
	assert.True(t, sar.DiscountPercent.Equal(dec("10")))
}

func TestPriceProduct_PromoFailureDegrades(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80")})
	f.promotions = &fakePromotions{err: fmt.Errorf("promotions unavailable")}
	f.uc.promotions = f.promotions

	res, err := f.uc.PriceProduct(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"USD"},
	})

	require.NoError(t, err, "отказ оценщика промо не валит листинг")
	amount := res.Prices[domain.CurrencyUSD][0].Amount
	require.NotNil(t, amount.FinalPrice)
	assert.True(t, amount.FinalPrice.Equal(dec("80")), "цены без промо")
}

func TestPriceRange(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80"), variantWith(2, "120")})

	res, err := f.uc.PriceRange(context.Background(), &PriceProductReq{
		ProductID:  testProductID,
		Currencies: []string{"USD"},
	})

	require.NoError(t, err)
	rng := res.Ranges[domain.CurrencyUSD]
	assert.True(t, rng.MinPrice.Equal(dec("80")))
	assert.True(t, rng.MaxPrice.Equal(dec("120")))
	assert.False(t, rng.HasDiscountedEntity)
}

func TestPriceRange_WithDiscount(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80"), variantWith(2, "120")})

	res, err := f.uc.PriceRange(context.Background(), &PriceProductReq{
		ProductID:       testProductID,
		Currencies:      []string{"USD"},
		DiscountPercent: dec("50"),
	})

	require.NoError(t, err)
	rng := res.Ranges[domain.CurrencyUSD]
	assert.True(t, rng.MinPrice.Equal(dec("40")), "диапазон считается по ценам после скидки")
	assert.True(t, rng.MaxPrice.Equal(dec("60")))
	assert.True(t, rng.HasDiscountedEntity)
}

func TestComputePriceRange_EmptyInput(t *testing.T) {
	rng := ComputePriceRange(nil)

	assert.True(t, rng.MinPrice.IsZero())
	assert.True(t, rng.MaxPrice.IsZero())
	assert.False(t, rng.HasDiscountedEntity)
}

func TestComputePriceRange_SkipsUnresolvedEntities(t *testing.T) {
	price := dec("50")
	rng := ComputePriceRange([]PricedEntity{
		{Amount: domain.PricedAmount{}},
		{Amount: domain.PricedAmount{FinalPrice: &price}},
	})

	assert.True(t, rng.MinPrice.Equal(dec("50")))
	assert.True(t, rng.MaxPrice.Equal(dec("50")))
}

func TestSyncPrices_MaterializesSnapshots(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80"), variantWith(2, "120")})

	res, err := f.uc.SyncPrices(context.Background(), testProductID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.SyncedVariants)
	assert.Equal(t, "v42", res.RateVersion)
	assert.Equal(t, 2, f.variantRepo.storedUpdates)
	assert.Equal(t, 1, f.productRepo.storedUpdates)

	variants, _ := f.variantRepo.GetByProductID(context.Background(), testProductID)
	require.NotNil(t, variants[0].BasePriceSAR)
	assert.True(t, variants[0].BasePriceSAR.Equal(dec("300")))
	require.NotNil(t, variants[0].BasePriceYER)
	assert.True(t, variants[0].BasePriceYER.Equal(dec("20000")))
	require.NotNil(t, variants[0].ExchangeRateVersion)
	assert.Equal(t, "v42", *variants[0].ExchangeRateVersion)

	require.Len(t, f.outboxRepo.events, 1)
	assert.Equal(t, EventPricesSynced, f.outboxRepo.events[0].EventType)
}

func TestSyncPrices_RateProviderFailureIsFatal(t *testing.T) {
	f := newPricingFixture(simpleProduct("100"), []domain.Variant{variantWith(1, "80")})
	f.rates.err = fmt.Errorf("connection refused")

	_, err := f.uc.SyncPrices(context.Background(), testProductID)

	assert.ErrorIs(t, err, e.ErrRateProviderUnavailable)
	assert.Equal(t, 0, f.variantRepo.storedUpdates, "без курса ничего не записывается")
}

func TestNormalizeCurrencies(t *testing.T) {
	assert.Equal(t, domain.Currencies, normalizeCurrencies(nil), "пустой запрос означает все валюты")

	got := normalizeCurrencies([]string{"sar", "SAR", "EUR", "usd"})
	assert.Equal(t, []domain.Currency{domain.CurrencySAR, domain.CurrencyUSD}, got)
}
