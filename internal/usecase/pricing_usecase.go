package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
	"github.com/matjar-tech/catalog-backend/pkg/retry"
	"github.com/shopspring/decimal"
)

// PricingUseCase реализует агрегацию цен вариантов по валютам,
// вычисление диапазонов и материализацию валютных снимков.
type PricingUseCase struct {
	productRepo ProductRepository
	variantRepo VariantRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	rates       RateProviderInfra
	promotions  PromotionsInfra // nil, когда оценщик промо-правил не подключён
	cacheRepo   CacheRepository
	logger      logger.Logger
	retryPolicy retry.Policy
}

func NewPricingUC(
	productRepo ProductRepository,
	variantRepo VariantRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	rates RateProviderInfra,
	promotions PromotionsInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *PricingUseCase {
	return &PricingUseCase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		rates:       rates,
		promotions:  promotions,
		cacheRepo:   cacheRepo,
		logger:      logger,
		retryPolicy: retry.DefaultPolicy(),
	}
}

// priceSource — единый взгляд на оцениваемую сущность: вариант или
// простой товар без вариантов. Денежные поля у обоих канонические.
type priceSource struct {
	entityID  int64
	isVariant bool
	money     *domain.MoneySet
}

// PriceProduct разрешает цены товара (все варианты или собственную тройку
// полей) в каждом запрошенном коде валюты за один проход.
func (p *PricingUseCase) PriceProduct(ctx context.Context, req *PriceProductReq) (*PriceProductRes, error) {
	const op = "PricingUseCase.PriceProduct"

	currencies := normalizeCurrencies(req.Currencies)

	product, err := p.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	variants, err := p.variantRepo.GetByProductID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	sources := make([]priceSource, 0, len(variants))
	for i := range variants {
		sources = append(sources, priceSource{
			entityID:  variants[i].ID,
			isVariant: true,
			money:     &variants[i].MoneySet,
		})
	}
	if len(sources) == 0 {
		// Режим простого товара: та же логика над собственной тройкой полей.
		sources = append(sources, priceSource{entityID: product.ID, money: &product.MoneySet})
	}

	// Снимок курсов запрашивается не более одного раза и только если хотя бы
	// одной паре (сущность, валюта) действительно нужна живая конвертация.
	// Чисто долларовый запрос не трогает провайдера курсов вовсе.
	var snapshot *domain.ExchangeRateSnapshot
	if needsLiveRates(sources, currencies) {
		snapshot, err = p.fetchRates(ctx)
		if err != nil {
			// Чтение цен деградирует, а не падает: валюта без курса
			// отдаётся с пустой суммой, решать вызывающей стороне.
			p.logger.Warnf("rates unavailable, pricing without conversion: %v", e.Wrap(op, err))
			snapshot = nil
		}
	}

	prices := make(map[domain.Currency][]PricedEntity, len(currencies))
	for _, cur := range currencies {
		entities := make([]PricedEntity, 0, len(sources))
		for _, src := range sources {
			entities = append(entities, PricedEntity{
				EntityID:  src.entityID,
				IsVariant: src.isVariant,
				Amount:    p.priceOne(cur, src.money, snapshot, req.DiscountPercent),
			})
		}
		prices[cur] = entities
	}

	p.applyPromoOverrides(ctx, req, sources, currencies, prices)

	res := &PriceProductRes{
		ProductID:   req.ProductID,
		HasVariants: len(variants) > 0,
		Prices:      prices,
	}
	if snapshot != nil {
		res.RateVersion = snapshot.Version
	}
	return res, nil
}

// PriceRange возвращает min/max итоговой цены по каждой валюте.
// Диапазон считается по ценам после скидки: витрина показывает то,
// что покупатель реально заплатит.
func (p *PricingUseCase) PriceRange(ctx context.Context, req *PriceProductReq) (*PriceRangeRes, error) {
	const op = "PricingUseCase.PriceRange"

	priced, err := p.PriceProduct(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ranges := make(map[domain.Currency]PriceRange, len(priced.Prices))
	for cur, entities := range priced.Prices {
		ranges[cur] = ComputePriceRange(entities)
	}

	return &PriceRangeRes{ProductID: req.ProductID, Ranges: ranges}, nil
}

// ComputePriceRange агрегирует диапазон итоговых цен.
// Пустой вход — валидное отображаемое состояние: явные нули, а не ошибка.
func ComputePriceRange(entities []PricedEntity) PriceRange {
	var r PriceRange
	seen := false
	for _, ent := range entities {
		final := ent.Amount.FinalPrice
		if final == nil {
			continue
		}
		if !seen || final.LessThan(r.MinPrice) {
			r.MinPrice = *final
		}
		if !seen || final.GreaterThan(r.MaxPrice) {
			r.MaxPrice = *final
		}
		seen = true
		if ent.Amount.DiscountPercent.GreaterThan(decimal.Zero) {
			r.HasDiscountedEntity = true
		}
	}
	return r
}

// SyncPrices материализует снимки цен в SAR и YER для всех вариантов товара
// (и его собственной тройки полей) по текущему курсу, помечая записи версией
// снимка. В отличие от чтения цен, недоступность провайдера тут фатальна.
func (p *PricingUseCase) SyncPrices(ctx context.Context, productID int64) (*SyncPricesRes, error) {
	const op = "PricingUseCase.SyncPrices"

	snapshot, err := p.fetchRates(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	variants, err := p.variantRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	syncedAt := snapshot.AsOf
	var synced int64
	for i := range variants {
		materializeSnapshots(&variants[i].MoneySet, snapshot)
		variants[i].ExchangeRateVersion = &snapshot.Version
		variants[i].LastExchangeRateSyncAt = &syncedAt
		if err = p.variantRepo.UpdateStoredPrices(ctx, &variants[i]); err != nil {
			return nil, e.Wrap(op, err)
		}
		synced++
	}

	materializeSnapshots(&product.MoneySet, snapshot)
	product.ExchangeRateVersion = &snapshot.Version
	product.LastExchangeRateSyncAt = &syncedAt
	if err = p.productRepo.UpdateStoredPrices(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(map[string]any{
		"product_id":      productID,
		"synced_variants": synced,
		"rate_version":    snapshot.Version,
		"as_of":           snapshot.AsOf,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if _, err = p.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), EventPricesSynced, productID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &SyncPricesRes{
		ProductID:      productID,
		SyncedVariants: synced,
		RateVersion:    snapshot.Version,
	}, nil
}

// priceOne разрешает все три денежных поля сущности в одной валюте
// и применяет скидку к разрешённой базовой цене.
func (p *PricingUseCase) priceOne(cur domain.Currency, money *domain.MoneySet, snapshot *domain.ExchangeRateSnapshot, discountPercent decimal.Decimal) domain.PricedAmount {
	amount := domain.PricedAmount{Currency: cur}

	base, err := ResolvePrice(string(cur), money.USDAmount(domain.FieldBase), money.StoredAmount(domain.FieldBase, cur), snapshot)
	if err != nil {
		// Цена в этой валюте недоступна; не 5xx, а пустая сумма.
		p.logger.Debugf("base price unresolved for %s: %v", cur, err)
		return amount
	}
	amount.BasePrice = base.Amount
	amount.ExchangeRate = base.ImpliedRate

	if compare, err := ResolvePrice(string(cur), money.USDAmount(domain.FieldCompareAt), money.StoredAmount(domain.FieldCompareAt, cur), snapshot); err == nil {
		amount.CompareAtPrice = compare.Amount
	}
	if cost, err := ResolvePrice(string(cur), money.USDAmount(domain.FieldCost), money.StoredAmount(domain.FieldCost, cur), snapshot); err == nil {
		amount.CostPrice = cost.Amount
	}

	if amount.BasePrice != nil {
		res := ApplyDiscount(*amount.BasePrice, discountPercent)
		final := res.FinalPrice
		amount.DiscountPercent = discountPercent
		if discountPercent.LessThanOrEqual(decimal.Zero) {
			amount.DiscountPercent = decimal.Zero
		}
		amount.DiscountAmount = res.DiscountAmount
		amount.FinalPrice = &final
	}

	return amount
}

// applyPromoOverrides подменяет итоговые цены результатами оценщика
// промо-правил. Отказ оценщика деградирует до цен без промо: листинг товара
// не должен падать из-за недоступности промо-сервиса.
func (p *PricingUseCase) applyPromoOverrides(
	ctx context.Context,
	req *PriceProductReq,
	sources []priceSource,
	currencies []domain.Currency,
	prices map[domain.Currency][]PricedEntity,
) {
	const op = "PricingUseCase.applyPromoOverrides"

	if p.promotions == nil || len(currencies) == 0 {
		return
	}

	// Оценщик отвечает одной ценой на сущность; запрашиваем её в первой
	// запрошенной валюте и восстанавливаем процент от её базовой цены.
	primary := currencies[0]
	inputs := make([]PromoPreviewInput, 0, len(sources))
	for _, src := range sources {
		inputs = append(inputs, PromoPreviewInput{
			EntityID:    src.entityID,
			Currency:    primary,
			Qty:         req.Qty,
			AccountType: req.AccountType,
		})
	}

	previews, err := p.promotions.PreviewBatch(ctx, inputs)
	if err != nil {
		p.logger.Warnf("promotions preview failed, pricing without overrides: %v", e.Wrap(op, err))
		return
	}

	for idx, src := range sources {
		preview, ok := previews[src.entityID]
		if !ok {
			continue
		}

		primaryAmount := &prices[primary][idx].Amount
		if primaryAmount.BasePrice == nil {
			continue
		}

		// Политика: между валютами переносится восстановленный процент,
		// а не абсолютная сумма — абсолютные скидки между валютами не
		// переносятся согласованно. Валютно-специфичные промо-цены этим
		// сознательно игнорируются (кандидат на пересмотр продуктом).
		percent, _ := RecomputeDiscount(*primaryAmount.BasePrice, preview.FinalPrice)

		for _, cur := range currencies {
			amount := &prices[cur][idx].Amount
			if amount.BasePrice == nil {
				continue
			}
			if cur == primary {
				final := preview.FinalPrice
				amount.FinalPrice = &final
				amount.DiscountAmount = amount.BasePrice.Sub(final)
				amount.DiscountPercent = percent
				continue
			}
			res := ApplyDiscount(*amount.BasePrice, percent)
			final := res.FinalPrice
			amount.FinalPrice = &final
			amount.DiscountAmount = res.DiscountAmount
			amount.DiscountPercent = percent
		}
	}
}

// fetchRates возвращает снимок курсов: сперва из кэша, затем от провайдера
// с ограниченным числом повторов. Исчерпание повторов отдаётся как
// e.ErrRateProviderUnavailable.
func (p *PricingUseCase) fetchRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error) {
	const op = "PricingUseCase.fetchRates"

	if cached, err := p.cacheRepo.GetRates(ctx); err != nil {
		p.logger.Warnf("rates cache read failed: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached, nil
	}

	var snapshot *domain.ExchangeRateSnapshot
	err := retry.Do(ctx, p.retryPolicy, func(ctx context.Context) error {
		var err error
		snapshot, err = p.rates.GetCurrentRates(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, e.Wrap(op, err)
		}
		return nil, e.Wrap(op, e.ErrRateProviderUnavailable)
	}

	// Фоновое наполнение кэша: промах не должен замедлять запрос цен.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		if err := p.cacheRepo.SetRates(bgCtx, snapshot); err != nil {
			p.logger.Warnf("failed to cache rates in background: %v", e.Wrap(op, err))
		}
	}()

	return snapshot, nil
}

// needsLiveRates проверяет, нужна ли хоть одной паре (сущность, валюта, поле)
// живая конвертация: не-USD валюта без сохранённого снимка при заданном
// USD-значении поля.
func needsLiveRates(sources []priceSource, currencies []domain.Currency) bool {
	for _, cur := range currencies {
		if cur == domain.CurrencyUSD {
			continue
		}
		for _, src := range sources {
			for _, field := range domain.MoneyFields {
				if src.money.USDAmount(field) == nil {
					continue
				}
				if src.money.StoredAmount(field, cur) == nil {
					return true
				}
			}
		}
	}
	return false
}

// materializeSnapshots записывает вычисленные по курсу суммы во все
// пер-валютные поля набора.
func materializeSnapshots(money *domain.MoneySet, snapshot *domain.ExchangeRateSnapshot) {
	for _, cur := range []domain.Currency{domain.CurrencySAR, domain.CurrencyYER} {
		rate, ok := snapshot.RateFor(cur)
		if !ok {
			continue
		}
		for _, field := range domain.MoneyFields {
			usd := money.USDAmount(field)
			if usd == nil {
				continue
			}
			money.SetStored(field, cur, cur.Round(usd.Mul(rate)))
		}
	}
}

// normalizeCurrencies приводит запрошенные коды к каноническим, отбрасывая
// неизвестные и дубликаты с сохранением порядка. Пустой запрос означает
// «все поддерживаемые валюты».
func normalizeCurrencies(codes []string) []domain.Currency {
	if len(codes) == 0 {
		return domain.Currencies
	}

	seen := make(map[domain.Currency]struct{}, len(codes))
	result := make([]domain.Currency, 0, len(codes))
	for _, code := range codes {
		cur, ok := domain.NormalizeCurrency(code)
		if !ok {
			continue
		}
		if _, dup := seen[cur]; dup {
			continue
		}
		seen[cur] = struct{}{}
		result = append(result, cur)
	}
	return result
}
