package http

import (
	"net/http"

	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/internal/usecase"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type PricingHandler struct {
	pricingUsecase usecase.PricingUC
	logger         logger.Logger
}

func NewPricingHandler(pricingUsecase usecase.PricingUC, logger logger.Logger) *PricingHandler {
	return &PricingHandler{pricingUsecase: pricingUsecase, logger: logger}
}

// pricedAmountResponse — цена сущности в одной валюте.
// Null в денежных полях означает «цена недоступна», а не ноль.
type pricedAmountResponse struct {
	BasePrice       *decimal.Decimal `json:"base_price"`
	CompareAtPrice  *decimal.Decimal `json:"compare_at_price,omitempty"`
	CostPrice       *decimal.Decimal `json:"cost_price,omitempty"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount"`
	FinalPrice      *decimal.Decimal `json:"final_price"`
	Formatted       string           `json:"formatted,omitempty"`
	ExchangeRate    *decimal.Decimal `json:"exchange_rate,omitempty"`
}

type pricedEntityResponse struct {
	EntityID  int64                `json:"entity_id"`
	IsVariant bool                 `json:"is_variant"`
	Amount    pricedAmountResponse `json:"amount"`
}

type priceProductResponse struct {
	ProductID   int64                             `json:"product_id"`
	HasVariants bool                              `json:"has_variants"`
	Prices      map[string][]pricedEntityResponse `json:"prices"`
	RateVersion string                            `json:"rate_version,omitempty"`
}

type priceRangeResponse struct {
	MinPrice            decimal.Decimal `json:"min_price"`
	MaxPrice            decimal.Decimal `json:"max_price"`
	HasDiscountedEntity bool            `json:"has_discounted_entity"`
}

type priceRangesResponse struct {
	ProductID int64                         `json:"product_id"`
	Ranges    map[string]priceRangeResponse `json:"ranges"`
}

type syncPricesResponse struct {
	ProductID      int64  `json:"product_id"`
	SyncedVariants int64  `json:"synced_variants"`
	RateVersion    string `json:"rate_version"`
}

// getPrices возвращает цены товара (или его вариантов) в запрошенных валютах.
// Недоступность провайдера курсов не является ошибкой чтения: сущности
// возвращаются с null-ценами в валютах без снимка.
func (p *PricingHandler) getPrices(w http.ResponseWriter, r *http.Request) {
	req, err := parsePriceRequest(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, r.URL.Path, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.pricingUsecase.PriceProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPriceProductResponse(res))
}

// getPriceRange возвращает диапазон итоговых цен по валютам.
func (p *PricingHandler) getPriceRange(w http.ResponseWriter, r *http.Request) {
	req, err := parsePriceRequest(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, r.URL.Path, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.pricingUsecase.PriceRange(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	ranges := make(map[string]priceRangeResponse, len(res.Ranges))
	for currency, rng := range res.Ranges {
		ranges[string(currency)] = priceRangeResponse{
			MinPrice:            rng.MinPrice,
			MaxPrice:            rng.MaxPrice,
			HasDiscountedEntity: rng.HasDiscountedEntity,
		}
	}

	WriteSuccess(w, http.StatusOK, priceRangesResponse{
		ProductID: res.ProductID,
		Ranges:    ranges,
	})
}

// syncPrices материализует валютные снимки цен товара и его вариантов.
// Здесь недоступность провайдера курсов фатальна: синхронизация без
// свежего курса бессмысленна.
func (p *PricingHandler) syncPrices(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, r.URL.Path, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.pricingUsecase.SyncPrices(r.Context(), productID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, syncPricesResponse{
		ProductID:      res.ProductID,
		SyncedVariants: res.SyncedVariants,
		RateVersion:    res.RateVersion,
	})
}

func parsePriceRequest(r *http.Request) (*usecase.PriceProductReq, error) {
	productID, err := parseProductID(r)
	if err != nil {
		return nil, err
	}

	currencies, err := parseCurrencies(r)
	if err != nil {
		return nil, err
	}

	discountPercent, err := parseDiscountPercent(r)
	if err != nil {
		return nil, err
	}

	qty, err := parseQty(r)
	if err != nil {
		return nil, err
	}

	accountType := r.URL.Query().Get("account_type")

	return usecase.NewPriceProductReq(productID, currencies, discountPercent, qty, accountType), nil
}

func toPriceProductResponse(res *usecase.PriceProductRes) priceProductResponse {
	prices := make(map[string][]pricedEntityResponse, len(res.Prices))
	for currency, entities := range res.Prices {
		items := make([]pricedEntityResponse, 0, len(entities))
		for _, entity := range entities {
			items = append(items, pricedEntityResponse{
				EntityID:  entity.EntityID,
				IsVariant: entity.IsVariant,
				Amount:    toPricedAmountResponse(entity.Amount),
			})
		}
		prices[string(currency)] = items
	}

	return priceProductResponse{
		ProductID:   res.ProductID,
		HasVariants: res.HasVariants,
		Prices:      prices,
		RateVersion: res.RateVersion,
	}
}

func toPricedAmountResponse(amount domain.PricedAmount) pricedAmountResponse {
	return pricedAmountResponse{
		BasePrice:       amount.BasePrice,
		CompareAtPrice:  amount.CompareAtPrice,
		CostPrice:       amount.CostPrice,
		DiscountPercent: amount.DiscountPercent,
		DiscountAmount:  amount.DiscountAmount,
		FinalPrice:      amount.FinalPrice,
		Formatted:       amount.FormattedFinal(),
		ExchangeRate:    amount.ExchangeRate,
	}
}
