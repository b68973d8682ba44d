package usecase

import "context"

type PricingUC interface {
	PriceProduct(ctx context.Context, req *PriceProductReq) (*PriceProductRes, error)
	PriceRange(ctx context.Context, req *PriceProductReq) (*PriceRangeRes, error)
	SyncPrices(ctx context.Context, productID int64) (*SyncPricesRes, error)
}

type VariantUC interface {
	GenerateVariants(ctx context.Context, req *GenerateVariantsReq) (*GenerateVariantsRes, error)
}
