package usecase

import (
	"context"

	"github.com/matjar-tech/catalog-backend/internal/domain"
)

type RateProviderInfra interface {
	GetCurrentRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error)
}

type AttributeCatalogInfra interface {
	GetAttribute(ctx context.Context, id int64) (*domain.AttributeSummary, error)
	// Счётчики использования — аналитика, а не консистентный журнал:
	// ошибки логируются вызывающей стороной и не прерывают операцию.
	IncrementUsage(ctx context.Context, attributeID, valueID int64) error
	DecrementUsage(ctx context.Context, attributeID, valueID int64) error
}

type PromotionsInfra interface {
	PreviewBatch(ctx context.Context, inputs []PromoPreviewInput) (map[int64]PromoPreview, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
