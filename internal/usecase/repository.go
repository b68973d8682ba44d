package usecase

import (
	"context"
	"time"

	"github.com/matjar-tech/catalog-backend/internal/domain"
)

type VariantRepository interface {
	// GetByProductID возвращает неудалённые варианты товара.
	GetByProductID(ctx context.Context, productID int64) ([]domain.Variant, error)
	// Create вставляет вариант; нарушение уникального индекса по
	// (product_id, combination_signature) возвращается как e.ErrDuplicateCombination.
	Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error)
	ExistsBySignature(ctx context.Context, productID int64, signature string) (bool, error)
	// SoftDeleteByProductID помечает варианты удалёнными и возвращает их
	// для декремента счётчиков использования атрибутов.
	SoftDeleteByProductID(ctx context.Context, productID int64) ([]domain.Variant, error)
	UpdateStoredPrices(ctx context.Context, variant *domain.Variant) error
}

type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	UpdateVariantsCount(ctx context.Context, id int64, count int64) error
	UpdateStoredPrices(ctx context.Context, product *domain.Product) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	// RequeueStalled возвращает в pending события, застрявшие в processing
	// дольше порога: воркер, упавший посреди партии, не теряет события.
	RequeueStalled(ctx context.Context, olderThan time.Duration) (int64, error)
}

// CacheRepository — явная кэш-абстракция с TTL (get/put/evict).
// Внедряется в usecase снаружи, чтобы в тестах подменяться на no-op.
type CacheRepository interface {
	GetRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error)
	SetRates(ctx context.Context, snapshot *domain.ExchangeRateSnapshot) error
	EvictRates(ctx context.Context) error

	GetAttribute(ctx context.Context, id int64) (*domain.AttributeSummary, error)
	SetAttribute(ctx context.Context, summary *domain.AttributeSummary) error
	EvictAttribute(ctx context.Context, id int64) error
}
