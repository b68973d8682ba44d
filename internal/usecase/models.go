package usecase

import (
	"time"

	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// PRICING USECASE

// PriceProductReq — запрос цен товара (или его вариантов) в наборе валют.
type PriceProductReq struct {
	ProductID       int64
	Currencies      []string
	DiscountPercent decimal.Decimal
	// Qty и AccountType передаются оценщику промо-правил как есть.
	Qty         int64
	AccountType string
}

// PricedEntity — разрешённая цена одной сущности (варианта или простого товара).
type PricedEntity struct {
	EntityID  int64
	IsVariant bool
	Amount    domain.PricedAmount
}

// PriceProductRes — цены по валютам. Для валюты без доступной цены
// сущность присутствует с nil-суммами, а не опускается.
type PriceProductRes struct {
	ProductID   int64
	HasVariants bool
	Prices      map[domain.Currency][]PricedEntity
	RateVersion string
}

// PriceRange — диапазон итоговых (после скидки) цен в одной валюте.
type PriceRange struct {
	MinPrice            decimal.Decimal
	MaxPrice            decimal.Decimal
	HasDiscountedEntity bool
}

// PriceRangeRes — диапазоны цен товара по валютам.
type PriceRangeRes struct {
	ProductID int64
	Ranges    map[domain.Currency]PriceRange
}

// SyncPricesRes — итог материализации валютных снимков цен.
type SyncPricesRes struct {
	ProductID      int64
	SyncedVariants int64
	RateVersion    string
}

// VARIANT USECASE

// GenerateVariantsReq — запрос генерации вариантов из комбинаций атрибутов.
// Overwrite — явное разрушительное согласие: все существующие варианты
// товара будут мягко удалены перед регенерацией.
type GenerateVariantsReq struct {
	ProductID    int64
	DefaultPrice decimal.Decimal
	DefaultStock int64
	Overwrite    bool
}

// GenerateVariantsRes — число созданных и итоговое число вариантов.
// При отмене запроса отражает частичную генерацию.
type GenerateVariantsRes struct {
	GeneratedCount int64
	TotalCount     int64
}

// INFRASTRUCTURE

// PromoPreviewInput — одна позиция запроса к оценщику промо-правил.
type PromoPreviewInput struct {
	EntityID    int64
	Currency    domain.Currency
	Qty         int64
	AccountType string
}

// PromoPreview — навязанная промо-правилом итоговая цена.
type PromoPreview struct {
	FinalPrice  decimal.Decimal
	AppliedRule *string
}

// WriteRawMessageReq — запрос на публикацию готового payload в брокер.
// Тип и идентификатор события уходят в заголовки сообщения: потребители
// маршрутизируют variants.generated и prices.synced без разбора payload.
type WriteRawMessageReq struct {
	ProductID int64
	EventID   string
	EventType OutboxEventType
	Payload   []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EventVariantsGenerated OutboxEventType = "variants.generated"
	EventPricesSynced      OutboxEventType = "prices.synced"
)

// OutboxEvent — событие транзакционного outbox.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewPriceProductReq(productID int64, currencies []string, discountPercent decimal.Decimal, qty int64, accountType string) *PriceProductReq {
	return &PriceProductReq{
		ProductID:       productID,
		Currencies:      currencies,
		DiscountPercent: discountPercent,
		Qty:             qty,
		AccountType:     accountType,
	}
}

func NewGenerateVariantsReq(productID int64, defaultPrice decimal.Decimal, defaultStock int64, overwrite bool) *GenerateVariantsReq {
	return &GenerateVariantsReq{
		ProductID:    productID,
		DefaultPrice: defaultPrice,
		DefaultStock: defaultStock,
		Overwrite:    overwrite,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(productID int64, eventID string, eventType OutboxEventType, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		EventID:   eventID,
		EventType: eventType,
		Payload:   payload,
	}
}
