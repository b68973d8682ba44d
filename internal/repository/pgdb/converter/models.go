package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttributePairModel — элемент jsonb-массива attributes таблицы variants.
type AttributePairModel struct {
	AttributeID int64  `json:"attribute_id"`
	ValueID     int64  `json:"value_id"`
	Name        string `json:"name"`
	NameEn      string `json:"name_en"`
	Value       string `json:"value"`
	ValueEn     string `json:"value_en"`
}

// VariantModel представляет запись таблицы variants в PostgreSQL.
type VariantModel struct {
	ID                   int64                `db:"id"`
	ProductID            int64                `db:"product_id"`
	Attributes           []AttributePairModel `db:"attributes"`
	CombinationSignature string               `db:"combination_signature"`

	BasePriceUSD      decimal.Decimal     `db:"base_price_usd"`
	CompareAtPriceUSD decimal.NullDecimal `db:"compare_at_price_usd"`
	CostPriceUSD      decimal.NullDecimal `db:"cost_price_usd"`
	BasePriceSAR      decimal.NullDecimal `db:"base_price_sar"`
	CompareAtPriceSAR decimal.NullDecimal `db:"compare_at_price_sar"`
	CostPriceSAR      decimal.NullDecimal `db:"cost_price_sar"`
	BasePriceYER      decimal.NullDecimal `db:"base_price_yer"`
	CompareAtPriceYER decimal.NullDecimal `db:"compare_at_price_yer"`
	CostPriceYER      decimal.NullDecimal `db:"cost_price_yer"`

	ExchangeRateVersion    *string    `db:"exchange_rate_version"`
	LastExchangeRateSyncAt *time.Time `db:"last_exchange_rate_sync_at"`

	Stock       int64 `db:"stock"`
	MinStock    int64 `db:"min_stock"`
	IsActive    bool  `db:"is_active"`
	IsAvailable bool  `db:"is_available"`

	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// ProductModel представляет ценовой срез записи таблицы products в PostgreSQL.
type ProductModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`

	BasePriceUSD      decimal.Decimal     `db:"base_price_usd"`
	CompareAtPriceUSD decimal.NullDecimal `db:"compare_at_price_usd"`
	CostPriceUSD      decimal.NullDecimal `db:"cost_price_usd"`
	BasePriceSAR      decimal.NullDecimal `db:"base_price_sar"`
	CompareAtPriceSAR decimal.NullDecimal `db:"compare_at_price_sar"`
	CostPriceSAR      decimal.NullDecimal `db:"cost_price_sar"`
	BasePriceYER      decimal.NullDecimal `db:"base_price_yer"`
	CompareAtPriceYER decimal.NullDecimal `db:"compare_at_price_yer"`
	CostPriceYER      decimal.NullDecimal `db:"cost_price_yer"`

	ExchangeRateVersion    *string    `db:"exchange_rate_version"`
	LastExchangeRateSyncAt *time.Time `db:"last_exchange_rate_sync_at"`

	AttributeIDs  []int64 `db:"attribute_ids"`
	VariantsCount int64   `db:"variants_count"`

	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
