//go:generate goverter gen github.com/matjar-tech/catalog-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// VariantConverter преобразует сущности Variant между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertNullDecimal
// goverter:extend ConvertPointerDecimal
type VariantConverter interface {
	// goverter:ignore CombinationSignature
	ToModel(entity *domain.Variant) *VariantModel
	ToEntity(model *VariantModel) *domain.Variant
	ToArrEntity(models []*VariantModel) []domain.Variant
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertNullDecimal
// goverter:extend ConvertPointerDecimal
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertStatusString
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertEventTypeString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertDecimal(d decimal.Decimal) decimal.Decimal {
	return d
}

// ConvertNullDecimal переводит отсутствующее значение колонки в nil-поле сущности.
func ConvertNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// ConvertPointerDecimal переводит nil-поле сущности в NULL-значение колонки.
func ConvertPointerDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func ConvertOutboxStatus(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertStatusString(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxEventType(t usecase.OutboxEventType) string {
	return string(t)
}

func ConvertEventTypeString(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}
