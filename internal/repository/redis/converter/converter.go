//go:generate goverter gen github.com/matjar-tech/catalog-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertDecimal
type RatesConverter interface {
	ToRedisModel(entity *domain.ExchangeRateSnapshot) *RatesRedisModel
	ToEntity(model *RatesRedisModel) *domain.ExchangeRateSnapshot
}

// goverter:converter
type AttributeConverter interface {
	ToRedisModel(entity *domain.AttributeSummary) *AttributeRedisModel
	ToEntity(model *AttributeRedisModel) *domain.AttributeSummary
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertDecimal(d decimal.Decimal) decimal.Decimal {
	return d
}
