package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateSnapshot — неизменяемый снимок курсов USD к SAR и YER.
// Запрашивается не более одного раза на логический запрос цен.
type ExchangeRateSnapshot struct {
	USDToSAR decimal.Decimal
	USDToYER decimal.Decimal
	Version  string
	AsOf     time.Time
}

func NewExchangeRateSnapshot(usdToSar, usdToYer decimal.Decimal, version string, asOf time.Time) *ExchangeRateSnapshot {
	return &ExchangeRateSnapshot{
		USDToSAR: usdToSar,
		USDToYER: usdToYer,
		Version:  version,
		AsOf:     asOf,
	}
}

// RateFor возвращает курс USD к указанной валюте.
// Для USD курс равен единице; для неизвестной валюты — false.
func (s *ExchangeRateSnapshot) RateFor(c Currency) (decimal.Decimal, bool) {
	switch c {
	case CurrencyUSD:
		return decimal.NewFromInt(1), true
	case CurrencySAR:
		return s.USDToSAR, true
	case CurrencyYER:
		return s.USDToYER, true
	default:
		return decimal.Decimal{}, false
	}
}
