package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency — код валюты, поддерживаемой ценовым движком.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencySAR Currency = "SAR"
	CurrencyYER Currency = "YER"
)

// Currencies — все поддерживаемые валюты в каноническом порядке.
var Currencies = []Currency{CurrencyUSD, CurrencySAR, CurrencyYER}

// NormalizeCurrency приводит код к верхнему регистру и проверяет его.
// Неизвестный код отклоняется: тихая конвертация в непонятную валюту
// хуже отсутствия цены.
func NormalizeCurrency(code string) (Currency, bool) {
	switch Currency(strings.ToUpper(strings.TrimSpace(code))) {
	case CurrencyUSD:
		return CurrencyUSD, true
	case CurrencySAR:
		return CurrencySAR, true
	case CurrencyYER:
		return CurrencyYER, true
	default:
		return "", false
	}
}

// Exponent возвращает число знаков после запятой при отображении.
// Йеменский риал принято показывать целым числом.
func (c Currency) Exponent() int32 {
	if c == CurrencyYER {
		return 0
	}
	return 2
}

// Round округляет сумму по правилам отображения валюты.
func (c Currency) Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(c.Exponent())
}

// Format форматирует сумму строкой с фиксированным числом знаков.
func (c Currency) Format(d decimal.Decimal) string {
	return d.StringFixed(c.Exponent())
}
