package domain

import "github.com/shopspring/decimal"

// MoneyField — одно из трёх денежных полей сущности.
type MoneyField int

const (
	FieldBase MoneyField = iota
	FieldCompareAt
	FieldCost
)

// MoneyFields — все денежные поля в каноническом порядке.
var MoneyFields = []MoneyField{FieldBase, FieldCompareAt, FieldCost}

func (f MoneyField) String() string {
	switch f {
	case FieldBase:
		return "base"
	case FieldCompareAt:
		return "compare_at"
	case FieldCost:
		return "cost"
	default:
		return "unknown"
	}
}

// MoneySet — канонический набор денежных полей сущности: базовая цена в USD
// (обязательная), необязательные compare-at и cost, плюс сохранённые
// пер-валютные снимки для SAR и YER. Единственное место, где живут имена
// денежных полей; остальной движок работает через USDAmount/StoredAmount.
type MoneySet struct {
	BasePriceUSD      decimal.Decimal
	CompareAtPriceUSD *decimal.Decimal
	CostPriceUSD      *decimal.Decimal

	BasePriceSAR      *decimal.Decimal
	CompareAtPriceSAR *decimal.Decimal
	CostPriceSAR      *decimal.Decimal

	BasePriceYER      *decimal.Decimal
	CompareAtPriceYER *decimal.Decimal
	CostPriceYER      *decimal.Decimal
}

// USDAmount возвращает USD-значение поля. nil означает «поле не задано»,
// а не нулевую цену.
func (m *MoneySet) USDAmount(f MoneyField) *decimal.Decimal {
	switch f {
	case FieldBase:
		v := m.BasePriceUSD
		return &v
	case FieldCompareAt:
		return m.CompareAtPriceUSD
	case FieldCost:
		return m.CostPriceUSD
	default:
		return nil
	}
}

// StoredAmount возвращает сохранённый пер-валютный снимок поля, если он есть.
func (m *MoneySet) StoredAmount(f MoneyField, c Currency) *decimal.Decimal {
	switch c {
	case CurrencySAR:
		switch f {
		case FieldBase:
			return m.BasePriceSAR
		case FieldCompareAt:
			return m.CompareAtPriceSAR
		case FieldCost:
			return m.CostPriceSAR
		}
	case CurrencyYER:
		switch f {
		case FieldBase:
			return m.BasePriceYER
		case FieldCompareAt:
			return m.CompareAtPriceYER
		case FieldCost:
			return m.CostPriceYER
		}
	}
	return nil
}

// SetStored записывает пер-валютный снимок поля.
func (m *MoneySet) SetStored(f MoneyField, c Currency, v decimal.Decimal) {
	p := &v
	switch c {
	case CurrencySAR:
		switch f {
		case FieldBase:
			m.BasePriceSAR = p
		case FieldCompareAt:
			m.CompareAtPriceSAR = p
		case FieldCost:
			m.CostPriceSAR = p
		}
	case CurrencyYER:
		switch f {
		case FieldBase:
			m.BasePriceYER = p
		case FieldCompareAt:
			m.CompareAtPriceYER = p
		case FieldCost:
			m.CostPriceYER = p
		}
	}
}

// Sanitize приводит отрицательные суммы к нулю вместо отказа,
// чтобы повторная запись оставалась идемпотентной.
func (m *MoneySet) Sanitize() {
	if m.BasePriceUSD.IsNegative() {
		m.BasePriceUSD = decimal.Zero
	}
	for _, p := range []**decimal.Decimal{
		&m.CompareAtPriceUSD, &m.CostPriceUSD,
		&m.BasePriceSAR, &m.CompareAtPriceSAR, &m.CostPriceSAR,
		&m.BasePriceYER, &m.CompareAtPriceYER, &m.CostPriceYER,
	} {
		if *p != nil && (**p).IsNegative() {
			zero := decimal.Zero
			*p = &zero
		}
	}
}
