package domain

import "github.com/shopspring/decimal"

// PricedAmount — результат разрешения цены сущности в одной валюте.
// Живёт в рамках запроса, никогда не сохраняется.
type PricedAmount struct {
	Currency Currency

	// BasePrice равен nil, когда цена в этой валюте недоступна
	// (например, нужен курс, а снимка нет). Это «цена неизвестна», а не ноль.
	BasePrice      *decimal.Decimal
	CompareAtPrice *decimal.Decimal
	CostPrice      *decimal.Decimal

	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	FinalPrice      *decimal.Decimal

	// ExchangeRate — фактический или подразумеваемый курс, по которому
	// получена цена. Только для отображения и аудита.
	ExchangeRate *decimal.Decimal
}

// FormattedFinal возвращает итоговую цену строкой по правилам валюты.
// Округление происходит только здесь, на границе форматирования.
func (p *PricedAmount) FormattedFinal() string {
	if p.FinalPrice == nil {
		return ""
	}
	return p.Currency.Format(*p.FinalPrice)
}

// FormattedBase возвращает базовую цену строкой по правилам валюты.
func (p *PricedAmount) FormattedBase() string {
	if p.BasePrice == nil {
		return ""
	}
	return p.Currency.Format(*p.BasePrice)
}
