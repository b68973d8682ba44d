package usecase

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountResult — сумма скидки и итоговая цена после её применения.
type DiscountResult struct {
	DiscountAmount decimal.Decimal
	FinalPrice     decimal.Decimal
}

// ApplyDiscount применяет процентную скидку к разрешённой базовой цене.
// Внутри вычислений ничего не округляется: округление происходит один раз
// на границе форматирования, чтобы ошибка не накапливалась при повторных
// пересчётах.
func ApplyDiscount(basePrice, discountPercent decimal.Decimal) DiscountResult {
	if discountPercent.LessThanOrEqual(decimal.Zero) {
		return DiscountResult{
			DiscountAmount: decimal.Zero,
			FinalPrice:     basePrice,
		}
	}

	amount := basePrice.Mul(discountPercent).Div(hundred)
	return DiscountResult{
		DiscountAmount: amount,
		FinalPrice:     basePrice.Sub(amount),
	}
}

// RecomputeDiscount восстанавливает процент и сумму скидки из базовой цены
// и навязанной извне итоговой цены (правило промо-акций), чтобы три поля
// оставались согласованными. При нулевой базе процент определён как ноль.
func RecomputeDiscount(basePrice, overriddenFinal decimal.Decimal) (percent, amount decimal.Decimal) {
	amount = basePrice.Sub(overriddenFinal)
	if basePrice.IsZero() {
		return decimal.Zero, amount
	}
	percent = amount.Div(basePrice).Mul(hundred)
	return percent, amount
}
