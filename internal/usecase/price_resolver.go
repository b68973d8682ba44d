package usecase

import (
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// ResolvedPrice — результат разрешения одного денежного поля в одной валюте.
// Amount == nil означает «поле неприменимо или цена недоступна», а не ноль.
type ResolvedPrice struct {
	Currency    domain.Currency
	Amount      *decimal.Decimal
	ImpliedRate *decimal.Decimal
}

// ResolvePrice выбирает между сохранённым пер-валютным снимком и живой
// конвертацией по курсу. Чистая функция: хранит ровно ноль состояния.
//
// Правила:
//   - код валюты нечувствителен к регистру; неизвестный код закрывается
//     «в отказ» — nil без ошибки, чтобы не конвертировать неизвестно во что;
//   - nil usdAmount даёт nil результат: поле не задано у сущности;
//   - для USD сумма возвращается как есть, без курса;
//   - сохранённый снимок используется дословно; подразумеваемый курс
//     выводится как stored/usd, когда usd ненулевой;
//   - иначе требуется снимок курсов: сумма = usd × курс с округлением
//     по правилам отображения валюты. Без снимка — ErrPriceResolutionFailed,
//     курс здесь никогда не выдумывается.
func ResolvePrice(code string, usdAmount, stored *decimal.Decimal, rates *domain.ExchangeRateSnapshot) (ResolvedPrice, error) {
	cur, ok := domain.NormalizeCurrency(code)
	if !ok {
		return ResolvedPrice{}, nil
	}

	if usdAmount == nil {
		return ResolvedPrice{Currency: cur}, nil
	}
	if usdAmount.IsNegative() {
		return ResolvedPrice{Currency: cur}, e.ErrInvalidMonetaryInput
	}

	if cur == domain.CurrencyUSD {
		amount := *usdAmount
		return ResolvedPrice{Currency: cur, Amount: &amount}, nil
	}

	if stored != nil {
		res := ResolvedPrice{Currency: cur}
		amount := *stored
		res.Amount = &amount
		if !usdAmount.IsZero() {
			implied := stored.Div(*usdAmount)
			res.ImpliedRate = &implied
		}
		return res, nil
	}

	if rates == nil {
		return ResolvedPrice{Currency: cur}, e.ErrPriceResolutionFailed
	}

	rate, ok := rates.RateFor(cur)
	if !ok {
		return ResolvedPrice{Currency: cur}, nil
	}

	amount := cur.Round(usdAmount.Mul(rate))
	return ResolvedPrice{Currency: cur, Amount: &amount, ImpliedRate: &rate}, nil
}
