package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Ошибки ценового движка
	ErrPriceResolutionFailed   = fmt.Errorf("price resolution failed: no exchange rate available")
	ErrInvalidMonetaryInput    = fmt.Errorf("invalid monetary input")
	ErrRateProviderUnavailable = fmt.Errorf("rate provider unavailable")

	// Ошибки генерации вариантов
	ErrNoAttributesForGeneration = fmt.Errorf("product has no attributes for variant generation")
	ErrDuplicateCombination      = fmt.Errorf("variant combination already exists")
	ErrProductNotFound           = fmt.Errorf("product not found")
	ErrVariantNotFound           = fmt.Errorf("variant not found")
	ErrAttributeNotFound         = fmt.Errorf("attribute not found")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrUnknownCurrency     = fmt.Errorf("unknown currency code")
	ErrNoCurrencies        = fmt.Errorf("no currencies requested")
	ErrInvalidProductID    = fmt.Errorf("invalid product id")
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
