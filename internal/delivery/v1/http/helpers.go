package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrUnknownCurrency):
		return http.StatusBadRequest, e.ErrUnknownCurrency.Error()
	case errors.Is(err, e.ErrNoCurrencies):
		return http.StatusBadRequest, e.ErrNoCurrencies.Error()
	case errors.Is(err, e.ErrNoAttributesForGeneration):
		return http.StatusBadRequest, e.ErrNoAttributesForGeneration.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrRateProviderUnavailable):
		return http.StatusServiceUnavailable, e.ErrRateProviderUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseProductID извлекает ID товара из пути.
func parseProductID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidProductID
	}

	return id, nil
}

// parseCurrencies разбирает query-параметр currencies вида "USD,SAR".
// Пустой параметр означает все поддерживаемые валюты; неизвестный
// код отклоняется целиком, а не пропускается молча.
func parseCurrencies(r *http.Request) ([]string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("currencies"))
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	currencies := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.TrimSpace(part)
		if code == "" {
			continue
		}

		if _, ok := domain.NormalizeCurrency(code); !ok {
			return nil, e.ErrUnknownCurrency
		}

		currencies = append(currencies, code)
	}

	if len(currencies) == 0 {
		return nil, e.ErrNoCurrencies
	}

	return currencies, nil
}

// parseDiscountPercent разбирает query-параметр discount_percent.
// Допускается [0, 100] с точностью до двух знаков.
func parseDiscountPercent(r *http.Request) (decimal.Decimal, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("discount_percent"))
	if raw == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return decimal.Zero, e.ErrPricePrecision
	}

	return d, nil
}

// parseQty разбирает query-параметр qty, по умолчанию 1.
func parseQty(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("qty"))
	if raw == "" {
		return 1, nil
	}

	qty, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || qty <= 0 {
		return 0, e.ErrStatusBadRequest
	}

	return qty, nil
}

// parsePositivePrice проверяет денежный ввод тела запроса.
// Допускается неотрицательное значение с точностью до двух знаков.
func parsePositivePrice(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, e.ErrMissingFields
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return decimal.Zero, e.ErrPricePrecision
	}

	return d, nil
}
