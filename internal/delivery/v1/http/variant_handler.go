package http

import (
	"encoding/json"
	"net/http"

	"github.com/matjar-tech/catalog-backend/internal/usecase"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
)

type VariantHandler struct {
	variantUsecase usecase.VariantUC
	logger         logger.Logger
}

func NewVariantHandler(variantUsecase usecase.VariantUC, logger logger.Logger) *VariantHandler {
	return &VariantHandler{variantUsecase: variantUsecase, logger: logger}
}

type generateVariantsRequest struct {
	DefaultPrice string `json:"default_price"`
	DefaultStock int64  `json:"default_stock"`
	// Overwrite мягко удаляет существующие варианты перед регенерацией.
	// По умолчанию false: повторный вызов докидывает недостающие комбинации.
	Overwrite bool `json:"overwrite"`
}

type generateVariantsResponse struct {
	GeneratedCount int64 `json:"generated_count"`
	TotalCount     int64 `json:"total_count"`
}

// generateVariants создаёт варианты товара из декартова произведения
// значений его атрибутов.
func (v *VariantHandler) generateVariants(w http.ResponseWriter, r *http.Request) {
	const maxBodySize = 1 << 20

	productID, err := parseProductID(r)
	if err != nil {
		v.logger.Warnf("%d %s: %s", http.StatusBadRequest, r.URL.Path, err.Error())
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var body generateVariantsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		v.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	defaultPrice, err := parsePositivePrice(body.DefaultPrice)
	if err != nil {
		v.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if body.DefaultStock < 0 {
		v.logger.Warnf("%d %s: negative default_stock", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := v.variantUsecase.GenerateVariants(r.Context(),
		usecase.NewGenerateVariantsReq(productID, defaultPrice, body.DefaultStock, body.Overwrite))
	if err != nil {
		v.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, generateVariantsResponse{
		GeneratedCount: res.GeneratedCount,
		TotalCount:     res.TotalCount,
	})
}
