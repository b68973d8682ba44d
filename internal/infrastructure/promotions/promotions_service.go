package promotions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/matjar-tech/catalog-backend/internal/cfg"
	"github.com/matjar-tech/catalog-backend/internal/usecase"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// PromotionsService — клиент оценщика промо-правил.
// Отвечает на батч позиций итоговыми ценами по сработавшим правилам.
type PromotionsService struct {
	client  *http.Client
	baseURL string
	logger  logger.Logger
}

func NewPromotionsService(cfg *cfg.PromotionsClientCfg, logger logger.Logger) *PromotionsService {
	return &PromotionsService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type previewItemRequest struct {
	EntityID    int64  `json:"entity_id"`
	Currency    string `json:"currency"`
	Qty         int64  `json:"qty"`
	AccountType string `json:"account_type"`
}

type previewBatchRequest struct {
	Items []previewItemRequest `json:"items"`
}

type previewItemResponse struct {
	EntityID    int64           `json:"entity_id"`
	FinalPrice  decimal.Decimal `json:"final_price"`
	AppliedRule *string         `json:"applied_rule"`
}

type previewBatchResponse struct {
	Items []previewItemResponse `json:"items"`
}

// PreviewBatch возвращает промо-цены по тем позициям, где сработало правило.
// Позиции без сработавших правил в ответе отсутствуют.
func (s *PromotionsService) PreviewBatch(ctx context.Context, inputs []usecase.PromoPreviewInput) (map[int64]usecase.PromoPreview, error) {
	const op = "PromotionsService.PreviewBatch"

	if len(inputs) == 0 {
		return map[int64]usecase.PromoPreview{}, nil
	}

	items := make([]previewItemRequest, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, previewItemRequest{
			EntityID:    in.EntityID,
			Currency:    string(in.Currency),
			Qty:         in.Qty,
			AccountType: in.AccountType,
		})
	}

	payload, err := json.Marshal(previewBatchRequest{Items: items})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/promotions/preview-batch", bytes.NewReader(payload))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, e.Wrap(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body previewBatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make(map[int64]usecase.PromoPreview, len(body.Items))
	for _, item := range body.Items {
		result[item.EntityID] = usecase.PromoPreview{
			FinalPrice:  item.FinalPrice,
			AppliedRule: item.AppliedRule,
		}
	}

	return result, nil
}
