package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/matjar-tech/catalog-backend/internal/cfg"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
)

// CatalogService — клиент сервиса атрибутов каталога.
// Отдаёт сводки атрибутов для генерации комбинаций и принимает
// инкременты счётчиков использования значений.
type CatalogService struct {
	client  *http.Client
	baseURL string
	logger  logger.Logger
}

func NewCatalogService(cfg *cfg.CatalogClientCfg, logger logger.Logger) *CatalogService {
	return &CatalogService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type attributeValueResponse struct {
	ID      int64   `json:"id"`
	Value   string  `json:"value"`
	ValueEn string  `json:"value_en"`
	HexCode *string `json:"hex_code"`
}

type attributeResponse struct {
	ID     int64                    `json:"id"`
	Name   string                   `json:"name"`
	NameEn string                   `json:"name_en"`
	Values []attributeValueResponse `json:"values"`
}

// GetAttribute возвращает сводку атрибута или e.ErrAttributeNotFound.
func (s *CatalogService) GetAttribute(ctx context.Context, id int64) (*domain.AttributeSummary, error) {
	const op = "CatalogService.GetAttribute"

	url := fmt.Sprintf("%s/attributes/%d", s.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, e.Wrap(op, e.ErrAttributeNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, e.Wrap(op, fmt.Errorf("unexpected status %d for attribute %d", resp.StatusCode, id))
	}

	var body attributeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, e.Wrap(op, err)
	}

	values := make([]domain.AttributeValue, 0, len(body.Values))
	for _, v := range body.Values {
		values = append(values, domain.AttributeValue{
			ID:      v.ID,
			Value:   v.Value,
			ValueEn: v.ValueEn,
			HexCode: v.HexCode,
		})
	}

	return &domain.AttributeSummary{
		ID:     body.ID,
		Name:   body.Name,
		NameEn: body.NameEn,
		Values: values,
	}, nil
}

// IncrementUsage увеличивает счётчик использования значения атрибута.
func (s *CatalogService) IncrementUsage(ctx context.Context, attributeID, valueID int64) error {
	return s.postUsage(ctx, attributeID, valueID, "increment")
}

// DecrementUsage уменьшает счётчик использования значения атрибута.
func (s *CatalogService) DecrementUsage(ctx context.Context, attributeID, valueID int64) error {
	return s.postUsage(ctx, attributeID, valueID, "decrement")
}

func (s *CatalogService) postUsage(ctx context.Context, attributeID, valueID int64, action string) error {
	const op = "CatalogService.postUsage"

	url := fmt.Sprintf("%s/attributes/%d/values/%d/usage/%s", s.baseURL, attributeID, valueID, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return e.Wrap(op, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return e.Wrap(op, fmt.Errorf("unexpected status %d for %s of %d/%d", resp.StatusCode, action, attributeID, valueID))
	}

	return nil
}
