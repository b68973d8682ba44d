package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/matjar-tech/catalog-backend/internal/cfg"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// RatesService — клиент внешнего провайдера курсов валют.
// Возвращает снимок курсов USD к SAR и YER одной версией.
type RatesService struct {
	client  *http.Client
	baseURL string
	logger  logger.Logger
}

func NewRatesService(cfg *cfg.RatesClientCfg, logger logger.Logger) *RatesService {
	return &RatesService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// ratesResponse — формат ответа провайдера курсов.
type ratesResponse struct {
	USDToSAR decimal.Decimal `json:"usd_to_sar"`
	USDToYER decimal.Decimal `json:"usd_to_yer"`
	Version  string          `json:"version"`
	AsOf     time.Time       `json:"as_of"`
}

// GetCurrentRates запрашивает актуальный снимок курсов.
// Ретраи и деградация при недоступности решаются вызывающей стороной.
func (s *RatesService) GetCurrentRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error) {
	const op = "RatesService.GetCurrentRates"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/rates/current", nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, e.Wrap(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, e.Wrap(op, err)
	}

	if body.USDToSAR.Sign() <= 0 || body.USDToYER.Sign() <= 0 {
		return nil, e.Wrap(op, fmt.Errorf("provider returned non-positive rate, version %s", body.Version))
	}

	return domain.NewExchangeRateSnapshot(body.USDToSAR, body.USDToYER, body.Version, body.AsOf), nil
}
