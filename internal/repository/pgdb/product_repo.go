package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/tr"
)

// ProductRepo реализует ценовой срез репозитория товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	id, name,
	base_price_usd, compare_at_price_usd, cost_price_usd,
	base_price_sar, compare_at_price_sar, cost_price_sar,
	base_price_yer, compare_at_price_yer, cost_price_yer,
	exchange_rate_version, last_exchange_rate_sync_at,
	attribute_ids, variants_count,
	created_at, updated_at, deleted_at
`

// GetByID возвращает товар или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND deleted_at IS NULL
	`

	// Запрос уходит в момент вызова QueryRow, а соединение пула
	// освобождается только при Scan, поэтому выполняется ровно один запрос:
	// либо через транзакцию из контекста, либо через пул.
	var row pgx.Row
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		row = tx.QueryRow(ctx, query, id)
	} else {
		row = p.pool.QueryRow(ctx, query, id)
	}

	var model converter.ProductModel

	err := row.Scan(
		&model.ID, &model.Name,
		&model.BasePriceUSD, &model.CompareAtPriceUSD, &model.CostPriceUSD,
		&model.BasePriceSAR, &model.CompareAtPriceSAR, &model.CostPriceSAR,
		&model.BasePriceYER, &model.CompareAtPriceYER, &model.CostPriceYER,
		&model.ExchangeRateVersion, &model.LastExchangeRateSyncAt,
		&model.AttributeIDs, &model.VariantsCount,
		&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// UpdateVariantsCount фиксирует число живых вариантов после генерации.
func (p *ProductRepo) UpdateVariantsCount(ctx context.Context, id int64, count int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET variants_count = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	result, err := tx.Exec(ctx, query, count, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// UpdateStoredPrices перезаписывает денежные снапшоты товара и метку
// версии курса. Вызывается только из транзакции синхронизации цен.
func (p *ProductRepo) UpdateStoredPrices(ctx context.Context, product *domain.Product) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		UPDATE products
		SET
			base_price_sar = $1, compare_at_price_sar = $2, cost_price_sar = $3,
			base_price_yer = $4, compare_at_price_yer = $5, cost_price_yer = $6,
			exchange_rate_version = $7, last_exchange_rate_sync_at = $8,
			updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`

	result, err := tx.Exec(ctx, query,
		model.BasePriceSAR, model.CompareAtPriceSAR, model.CostPriceSAR,
		model.BasePriceYER, model.CompareAtPriceYER, model.CostPriceYER,
		model.ExchangeRateVersion, model.LastExchangeRateSyncAt,
		model.ID,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}
