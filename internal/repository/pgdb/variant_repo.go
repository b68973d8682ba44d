package pgdb

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/tr"
)

// VariantRepo реализует репозиторий вариантов товара поверх PostgreSQL.
// Комбинация атрибутов хранится в jsonb, её каноническая подпись
// продублирована в отдельной колонке под уникальным индексом.
type VariantRepo struct {
	pool *pgxpool.Pool
	conv converter.VariantConverter
}

func NewVariantRepo(pool *pgxpool.Pool, conv converter.VariantConverter) *VariantRepo {
	return &VariantRepo{
		pool: pool,
		conv: conv,
	}
}

const variantColumns = `
	id, product_id, attributes, combination_signature,
	base_price_usd, compare_at_price_usd, cost_price_usd,
	base_price_sar, compare_at_price_sar, cost_price_sar,
	base_price_yer, compare_at_price_yer, cost_price_yer,
	exchange_rate_version, last_exchange_rate_sync_at,
	stock, min_stock, is_active, is_available,
	created_at, updated_at, deleted_at
`

// GetByProductID возвращает неудалённые варианты товара в порядке создания.
// Читает через транзакцию из контекста, если она есть: генерация с
// перезаписью обязана видеть собственные незафиксированные удаления,
// чтение через пул их не покажет.
func (v *VariantRepo) GetByProductID(ctx context.Context, productID int64) ([]domain.Variant, error) {
	query := `
		SELECT ` + variantColumns + `
		FROM variants
		WHERE product_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`

	if tx, err := tr.TxFromCtx(ctx); err == nil {
		rows, err := tx.Query(ctx, query, productID)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		return v.collectVariants(rows)
	}

	rows, err := v.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.collectVariants(rows)
}

// Create вставляет вариант в рамках транзакции из контекста.
// Конфликт по (product_id, combination_signature) среди живых записей
// возвращается как e.ErrDuplicateCombination.
func (v *VariantRepo) Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := v.conv.ToModel(variant)
	model.CombinationSignature = variant.Combination().Signature()

	attributes, err := json.Marshal(model.Attributes)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO variants (
			product_id, attributes, combination_signature,
			base_price_usd, compare_at_price_usd, cost_price_usd,
			base_price_sar, compare_at_price_sar, cost_price_sar,
			base_price_yer, compare_at_price_yer, cost_price_yer,
			exchange_rate_version, last_exchange_rate_sync_at,
			stock, min_stock, is_active, is_available
		) VALUES (
			$1, $2, $3,
			$4, $5, $6,
			$7, $8, $9,
			$10, $11, $12,
			$13, $14,
			$15, $16, $17, $18
		)
		RETURNING id, created_at;
	`

	err = tx.QueryRow(ctx, query,
		model.ProductID, attributes, model.CombinationSignature,
		model.BasePriceUSD, model.CompareAtPriceUSD, model.CostPriceUSD,
		model.BasePriceSAR, model.CompareAtPriceSAR, model.CostPriceSAR,
		model.BasePriceYER, model.CompareAtPriceYER, model.CostPriceYER,
		model.ExchangeRateVersion, model.LastExchangeRateSyncAt,
		model.Stock, model.MinStock, model.IsActive, model.IsAvailable,
	).Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDuplicateCombination)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(model), nil
}

// ExistsBySignature проверяет наличие живого варианта с данной подписью.
// Используется после конфликта вставки, поэтому читает через транзакцию,
// если она есть в контексте.
func (v *VariantRepo) ExistsBySignature(ctx context.Context, productID int64, signature string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM variants
			WHERE product_id = $1 AND combination_signature = $2 AND deleted_at IS NULL
		)
	`

	var exists bool
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		err = tx.QueryRow(ctx, query, productID, signature).Scan(&exists)
		if err != nil {
			return false, e.Wrap(whereami.WhereAmI(), err)
		}

		return exists, nil
	}

	if err := v.pool.QueryRow(ctx, query, productID, signature).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// SoftDeleteByProductID помечает живые варианты товара удалёнными и
// возвращает их прежнее состояние для компенсации счётчиков использования.
func (v *VariantRepo) SoftDeleteByProductID(ctx context.Context, productID int64) ([]domain.Variant, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE variants
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE product_id = $1 AND deleted_at IS NULL
		RETURNING ` + variantColumns + `
	`

	rows, err := tx.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.collectVariants(rows)
}

// collectVariants вычитывает строки variants и закрывает источник.
func (v *VariantRepo) collectVariants(rows pgx.Rows) ([]domain.Variant, error) {
	defer rows.Close()

	models := make([]*converter.VariantModel, 0)
	for rows.Next() {
		model, err := scanVariant(rows.Scan)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToArrEntity(models), nil
}

// UpdateStoredPrices перезаписывает денежные снапшоты варианта и метку
// версии курса. Вызывается только из транзакции синхронизации цен.
func (v *VariantRepo) UpdateStoredPrices(ctx context.Context, variant *domain.Variant) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := v.conv.ToModel(variant)
	query := `
		UPDATE variants
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
		return e.Wrap(whereami.WhereAmI(), e.ErrVariantNotFound)
	}

	return nil
}

// scanVariant читает строку variants, разворачивая jsonb-колонку атрибутов.
func scanVariant(scan func(dest ...any) error) (*converter.VariantModel, error) {
	var model converter.VariantModel
	var attributes []byte

	err := scan(
		&model.ID, &model.ProductID, &attributes, &model.CombinationSignature,
		&model.BasePriceUSD, &model.CompareAtPriceUSD, &model.CostPriceUSD,
		&model.BasePriceSAR, &model.CompareAtPriceSAR, &model.CostPriceSAR,
		&model.BasePriceYER, &model.CompareAtPriceYER, &model.CostPriceYER,
		&model.ExchangeRateVersion, &model.LastExchangeRateSyncAt,
		&model.Stock, &model.MinStock, &model.IsActive, &model.IsAvailable,
		&model.CreatedAt, &model.UpdatedAt, &model.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(attributes) > 0 {
		if err := json.Unmarshal(attributes, &model.Attributes); err != nil {
			return nil, err
		}
	}

	return &model, nil
}
