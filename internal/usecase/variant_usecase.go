package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
	"github.com/matjar-tech/catalog-backend/pkg/retry"
)

// VariantUseCase порождает варианты товара из комбинаций его атрибутов.
type VariantUseCase struct {
	productRepo ProductRepository
	variantRepo VariantRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	catalog     AttributeCatalogInfra
	cacheRepo   CacheRepository
	logger      logger.Logger
	retryPolicy retry.Policy
}

func NewVariantUC(
	productRepo ProductRepository,
	variantRepo VariantRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	catalog AttributeCatalogInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *VariantUseCase {
	return &VariantUseCase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		catalog:     catalog,
		cacheRepo:   cacheRepo,
		logger:      logger,
		retryPolicy: retry.DefaultPolicy(),
	}
}

// counterOp — отложенное изменение счётчика использования значения атрибута.
type counterOp struct {
	attributeID int64
	valueID     int64
	increment   bool
}

// GenerateVariants строит декартово произведение атрибутов товара и создаёт
// недостающие варианты с общими ценой и остатком по умолчанию.
//
// Дедупликация доверена хранилищу: уникальный индекс по
// (product_id, combination_signature) превращает гонку
// «проверил — создал» двух конкурентных запросов в отказ вставки,
// который трактуется как «уже существует».
//
// При отмене контекста новые комбинации перестают приниматься, но уже
// начатые вставки завершаются; частичная генерация отражается в
// GeneratedCount.
func (v *VariantUseCase) GenerateVariants(ctx context.Context, req *GenerateVariantsReq) (*GenerateVariantsRes, error) {
	const op = "VariantUseCase.GenerateVariants"

	product, err := v.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(product.AttributeIDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoAttributesForGeneration)
	}

	summaries, err := v.loadAttributes(ctx, product.AttributeIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	combos := GenerateCombinations(summaries)

	// Транзакция переживает отмену вызывающего контекста: начатые вставки
	// должны завершиться, прерывается только приём новых комбинаций.
	txCtx := context.WithoutCancel(ctx)
	txCtx, tx, err := transaction.NewTransaction(txCtx, pgx.TxOptions{}, v.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(txCtx)
		}
	}()
	txCtx = context.WithValue(txCtx, "tx", tx.Transaction())

	var counters []counterOp

	if req.Overwrite {
		deleted, derr := v.variantRepo.SoftDeleteByProductID(txCtx, req.ProductID)
		if derr != nil {
			err = derr
			return nil, e.Wrap(op, err)
		}
		for _, dv := range deleted {
			for _, pair := range dv.Attributes {
				counters = append(counters, counterOp{pair.AttributeID, pair.ValueID, false})
			}
		}
	}

	existing, err := v.variantRepo.GetByProductID(txCtx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	signatures := make(map[string]struct{}, len(existing)+len(combos))
	for i := range existing {
		signatures[existing[i].Combination().Signature()] = struct{}{}
	}

	var generated int64
	for _, combo := range combos {
		if ctx.Err() != nil {
			v.logger.Warnf("variant generation cancelled after %d of %d combinations, product_id: %d", generated, len(combos), req.ProductID)
			break
		}

		sig := combo.Signature()
		if _, exists := signatures[sig]; exists {
			continue
		}

		variant := domain.NewVariant(req.ProductID, combo, domain.MoneySet{BasePriceUSD: req.DefaultPrice}, req.DefaultStock)
		if _, cerr := v.variantRepo.Create(txCtx, variant); cerr != nil {
			if errors.Is(cerr, e.ErrDuplicateCombination) {
				// Конкурентная генерация успела первой: перепроверяем и
				// пропускаем вместо отмены всей партии.
				exists, checkErr := v.variantRepo.ExistsBySignature(txCtx, req.ProductID, sig)
				if checkErr == nil && exists {
					v.logger.Debugf("combination already exists, skipping: %s", sig)
					signatures[sig] = struct{}{}
					continue
				}
			}
			err = cerr
			return nil, e.Wrap(op, err)
		}

		signatures[sig] = struct{}{}
		generated++
		for _, pair := range combo {
			counters = append(counters, counterOp{pair.AttributeID, pair.ValueID, true})
		}
	}

	total := int64(len(signatures))
	if err = v.productRepo.UpdateVariantsCount(txCtx, req.ProductID, total); err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(map[string]any{
		"product_id": req.ProductID,
		"generated":  generated,
		"total":      total,
		"overwrite":  req.Overwrite,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if _, err = v.outboxRepo.Create(txCtx, NewOutboxEvent(uuid.NewString(), EventVariantsGenerated, req.ProductID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(txCtx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Счётчики использования — аналитика: обновляются в фоне, ошибка
	// логируется и не распространяется, вариант уже записан.
	go v.applyCounterOps(counters)

	return &GenerateVariantsRes{GeneratedCount: generated, TotalCount: total}, nil
}

// loadAttributes собирает сводки атрибутов в порядке их следования у товара:
// сперва из кэша, затем из каталога с ограниченным повтором.
func (v *VariantUseCase) loadAttributes(ctx context.Context, ids []int64) ([]domain.AttributeSummary, error) {
	const op = "VariantUseCase.loadAttributes"

	summaries := make([]domain.AttributeSummary, 0, len(ids))
	for _, id := range ids {
		cached, err := v.cacheRepo.GetAttribute(ctx, id)
		if err != nil {
			v.logger.Warnf("attribute cache read failed: %v", e.Wrap(op, err))
		} else if cached != nil {
			summaries = append(summaries, *cached)
			continue
		}

		var summary *domain.AttributeSummary
		err = retry.Do(ctx, v.retryPolicy, func(ctx context.Context) error {
			var err error
			summary, err = v.catalog.GetAttribute(ctx, id)
			return err
		})
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое наполнение кэша, как и в ценовом usecase.
		go func(summary *domain.AttributeSummary) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if err := v.cacheRepo.SetAttribute(bgCtx, summary); err != nil {
				v.logger.Warnf("failed to cache attribute in background: %v", e.Wrap(op, err))
			}
		}(summary)

		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

// applyCounterOps применяет отложенные изменения счётчиков использования.
// Каталог сам защищает счётчики от ухода в минус.
func (v *VariantUseCase) applyCounterOps(ops []counterOp) {
	if len(ops) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, c := range ops {
		var err error
		if c.increment {
			err = v.catalog.IncrementUsage(ctx, c.attributeID, c.valueID)
		} else {
			err = v.catalog.DecrementUsage(ctx, c.attributeID, c.valueID)
		}
		if err != nil {
			v.logger.Warnf("usage counter update failed, attribute_id: %d, value_id: %d: %v", c.attributeID, c.valueID, err)
		}
	}
}
