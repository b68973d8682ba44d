package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/matjar-tech/catalog-backend/internal/cfg"
	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/matjar-tech/catalog-backend/internal/repository/redis/converter"
	"github.com/matjar-tech/catalog-backend/pkg/clients"
	"github.com/matjar-tech/catalog-backend/pkg/e"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
	r "github.com/redis/go-redis/v9"
)

const ratesKey = "rates:current"

// CacheRepo кэширует снимок курсов и сводки атрибутов в Redis.
// Промах кэша возвращается как (nil, nil): вызывающий идёт к источнику.
type CacheRepo struct {
	client    *clients.RedisClient
	ratesConv converter.RatesConverter
	attrConv  converter.AttributeConverter
	cfg       *cfg.RedisCfg
	logger    logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, ratesConv converter.RatesConverter,
	attrConv converter.AttributeConverter, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client:    client,
		ratesConv: ratesConv,
		attrConv:  attrConv,
		cfg:       cfg,
		logger:    logger,
	}
}

// GetRates возвращает закэшированный снимок курсов или nil при промахе.
func (c *CacheRepo) GetRates(ctx context.Context) (*domain.ExchangeRateSnapshot, error) {
	data, err := c.client.Client.Get(ctx, ratesKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.RatesRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), ratesKey).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.ratesConv.ToEntity(&model), nil
}

// SetRates кэширует снимок курсов с заданным TTL.
// Ошибки записи логируются и не прерывают вызывающего.
func (c *CacheRepo) SetRates(ctx context.Context, snapshot *domain.ExchangeRateSnapshot) error {
	model := c.ratesConv.ToRedisModel(snapshot)

	data, err := json.Marshal(model)
	if err != nil {
		c.logger.Warnf("Failed to marshal rates for caching: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, ratesKey, data, c.cfg.RatesTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

func (c *CacheRepo) EvictRates(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, ratesKey).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// GetAttribute возвращает закэшированную сводку атрибута или nil при промахе.
func (c *CacheRepo) GetAttribute(ctx context.Context, id int64) (*domain.AttributeSummary, error) {
	key := attributeKey(id)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.AttributeRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", id, model.ID)
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.attrConv.ToEntity(&model), nil
}

// SetAttribute кэширует сводку атрибута с заданным TTL.
// Ошибки записи логируются и не прерывают вызывающего.
func (c *CacheRepo) SetAttribute(ctx context.Context, summary *domain.AttributeSummary) error {
	model := c.attrConv.ToRedisModel(summary)

	data, err := json.Marshal(model)
	if err != nil {
		c.logger.Warnf("Failed to marshal attribute for caching (Attribute ID: %d): %v",
			summary.ID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, attributeKey(summary.ID), data, c.cfg.AttributeTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

func (c *CacheRepo) EvictAttribute(ctx context.Context, id int64) error {
	if err := c.client.Client.Del(ctx, attributeKey(id)).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// attributeKey возвращает Redis-ключ для сводки одного атрибута.
func attributeKey(id int64) string {
	return fmt.Sprintf("attribute:%d", id)
}
