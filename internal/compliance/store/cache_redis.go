package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"comply/internal/compliance"
	id "comply/pkg/domain"
	"comply/pkg/platform/sentinel"
)

const (
	overviewKeyPrefix   = "overview:"
	generationKeyPrefix = "overview-gen:"
)

var errStaleGeneration = errors.New("overview generation changed")

// RedisCache stores computed overviews as JSON with a TTL. A per-organization
// counter tracks invalidations so a Set racing an Invalidate is dropped.
type RedisCache struct {
	client    *redis.Client
	prefix    string
	genPrefix string
	ttl       time.Duration
}

// NewRedisCache creates a cache whose keys start with keyPrefix.
func NewRedisCache(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client:    client,
		prefix:    keyPrefix + overviewKeyPrefix,
		genPrefix: keyPrefix + generationKeyPrefix,
		ttl:       ttl,
	}
}

func (c *RedisCache) key(orgID id.OrganizationID) string {
	return c.prefix + orgID.String()
}

func (c *RedisCache) generationKey(orgID id.OrganizationID) string {
	return c.genPrefix + orgID.String()
}

func generationFrom(cmd *redis.StringCmd) (int64, error) {
	generation, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func (c *RedisCache) Generation(ctx context.Context, orgID id.OrganizationID) (int64, error) {
	generation, err := generationFrom(c.client.Get(ctx, c.generationKey(orgID)))
	if err != nil {
		return 0, fmt.Errorf("read overview generation: %w", err)
	}
	return generation, nil
}

func (c *RedisCache) Get(ctx context.Context, orgID id.OrganizationID) (*compliance.Overview, error) {
	raw, err := c.client.Get(ctx, c.key(orgID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get cached overview: %w", err)
	}
	var overview compliance.Overview
	if err := json.Unmarshal(raw, &overview); err != nil {
		return nil, fmt.Errorf("decode cached overview: %w", err)
	}
	return &overview, nil
}

// Set writes the overview inside a WATCH on the generation key, so an
// Invalidate landing between the check and the write aborts it.
func (c *RedisCache) Set(ctx context.Context, orgID id.OrganizationID, generation int64, overview *compliance.Overview) (bool, error) {
	raw, err := json.Marshal(overview)
	if err != nil {
		return false, fmt.Errorf("encode overview: %w", err)
	}

	genKey := c.generationKey(orgID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generationFrom(tx.Get(ctx, genKey))
		if err != nil {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(orgID), raw, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		return false, nil
	default:
		return false, fmt.Errorf("cache overview: %w", err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, orgID id.OrganizationID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey(orgID))
		pipe.Del(ctx, c.key(orgID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate overview: %w", err)
	}
	return nil
}
