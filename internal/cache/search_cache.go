package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"quizgame/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

const generationKey = "quiz:search:gen"

// Generation identifies a cache epoch. Results loaded during one epoch
// are only stored under that epoch.
type Generation string

// SearchCache caches quiz search results per normalized term.
// Invalidate drops every cached term at once.
type SearchCache interface {
	// Get returns the cached result and the current generation, which a
	// caller filling a miss passes back to Set
	Get(ctx context.Context, term string) ([]*model.Quiz, Generation, bool, error)
	Set(ctx context.Context, gen Generation, term string, quizzes []*model.Quiz) error
	Invalidate(ctx context.Context) error
}

type searchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache creates a Redis backed search cache. Entries are keyed
// under a generation counter, so invalidation is a single INCR and stale
// entries age out through their TTL.
func NewSearchCache(client *redis.Client, ttl time.Duration) SearchCache {
	return &searchCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *searchCache) key(gen Generation, term string) string {
	return fmt.Sprintf("quiz:search:%s:%s", gen, term)
}

func (c *searchCache) generation(ctx context.Context) (Generation, error) {
	gen, err := c.client.Get(ctx, generationKey).Result()
	if err == redis.Nil {
		return "0", nil
	}
	return Generation(gen), err
}

func (c *searchCache) Get(ctx context.Context, term string) ([]*model.Quiz, Generation, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, "", false, err
	}
	data, err := c.client.Get(ctx, c.key(gen, term)).Result()
	if err == redis.Nil {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, gen, false, err
	}
	var quizzes []*model.Quiz
	if err := json.Unmarshal([]byte(data), &quizzes); err != nil {
		return nil, gen, false, err
	}
	return quizzes, gen, true, nil
}

func (c *searchCache) Set(ctx context.Context, gen Generation, term string, quizzes []*model.Quiz) error {
	data, err := json.Marshal(quizzes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(gen, term), data, c.ttl).Err()
}

func (c *searchCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, generationKey).Err()
}

type nopSearchCache struct{}

// NewNopSearchCache returns a cache that never hits, for running without Redis
func NewNopSearchCache() SearchCache { return nopSearchCache{} }

func (nopSearchCache) Get(context.Context, string) ([]*model.Quiz, Generation, bool, error) {
	return nil, "", false, nil
}

func (nopSearchCache) Set(context.Context, Generation, string, []*model.Quiz) error { return nil }

func (nopSearchCache) Invalidate(context.Context) error { return nil }
