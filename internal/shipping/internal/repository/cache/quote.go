package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/batiknusa/storefront/internal/shipping/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// Quotes are memoized long enough to cover a checkout session. The carrier
// aggregator rate-limits aggressively, so repeated lookups for the same
// route and weight must not hit it again.
const quoteExpiration = 15 * time.Minute

var ErrQuoteNotCached = errors.New("quote not cached")

type QuoteCache interface {
	Get(ctx context.Context, origin, destination string, weightGrams int64) ([]domain.Option, error)
	Set(ctx context.Context, origin, destination string, weightGrams int64, options []domain.Option) error
}

func NewQuoteECache(ec ecache.Cache) QuoteCache {
	return &quoteCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "quote:",
		},
	}
}

type quoteCache struct {
	ec ecache.Cache
}

func (c *quoteCache) Get(ctx context.Context, origin, destination string, weightGrams int64) ([]domain.Option, error) {
	val := c.ec.Get(ctx, c.key(origin, destination, weightGrams))
	if val.KeyNotFound() {
		return nil, ErrQuoteNotCached
	}
	if val.Err != nil {
		return nil, val.Err
	}
	data, err := val.String()
	if err != nil {
		return nil, errors.Wrap(err, "read cached quote")
	}
	var options []domain.Option
	err = json.Unmarshal([]byte(data), &options)
	return options, errors.Wrap(err, "unmarshal cached quote")
}

func (c *quoteCache) Set(ctx context.Context, origin, destination string, weightGrams int64, options []domain.Option) error {
	data, err := json.Marshal(options)
	if err != nil {
		return errors.Wrap(err, "marshal quote")
	}
	return c.ec.Set(ctx, c.key(origin, destination, weightGrams), string(data), quoteExpiration)
}

func (c *quoteCache) key(origin, destination string, weightGrams int64) string {
	return fmt.Sprintf("%s:%s:%d", origin, destination, weightGrams)
}
