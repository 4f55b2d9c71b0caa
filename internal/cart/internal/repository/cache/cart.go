package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/batiknusa/storefront/internal/cart/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// A cart lives in the session store only. It is advisory until checkout, so
// losing it on expiry is acceptable.
const expiration = 7 * 24 * time.Hour

type CartCache interface {
	Get(ctx context.Context, uid int64) (domain.Cart, error)
	Set(ctx context.Context, uid int64, cart domain.Cart) error
	Del(ctx context.Context, uid int64) error
}

func NewCartECache(ec ecache.Cache) CartCache {
	return &cartCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "cart:",
		},
	}
}

type cartCache struct {
	ec ecache.Cache
}

func (c *cartCache) Get(ctx context.Context, uid int64) (domain.Cart, error) {
	val := c.ec.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Cart{}, nil
	}
	if val.Err != nil {
		return domain.Cart{}, val.Err
	}
	data, err := val.String()
	if err != nil {
		return domain.Cart{}, errors.Wrap(err, "read cached cart")
	}
	var cart domain.Cart
	err = json.Unmarshal([]byte(data), &cart)
	return cart, errors.Wrap(err, "unmarshal cart")
}

func (c *cartCache) Set(ctx context.Context, uid int64, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "marshal cart")
	}
	return c.ec.Set(ctx, c.key(uid), string(data), expiration)
}

func (c *cartCache) Del(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.key(uid))
	return err
}

func (c *cartCache) key(uid int64) string {
	return fmt.Sprintf("%d", uid)
}
