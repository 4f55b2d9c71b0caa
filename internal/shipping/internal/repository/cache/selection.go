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

const selectionExpiration = 24 * time.Hour

var ErrSelectionNotFound = errors.New("no shipping option selected")

type SelectionCache interface {
	Get(ctx context.Context, uid int64) (domain.Selection, error)
	Set(ctx context.Context, uid int64, sel domain.Selection) error
	Del(ctx context.Context, uid int64) error
}

func NewSelectionECache(ec ecache.Cache) SelectionCache {
	return &selectionCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "shipping:",
		},
	}
}

type selectionCache struct {
	ec ecache.Cache
}

func (c *selectionCache) Get(ctx context.Context, uid int64) (domain.Selection, error) {
	val := c.ec.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Selection{}, ErrSelectionNotFound
	}
	if val.Err != nil {
		return domain.Selection{}, val.Err
	}
	data, err := val.String()
	if err != nil {
		return domain.Selection{}, errors.Wrap(err, "read cached selection")
	}
	var sel domain.Selection
	err = json.Unmarshal([]byte(data), &sel)
	return sel, errors.Wrap(err, "unmarshal shipping selection")
}

func (c *selectionCache) Set(ctx context.Context, uid int64, sel domain.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return errors.Wrap(err, "marshal shipping selection")
	}
	return c.ec.Set(ctx, c.key(uid), string(data), selectionExpiration)
}

func (c *selectionCache) Del(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.key(uid))
	return err
}

func (c *selectionCache) key(uid int64) string {
	return fmt.Sprintf("%d", uid)
}
