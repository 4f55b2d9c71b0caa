package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/batiknusa/storefront/internal/coupon/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const expiration = 24 * time.Hour

var ErrSnapshotNotFound = errors.New("no coupon applied")

// SnapshotCache holds the coupon a session has applied but not yet spent.
type SnapshotCache interface {
	Get(ctx context.Context, uid int64) (domain.Snapshot, error)
	Set(ctx context.Context, uid int64, snapshot domain.Snapshot) error
	Del(ctx context.Context, uid int64) error
}

func NewSnapshotECache(ec ecache.Cache) SnapshotCache {
	return &snapshotCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "coupon:",
		},
	}
}

type snapshotCache struct {
	ec ecache.Cache
}

func (c *snapshotCache) Get(ctx context.Context, uid int64) (domain.Snapshot, error) {
	val := c.ec.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Snapshot{}, ErrSnapshotNotFound
	}
	if val.Err != nil {
		return domain.Snapshot{}, val.Err
	}
	data, err := val.String()
	if err != nil {
		return domain.Snapshot{}, errors.Wrap(err, "read cached snapshot")
	}
	var s domain.Snapshot
	err = json.Unmarshal([]byte(data), &s)
	return s, errors.Wrap(err, "unmarshal coupon snapshot")
}

func (c *snapshotCache) Set(ctx context.Context, uid int64, snapshot domain.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "marshal coupon snapshot")
	}
	return c.ec.Set(ctx, c.key(uid), string(data), expiration)
}

func (c *snapshotCache) Del(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.key(uid))
	return err
}

func (c *snapshotCache) key(uid int64) string {
	return fmt.Sprintf("%d", uid)
}
