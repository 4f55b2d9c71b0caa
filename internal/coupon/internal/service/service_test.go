// Copyright 2024 batiknusa
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"testing"

	"github.com/batiknusa/storefront/internal/coupon/internal/domain"
	"github.com/batiknusa/storefront/internal/coupon/internal/repository"
	"github.com/batiknusa/storefront/internal/coupon/internal/repository/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponRepository struct {
	coupons   map[string]domain.Coupon
	snapshots map[int64]domain.Snapshot
}

func newFakeCouponRepository(coupons ...domain.Coupon) *fakeCouponRepository {
	f := &fakeCouponRepository{
		coupons:   make(map[string]domain.Coupon),
		snapshots: make(map[int64]domain.Snapshot),
	}
	for _, c := range coupons {
		f.coupons[c.Code] = c
	}
	return f
}

func (f *fakeCouponRepository) FindByCode(_ context.Context, code string) (domain.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return domain.Coupon{}, repository.ErrNoCouponApplied
	}
	return c, nil
}

func (f *fakeCouponRepository) FindByID(_ context.Context, id int64) (domain.Coupon, error) {
	for _, c := range f.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Coupon{}, repository.ErrNoCouponApplied
}

func (f *fakeCouponRepository) GetSnapshot(_ context.Context, uid int64) (domain.Snapshot, error) {
	s, ok := f.snapshots[uid]
	if !ok {
		return domain.Snapshot{}, cache.ErrSnapshotNotFound
	}
	return s, nil
}

func (f *fakeCouponRepository) SetSnapshot(_ context.Context, uid int64, snapshot domain.Snapshot) error {
	f.snapshots[uid] = snapshot
	return nil
}

func (f *fakeCouponRepository) DelSnapshot(_ context.Context, uid int64) error {
	delete(f.snapshots, uid)
	return nil
}

func TestService_Apply(t *testing.T) {
	t.Parallel()
	const uid = int64(42)
	const now = int64(1_700_000_000_000)

	valid := domain.Coupon{
		ID: 1, Code: "HEMAT10", DiscountPercent: 10,
		Active: true, ValidFrom: now - 1000, ValidUntil: now + 1000,
	}
	expired := domain.Coupon{
		ID: 2, Code: "LAMA", DiscountPercent: 20,
		Active: true, ValidFrom: now - 2000, ValidUntil: now - 1000,
	}
	inactive := domain.Coupon{
		ID: 3, Code: "MATI", DiscountPercent: 30,
		Active: false, ValidFrom: now - 1000, ValidUntil: 0,
	}

	repo := newFakeCouponRepository(valid, expired, inactive)
	svc := newServiceWithClock(repo, func() int64 { return now })

	snapshot, err := svc.Apply(context.Background(), uid, "HEMAT10")
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{ID: 1, Code: "HEMAT10", DiscountPercent: 10}, snapshot)

	current, err := svc.Current(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, snapshot, current)

	_, err = svc.Apply(context.Background(), uid, "LAMA")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	_, err = svc.Apply(context.Background(), uid, "MATI")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	_, err = svc.Apply(context.Background(), uid, "TIDAKADA")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestService_RemoveAndCurrent(t *testing.T) {
	t.Parallel()
	const uid = int64(42)
	const now = int64(1_700_000_000_000)

	repo := newFakeCouponRepository(domain.Coupon{
		ID: 1, Code: "HEMAT10", DiscountPercent: 10, Active: true, ValidFrom: 0, ValidUntil: 0,
	})
	svc := newServiceWithClock(repo, func() int64 { return now })

	_, err := svc.Current(context.Background(), uid)
	assert.ErrorIs(t, err, ErrNoCouponApplied)

	_, err = svc.Apply(context.Background(), uid, "HEMAT10")
	require.NoError(t, err)
	require.NoError(t, svc.Remove(context.Background(), uid))

	_, err = svc.Current(context.Background(), uid)
	assert.ErrorIs(t, err, ErrNoCouponApplied)
}

func TestService_Revalidate(t *testing.T) {
	t.Parallel()
	const now = int64(1_700_000_000_000)

	repo := newFakeCouponRepository(
		domain.Coupon{ID: 1, Code: "HEMAT10", DiscountPercent: 10, Active: true, ValidFrom: 0, ValidUntil: now + 1000},
		domain.Coupon{ID: 2, Code: "LAMA", DiscountPercent: 20, Active: true, ValidFrom: 0, ValidUntil: now - 1},
	)
	svc := newServiceWithClock(repo, func() int64 { return now })

	assert.NoError(t, svc.Revalidate(context.Background(), domain.Snapshot{ID: 1, Code: "HEMAT10", DiscountPercent: 10}))
	// the coupon expired between apply and checkout
	assert.ErrorIs(t, svc.Revalidate(context.Background(), domain.Snapshot{ID: 2, Code: "LAMA", DiscountPercent: 20}), ErrInvalidOrExpired)
	assert.ErrorIs(t, svc.Revalidate(context.Background(), domain.Snapshot{ID: 99, Code: "HILANG"}), ErrInvalidOrExpired)
}
