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

package repository

import (
	"context"

	"github.com/batiknusa/storefront/internal/coupon/internal/domain"
	"github.com/batiknusa/storefront/internal/coupon/internal/repository/cache"
	"github.com/batiknusa/storefront/internal/coupon/internal/repository/dao"
)

var ErrNoCouponApplied = cache.ErrSnapshotNotFound

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	FindByID(ctx context.Context, id int64) (domain.Coupon, error)
	GetSnapshot(ctx context.Context, uid int64) (domain.Snapshot, error)
	SetSnapshot(ctx context.Context, uid int64, snapshot domain.Snapshot) error
	DelSnapshot(ctx context.Context, uid int64) error
}

func NewCouponRepository(d dao.CouponDAO, c cache.SnapshotCache) CouponRepository {
	return &couponRepository{d: d, c: c}
}

type couponRepository struct {
	d dao.CouponDAO
	c cache.SnapshotCache
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := r.d.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) FindByID(ctx context.Context, id int64) (domain.Coupon, error) {
	c, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) GetSnapshot(ctx context.Context, uid int64) (domain.Snapshot, error) {
	return r.c.Get(ctx, uid)
}

func (r *couponRepository) SetSnapshot(ctx context.Context, uid int64, snapshot domain.Snapshot) error {
	return r.c.Set(ctx, uid, snapshot)
}

func (r *couponRepository) DelSnapshot(ctx context.Context, uid int64) error {
	return r.c.Del(ctx, uid)
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:              c.Id,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		Active:          c.Active,
		ValidFrom:       c.ValidFrom,
		ValidUntil:      c.ValidUntil,
		Ctime:           c.Ctime,
		Utime:           c.Utime,
	}
}
