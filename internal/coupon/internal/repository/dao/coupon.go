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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrCouponNotFound = gorm.ErrRecordNotFound

type CouponDAO interface {
	FindByCode(ctx context.Context, code string) (Coupon, error)
	FindByID(ctx context.Context, id int64) (Coupon, error)
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &gormCouponDAO{db: db}
}

type gormCouponDAO struct {
	db *egorm.Component
}

func (g *gormCouponDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var c Coupon
	err := g.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	return c, err
}

func (g *gormCouponDAO) FindByID(ctx context.Context, id int64) (Coupon, error) {
	var c Coupon
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

type Coupon struct {
	Id              int64  `gorm:"primaryKey;autoIncrement"`
	Code            string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code"`
	DiscountPercent int64  `gorm:"type:tinyint unsigned;not null"`
	Active          bool   `gorm:"not null;default:true"`
	ValidFrom       int64  `gorm:"not null"`
	ValidUntil      int64  `gorm:"not null;default:0"`
	Ctime           int64
	Utime           int64
}
