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

var ErrProductNotFound = gorm.ErrRecordNotFound

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	FindSizesByProductID(ctx context.Context, productID int64) ([]ProductSize, error)
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &gormProductDAO{db: db}
}

type gormProductDAO struct {
	db *egorm.Component
}

func (g *gormProductDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *gormProductDAO) FindSizesByProductID(ctx context.Context, productID int64) ([]ProductSize, error) {
	var sizes []ProductSize
	err := g.db.WithContext(ctx).Where("product_id = ?", productID).Find(&sizes).Error
	return sizes, err
}

type Product struct {
	Id    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255);not null"`
	Slug  string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_slug"`
	Price int64  `gorm:"not null"`
	Stock int64  `gorm:"not null;default:0"`
	Ctime int64
	Utime int64
}

type ProductSize struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	ProductId int64  `gorm:"not null;index:idx_product_id"`
	Label     string `gorm:"type:varchar(64);not null"`
	Stock     int64  `gorm:"not null;default:0"`
	Ctime     int64
	Utime     int64
}
