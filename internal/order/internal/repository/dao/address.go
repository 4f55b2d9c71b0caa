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
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrAddressNotFound = gorm.ErrRecordNotFound

type AddressDAO interface {
	// Save creates or updates a reusable saved address. Saved addresses
	// always have order_id NULL; order-bound clones never go through here.
	Save(ctx context.Context, addr ShippingAddress) (int64, error)
	ListSaved(ctx context.Context, uid int64) ([]ShippingAddress, error)
	// SetDefault makes the given address the user's only default. The
	// unset-all-then-set pair runs in one transaction so two concurrent
	// calls cannot leave two defaults behind.
	SetDefault(ctx context.Context, uid, addressID int64) error
	// FindOwned returns the address only if it belongs to the user and is
	// still a saved address, not one frozen onto an order.
	FindOwned(ctx context.Context, uid, addressID int64) (ShippingAddress, error)
	FindByID(ctx context.Context, id int64) (ShippingAddress, error)
}

func NewAddressGORMDAO(db *egorm.Component) AddressDAO {
	return &gormAddressDAO{db: db}
}

type gormAddressDAO struct {
	db *egorm.Component
}

func (g *gormAddressDAO) Save(ctx context.Context, addr ShippingAddress) (int64, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if addr.IsDefault {
			err := tx.Model(&ShippingAddress{}).
				Where("user_id = ? AND order_id IS NULL", addr.UserId).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		if addr.Id > 0 {
			addr.Utime = now
			res := tx.Model(&ShippingAddress{}).
				Where("id = ? AND user_id = ? AND order_id IS NULL", addr.Id, addr.UserId).
				Updates(map[string]any{
					"full_name":   addr.FullName,
					"address":     addr.Address,
					"city":        addr.City,
					"province":    addr.Province,
					"postal_code": addr.PostalCode,
					"phone":       addr.Phone,
					"is_default":  addr.IsDefault,
					"utime":       now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrAddressNotFound
			}
			return nil
		}
		addr.Ctime, addr.Utime = now, now
		return tx.Create(&addr).Error
	})
	return addr.Id, err
}

func (g *gormAddressDAO) ListSaved(ctx context.Context, uid int64) ([]ShippingAddress, error) {
	var addrs []ShippingAddress
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND order_id IS NULL", uid).
		Order("is_default DESC, id DESC").Find(&addrs).Error
	return addrs, err
}

func (g *gormAddressDAO) SetDefault(ctx context.Context, uid, addressID int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&ShippingAddress{}).
			Where("user_id = ? AND order_id IS NULL", uid).
			Update("is_default", false).Error
		if err != nil {
			return err
		}
		res := tx.Model(&ShippingAddress{}).
			Where("id = ? AND user_id = ? AND order_id IS NULL", addressID, uid).
			Updates(map[string]any{
				"is_default": true,
				"utime":      now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAddressNotFound
		}
		return nil
	})
}

func (g *gormAddressDAO) FindOwned(ctx context.Context, uid, addressID int64) (ShippingAddress, error) {
	var addr ShippingAddress
	err := g.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND order_id IS NULL", addressID, uid).
		First(&addr).Error
	return addr, err
}

func (g *gormAddressDAO) FindByID(ctx context.Context, id int64) (ShippingAddress, error) {
	var addr ShippingAddress
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&addr).Error
	return addr, err
}

type ShippingAddress struct {
	Id int64 `gorm:"primaryKey;autoIncrement"`
	// UserId is NULL for guest checkout addresses.
	UserId sql.NullInt64 `gorm:"index:idx_user_id"`
	// OrderId is NULL while the row is a reusable saved address. Once an
	// order freezes the row, it carries the order's id.
	OrderId    sql.NullInt64 `gorm:"index:idx_order_id"`
	FullName   string        `gorm:"not null"`
	Address    string        `gorm:"type:text;not null"`
	City       string        `gorm:"not null"`
	Province   string        `gorm:"not null"`
	PostalCode string        `gorm:"type:varchar(16);not null"`
	Phone      string        `gorm:"type:varchar(32);not null"`
	IsDefault  bool          `gorm:"not null;default:false"`
	Ctime      int64
	Utime      int64
}
