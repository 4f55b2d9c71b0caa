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
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateSN surfaces a unique-index collision on the order SN,
	// which in practice means the same checkout was submitted twice.
	ErrDuplicateSN = errors.New("duplicate order sn")
)

type OrderDAO interface {
	// CreateOrder persists the whole aggregate in one transaction: the
	// order-bound address, the order, its items, the address backfill and
	// optionally a reusable saved address. initPayment runs inside the
	// transaction so a gateway failure rolls every row back.
	CreateOrder(ctx context.Context, order Order, items []OrderItem,
		addr ShippingAddress, saved *ShippingAddress,
		initPayment func(order Order) (token string, url string, err error)) (Order, error)

	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, buyerID int64, sn string) (Order, error)
	FindByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	FindItems(ctx context.Context, orderID int64) ([]OrderItem, error)

	// ApplyStatusChange locks the order row, runs apply on the current
	// state and saves the returned one. It serializes concurrent
	// webhook/poll/admin updates for the same order.
	ApplyStatusChange(ctx context.Context, orderID int64,
		apply func(order Order) (Order, error)) (before Order, after Order, err error)

	// FindPendingPayments pages by keyset: rows reconcile out of the
	// pending set mid-sweep, so offsets would skip survivors.
	FindPendingPayments(ctx context.Context, afterID int64, limit int, maxCtime int64) ([]Order, error)

	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &gormOrderDAO{db: db}
}

type gormOrderDAO struct {
	db *egorm.Component
}

func (g *gormOrderDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem,
	addr ShippingAddress, saved *ShippingAddress,
	initPayment func(order Order) (token string, url string, err error)) (Order, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if saved != nil {
			saved.Ctime, saved.Utime = now, now
			if saved.IsDefault {
				err := tx.Model(&ShippingAddress{}).
					Where("user_id = ? AND order_id IS NULL", saved.UserId).
					Update("is_default", false).Error
				if err != nil {
					return err
				}
			}
			if err := tx.Create(saved).Error; err != nil {
				return err
			}
		}

		// The address and the order reference each other, so the address
		// goes in first without an order id and is backfilled below.
		addr.Ctime, addr.Utime = now, now
		if err := tx.Create(&addr).Error; err != nil {
			return err
		}

		order.ShippingAddressId = addr.Id
		order.Ctime, order.Utime = now, now
		if err := tx.Create(&order).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return fmt.Errorf("%w: %s", ErrDuplicateSN, order.SN)
				}
			}
			return err
		}

		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		err := tx.Model(&ShippingAddress{}).Where("id = ?", addr.Id).
			Updates(map[string]any{
				"order_id": order.Id,
				"utime":    now,
			}).Error
		if err != nil {
			return err
		}

		token, url, err := initPayment(order)
		if err != nil {
			return err
		}
		order.PaymentToken = token
		order.PaymentUrl = url
		return tx.Model(&Order{}).Where("id = ?", order.Id).
			Updates(map[string]any{
				"payment_token": token,
				"payment_url":   url,
				"utime":         now,
			}).Error
	})
	return order, err
}

func (g *gormOrderDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (g *gormOrderDAO) FindBySN(ctx context.Context, buyerID int64, sn string) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).
		Where("buyer_id = ? AND sn = ?", buyerID, sn).First(&o).Error
	return o, err
}

func (g *gormOrderDAO) FindByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var orders []Order
	err := g.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, err
}

func (g *gormOrderDAO) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerID).Count(&count).Error
	return count, err
}

func (g *gormOrderDAO) FindItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (g *gormOrderDAO) ApplyStatusChange(ctx context.Context, orderID int64,
	apply func(order Order) (Order, error)) (Order, Order, error) {
	var before, after Order
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", orderID).First(&before).Error
		if err != nil {
			return err
		}
		after, err = apply(before)
		if err != nil {
			return err
		}
		after.Utime = time.Now().UnixMilli()
		return tx.Model(&Order{}).Where("id = ?", orderID).
			Updates(map[string]any{
				"status":          after.Status,
				"payment_status":  after.PaymentStatus,
				"tracking_number": after.TrackingNumber,
				"tracking_url":    after.TrackingUrl,
				"admin_notes":     after.AdminNotes,
				"utime":           after.Utime,
			}).Error
	})
	return before, after, err
}

func (g *gormOrderDAO) FindPendingPayments(ctx context.Context, afterID int64, limit int, maxCtime int64) ([]Order, error) {
	var orders []Order
	err := g.db.WithContext(ctx).
		Where("payment_status = ? AND ctime < ? AND id > ?", PaymentStatusPending, maxCtime, afterID).
		Order("id ASC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (g *gormOrderDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var orders []Order
	err := g.db.WithContext(ctx).
		Order("id DESC").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, err
}

func (g *gormOrderDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&count).Error
	return count, err
}

// PaymentStatusPending mirrors the payment module's pending constant for
// use in DAO queries.
const PaymentStatusPending = 1

type Order struct {
	Id int64  `gorm:"primaryKey;autoIncrement"`
	SN string `gorm:"column:sn;type:varchar(64);not null;uniqueIndex:uniq_order_sn"`
	// BuyerId is zero for guest orders.
	BuyerId    int64 `gorm:"not null;default:0;index:idx_buyer_id"`
	GuestName  string
	GuestEmail string

	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:1"`
	PaymentStatus uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_payment_status"`
	PaymentMethod string `gorm:"type:varchar(32)"`
	PaymentToken  string
	PaymentUrl    string

	TotalPrice   int64 `gorm:"not null"`
	ShippingCost int64 `gorm:"not null"`
	Discount     int64 `gorm:"not null;default:0"`
	TotalAmount  int64 `gorm:"not null"`

	ShippingAddressId int64
	ShippingMethod    string
	CouponId          sql.NullInt64
	Notes             string

	TrackingNumber string
	TrackingUrl    string
	AdminNotes     string

	Ctime int64
	Utime int64
}

type OrderItem struct {
	Id          int64 `gorm:"primaryKey;autoIncrement"`
	OrderId     int64 `gorm:"not null;index:idx_order_id"`
	ProductId   int64 `gorm:"not null"`
	ProductName string
	Size        string `gorm:"type:varchar(16)"`
	Quantity    int64  `gorm:"not null"`
	// Price is the unit price snapshotted at checkout.
	Price int64 `gorm:"not null"`
	Ctime int64
	Utime int64
}
