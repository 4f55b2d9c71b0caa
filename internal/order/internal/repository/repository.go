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
	"database/sql"

	"github.com/batiknusa/storefront/internal/order/internal/domain"
	"github.com/batiknusa/storefront/internal/order/internal/repository/dao"
	"github.com/batiknusa/storefront/internal/payment"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound   = dao.ErrOrderNotFound
	ErrAddressNotFound = dao.ErrAddressNotFound
)

type OrderRepository interface {
	// CreateOrder persists the aggregate atomically. initPayment runs
	// inside the same transaction; its failure rolls back every row.
	CreateOrder(ctx context.Context, order domain.Order, addr domain.Address,
		saved *domain.Address,
		initPayment func(order domain.Order) (payment.CreateResult, error)) (domain.Order, error)

	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)

	ApplyStatusChange(ctx context.Context, orderID int64,
		apply func(order domain.Order) (domain.Order, error)) (before domain.Order, after domain.Order, err error)

	FindPendingPayments(ctx context.Context, afterID int64, limit int, maxCtime int64) ([]domain.Order, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)

	SaveAddress(ctx context.Context, addr domain.Address) (int64, error)
	ListSavedAddresses(ctx context.Context, uid int64) ([]domain.Address, error)
	SetDefaultAddress(ctx context.Context, uid, addressID int64) error
	FindOwnedAddress(ctx context.Context, uid, addressID int64) (domain.Address, error)
}

func NewOrderRepository(orderDAO dao.OrderDAO, addressDAO dao.AddressDAO) OrderRepository {
	return &orderRepository{orderDAO: orderDAO, addressDAO: addressDAO}
}

type orderRepository struct {
	orderDAO   dao.OrderDAO
	addressDAO dao.AddressDAO
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order, addr domain.Address,
	saved *domain.Address,
	initPayment func(order domain.Order) (payment.CreateResult, error)) (domain.Order, error) {
	var savedEntity *dao.ShippingAddress
	if saved != nil {
		entity := r.toAddressEntity(*saved)
		savedEntity = &entity
	}
	items := slice.Map(order.Items, func(_ int, src domain.Item) dao.OrderItem {
		return dao.OrderItem{
			ProductId:   src.ProductID,
			ProductName: src.ProductName,
			Size:        src.Size,
			Quantity:    src.Quantity,
			Price:       src.Price,
		}
	})
	created, err := r.orderDAO.CreateOrder(ctx, r.toOrderEntity(order), items,
		r.toAddressEntity(addr), savedEntity,
		func(o dao.Order) (string, string, error) {
			res, err := initPayment(r.toOrderDomain(o, nil))
			if err != nil {
				return "", "", err
			}
			return res.Token, res.RedirectURL, nil
		})
	if err != nil {
		return domain.Order{}, err
	}
	return r.toOrderDomain(created, order.Items), nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.orderDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) FindBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	o, err := r.orderDAO.FindBySN(ctx, buyerID, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []dao.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = r.orderDAO.FindByBuyer(ctx, buyerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.orderDAO.CountByBuyer(ctx, buyerID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(orders, func(_ int, src dao.Order) domain.Order {
		return r.toOrderDomain(src, nil)
	}), total, nil
}

func (r *orderRepository) ApplyStatusChange(ctx context.Context, orderID int64,
	apply func(order domain.Order) (domain.Order, error)) (domain.Order, domain.Order, error) {
	before, after, err := r.orderDAO.ApplyStatusChange(ctx, orderID,
		func(o dao.Order) (dao.Order, error) {
			updated, err := apply(r.toOrderDomain(o, nil))
			if err != nil {
				return dao.Order{}, err
			}
			o.Status = updated.Status.ToUint8()
			o.PaymentStatus = updated.PaymentStatus.ToUint8()
			o.TrackingNumber = updated.TrackingNumber
			o.TrackingUrl = updated.TrackingURL
			o.AdminNotes = updated.AdminNotes
			return o, nil
		})
	if err != nil {
		return domain.Order{}, domain.Order{}, err
	}
	return r.toOrderDomain(before, nil), r.toOrderDomain(after, nil), nil
}

func (r *orderRepository) FindPendingPayments(ctx context.Context, afterID int64, limit int, maxCtime int64) ([]domain.Order, error) {
	orders, err := r.orderDAO.FindPendingPayments(ctx, afterID, limit, maxCtime)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(_ int, src dao.Order) domain.Order {
		return r.toOrderDomain(src, nil)
	}), nil
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []dao.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = r.orderDAO.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.orderDAO.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(orders, func(_ int, src dao.Order) domain.Order {
		return r.toOrderDomain(src, nil)
	}), total, nil
}

func (r *orderRepository) SaveAddress(ctx context.Context, addr domain.Address) (int64, error) {
	return r.addressDAO.Save(ctx, r.toAddressEntity(addr))
}

func (r *orderRepository) ListSavedAddresses(ctx context.Context, uid int64) ([]domain.Address, error) {
	addrs, err := r.addressDAO.ListSaved(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(addrs, func(_ int, src dao.ShippingAddress) domain.Address {
		return r.toAddressDomain(src)
	}), nil
}

func (r *orderRepository) SetDefaultAddress(ctx context.Context, uid, addressID int64) error {
	return r.addressDAO.SetDefault(ctx, uid, addressID)
}

func (r *orderRepository) FindOwnedAddress(ctx context.Context, uid, addressID int64) (domain.Address, error) {
	addr, err := r.addressDAO.FindOwned(ctx, uid, addressID)
	if err != nil {
		return domain.Address{}, err
	}
	return r.toAddressDomain(addr), nil
}

func (r *orderRepository) withItems(ctx context.Context, o dao.Order) (domain.Order, error) {
	items, err := r.orderDAO.FindItems(ctx, o.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toOrderDomain(o, slice.Map(items, func(_ int, src dao.OrderItem) domain.Item {
		return domain.Item{
			ProductID:   src.ProductId,
			ProductName: src.ProductName,
			Size:        src.Size,
			Quantity:    src.Quantity,
			Price:       src.Price,
		}
	})), nil
}

func (r *orderRepository) toOrderEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:                o.ID,
		SN:                o.SN,
		BuyerId:           o.BuyerID,
		GuestName:         o.GuestName,
		GuestEmail:        o.GuestEmail,
		Status:            o.Status.ToUint8(),
		PaymentStatus:     o.PaymentStatus.ToUint8(),
		PaymentMethod:     string(o.PaymentMethod),
		PaymentToken:      o.PaymentToken,
		PaymentUrl:        o.PaymentURL,
		TotalPrice:        o.TotalPrice,
		ShippingCost:      o.ShippingCost,
		Discount:          o.Discount,
		TotalAmount:       o.TotalAmount,
		ShippingAddressId: o.ShippingAddressID,
		ShippingMethod:    o.ShippingMethod,
		CouponId:          sql.NullInt64{Int64: o.CouponID, Valid: o.CouponID > 0},
		Notes:             o.Notes,
		TrackingNumber:    o.TrackingNumber,
		TrackingUrl:       o.TrackingURL,
		AdminNotes:        o.AdminNotes,
		Ctime:             o.Ctime,
		Utime:             o.Utime,
	}
}

func (r *orderRepository) toOrderDomain(o dao.Order, items []domain.Item) domain.Order {
	return domain.Order{
		ID:                o.Id,
		SN:                o.SN,
		BuyerID:           o.BuyerId,
		GuestName:         o.GuestName,
		GuestEmail:        o.GuestEmail,
		Status:            domain.Status(o.Status),
		PaymentStatus:     payment.Status(o.PaymentStatus),
		PaymentMethod:     payment.Method(o.PaymentMethod),
		PaymentToken:      o.PaymentToken,
		PaymentURL:        o.PaymentUrl,
		TotalPrice:        o.TotalPrice,
		ShippingCost:      o.ShippingCost,
		Discount:          o.Discount,
		TotalAmount:       o.TotalAmount,
		ShippingAddressID: o.ShippingAddressId,
		ShippingMethod:    o.ShippingMethod,
		CouponID:          o.CouponId.Int64,
		Notes:             o.Notes,
		TrackingNumber:    o.TrackingNumber,
		TrackingURL:       o.TrackingUrl,
		AdminNotes:        o.AdminNotes,
		Items:             items,
		Ctime:             o.Ctime,
		Utime:             o.Utime,
	}
}

func (r *orderRepository) toAddressEntity(a domain.Address) dao.ShippingAddress {
	return dao.ShippingAddress{
		Id:         a.ID,
		UserId:     sql.NullInt64{Int64: a.UserID, Valid: a.UserID > 0},
		OrderId:    sql.NullInt64{Int64: a.OrderID, Valid: a.OrderID > 0},
		FullName:   a.FullName,
		Address:    a.Address,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
		Ctime:      a.Ctime,
		Utime:      a.Utime,
	}
}

func (r *orderRepository) toAddressDomain(a dao.ShippingAddress) domain.Address {
	return domain.Address{
		ID:         a.Id,
		UserID:     a.UserId.Int64,
		OrderID:    a.OrderId.Int64,
		FullName:   a.FullName,
		Address:    a.Address,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
		Ctime:      a.Ctime,
		Utime:      a.Utime,
	}
}
