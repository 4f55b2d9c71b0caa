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
	"errors"
	"fmt"

	"github.com/batiknusa/storefront/internal/cart"
	"github.com/batiknusa/storefront/internal/coupon"
	"github.com/batiknusa/storefront/internal/order/internal/domain"
	"github.com/batiknusa/storefront/internal/order/internal/event"
	"github.com/batiknusa/storefront/internal/order/internal/repository"
	"github.com/batiknusa/storefront/internal/payment"
	"github.com/batiknusa/storefront/internal/pkg/sequencenumber"
	"github.com/batiknusa/storefront/internal/shipping"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrIncompleteAddress       = errors.New("shipping address is incomplete")
	ErrNotAddressOwner         = errors.New("address does not belong to the user")
	ErrOrderNotFound           = repository.ErrOrderNotFound
	ErrAddressNotFound         = repository.ErrAddressNotFound
	ErrInvalidStatusTransition = errors.New("order status does not permit this action")
	// ErrTerminalOrder marks a reconciliation attempt against an order whose
	// payment already settled one way or the other.
	ErrTerminalOrder = errors.New("order is in a terminal state")
	ErrPaymentInit   = errors.New("payment initiation failed")

	ErrNoShippingSelected = shipping.ErrNoShippingSelected
	ErrCouponInvalid      = coupon.ErrInvalidOrExpired
)

type Service interface {
	// Checkout turns the session's cart, coupon and shipping selection into
	// a persisted order with a payment page. Everything commits atomically:
	// a gateway failure leaves no rows behind.
	Checkout(ctx context.Context, intent domain.CheckoutIntent) (domain.Order, error)

	// Reconcile applies a mapped gateway status to the order. Webhook, poll
	// and background sync all converge here. The sn must match the stored
	// order; the webhook arrives unauthenticated, so a bare id is not proof
	// the caller ever saw this order. It reports whether the order moved.
	Reconcile(ctx context.Context, orderID int64, sn string, target payment.Status) (bool, error)
	// PollAndReconcile queries the gateway for the order's current status
	// and reconciles it.
	PollAndReconcile(ctx context.Context, order domain.Order) (bool, error)
	// SyncStatus is the buyer-triggered poll path.
	SyncStatus(ctx context.Context, buyerID int64, orderSN string) (bool, error)

	Cancel(ctx context.Context, buyerID int64, orderSN string) error
	MarkCompleted(ctx context.Context, buyerID int64, orderSN string) error

	FindBySN(ctx context.Context, buyerID int64, orderSN string) (domain.Order, error)
	List(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)

	SaveAddress(ctx context.Context, uid int64, addressID int64, payload domain.AddressPayload, isDefault bool) (int64, error)
	ListAddresses(ctx context.Context, uid int64) ([]domain.Address, error)
	SetDefaultAddress(ctx context.Context, uid, addressID int64) error

	AdminList(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	AdminUpdate(ctx context.Context, orderID int64, update domain.AdminUpdate) error

	FindPendingPayments(ctx context.Context, afterID int64, limit int, maxCtime int64) ([]domain.Order, error)
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	couponSvc coupon.Service,
	shippingSvc shipping.Service,
	gatewayClient payment.Client,
	snGenerator *sequencenumber.Generator,
	producer event.StatusChangedEventProducer) Service {
	return &service{
		repo:          repo,
		cartSvc:       cartSvc,
		couponSvc:     couponSvc,
		shippingSvc:   shippingSvc,
		gatewayClient: gatewayClient,
		snGenerator:   snGenerator,
		producer:      producer,
		logger:        elog.DefaultLogger,
	}
}

type service struct {
	repo          repository.OrderRepository
	cartSvc       cart.Service
	couponSvc     coupon.Service
	shippingSvc   shipping.Service
	gatewayClient payment.Client
	snGenerator   *sequencenumber.Generator
	producer      event.StatusChangedEventProducer
	logger        *elog.Component
}

func (s *service) Checkout(ctx context.Context, intent domain.CheckoutIntent) (domain.Order, error) {
	uid := intent.BuyerID
	c, err := s.cartSvc.Get(ctx, uid)
	if err != nil {
		return domain.Order{}, err
	}
	if c.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}
	if !intent.PaymentMethod.Valid() {
		return domain.Order{}, ErrInvalidPaymentMethod
	}
	sel, err := s.shippingSvc.Selected(ctx, uid)
	if err != nil {
		return domain.Order{}, err
	}

	addr, saved, err := s.resolveAddress(ctx, intent)
	if err != nil {
		return domain.Order{}, err
	}

	subtotal := c.Total()
	discount, couponID, err := s.resolveDiscount(ctx, uid, subtotal)
	if err != nil {
		return domain.Order{}, err
	}

	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		SN:             sn,
		BuyerID:        uid,
		GuestName:      intent.GuestName,
		GuestEmail:     intent.GuestEmail,
		Status:         domain.StatusPending,
		PaymentStatus:  payment.StatusPending,
		PaymentMethod:  intent.PaymentMethod,
		TotalPrice:     subtotal,
		ShippingCost:   sel.Price,
		Discount:       discount,
		TotalAmount:    subtotal + sel.Price - discount,
		ShippingMethod: sel.Label(),
		CouponID:       couponID,
		Notes:          intent.Notes,
		Items: slice.Map(c.Lines, func(_ int, src cart.Line) domain.Item {
			return domain.Item{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Size:        src.Size,
				Quantity:    src.Quantity,
				Price:       src.UnitPrice,
			}
		}),
	}

	created, err := s.repo.CreateOrder(ctx, order, addr, saved,
		func(o domain.Order) (payment.CreateResult, error) {
			res, err := s.gatewayClient.CreateTransaction(ctx, payment.Transaction{
				GatewayOrderID: payment.BuildGatewayOrderID(o.ID, o.SN),
				Amount:         o.TotalAmount,
				CustomerName:   addr.FullName,
				CustomerEmail:  intent.GuestEmail,
			})
			if err != nil {
				return payment.CreateResult{}, fmt.Errorf("%w: %s", ErrPaymentInit, err.Error())
			}
			return res, nil
		})
	if err != nil {
		return domain.Order{}, err
	}

	// Session state was consumed by the committed order. Failures here do
	// not undo the order, they only leave stale session data behind.
	if err := s.cartSvc.Clear(ctx, uid); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			elog.FieldErr(err), elog.Int64("uid", uid))
	}
	if couponID > 0 {
		if err := s.couponSvc.Remove(ctx, uid); err != nil {
			s.logger.Warn("failed to clear coupon after checkout",
				elog.FieldErr(err), elog.Int64("uid", uid))
		}
	}
	if err := s.shippingSvc.ClearSelection(ctx, uid); err != nil {
		s.logger.Warn("failed to clear shipping selection after checkout",
			elog.FieldErr(err), elog.Int64("uid", uid))
	}
	return created, nil
}

func (s *service) resolveAddress(ctx context.Context, intent domain.CheckoutIntent) (domain.Address, *domain.Address, error) {
	uid := intent.BuyerID
	if intent.SavedAddressID > 0 {
		src, err := s.repo.FindOwnedAddress(ctx, uid, intent.SavedAddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domain.Address{}, nil, ErrNotAddressOwner
			}
			return domain.Address{}, nil, err
		}
		// Orders freeze a clone so later edits to the saved address never
		// rewrite shipping history.
		return domain.Address{
			UserID:     uid,
			FullName:   src.FullName,
			Address:    src.Address,
			City:       src.City,
			Province:   src.Province,
			PostalCode: src.PostalCode,
			Phone:      src.Phone,
		}, nil, nil
	}
	if !intent.Address.Complete() {
		return domain.Address{}, nil, ErrIncompleteAddress
	}
	addr := domain.Address{
		UserID:     uid,
		FullName:   intent.Address.FullName,
		Address:    intent.Address.Address,
		City:       intent.Address.City,
		Province:   intent.Address.Province,
		PostalCode: intent.Address.PostalCode,
		Phone:      intent.Address.Phone,
	}
	var saved *domain.Address
	if intent.SaveAddress {
		saved = &domain.Address{
			UserID:     uid,
			FullName:   intent.Address.FullName,
			Address:    intent.Address.Address,
			City:       intent.Address.City,
			Province:   intent.Address.Province,
			PostalCode: intent.Address.PostalCode,
			Phone:      intent.Address.Phone,
			IsDefault:  intent.SetAsDefault,
		}
	}
	return addr, saved, nil
}

func (s *service) resolveDiscount(ctx context.Context, uid, subtotal int64) (int64, int64, error) {
	snapshot, err := s.couponSvc.Current(ctx, uid)
	if errors.Is(err, coupon.ErrNoCouponApplied) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}
	// The coupon may have expired between apply and checkout.
	if err := s.couponSvc.Revalidate(ctx, snapshot); err != nil {
		return 0, 0, err
	}
	return snapshot.DiscountAmount(subtotal), snapshot.ID, nil
}

func (s *service) Reconcile(ctx context.Context, orderID int64, sn string, target payment.Status) (bool, error) {
	before, after, err := s.repo.ApplyStatusChange(ctx, orderID,
		func(o domain.Order) (domain.Order, error) {
			if o.SN != sn {
				return domain.Order{}, fmt.Errorf("%w: sn mismatch for order %d",
					ErrOrderNotFound, o.ID)
			}
			if o.PaymentStatus == target {
				// Duplicate delivery of the same event is a no-op.
				return o, nil
			}
			if o.PaymentStatus.Terminal() || o.Status.Terminal() {
				return domain.Order{}, fmt.Errorf("%w: order %d is %d/%d, refusing %d",
					ErrTerminalOrder, o.ID, o.Status, o.PaymentStatus, target)
			}
			o.PaymentStatus = target
			o.Status = domain.StatusFor(target)
			return o, nil
		})
	if err != nil {
		if errors.Is(err, ErrTerminalOrder) {
			s.logger.Warn("reconciliation conflict on terminal order",
				elog.Int64("orderID", orderID),
				elog.FieldErr(err))
		}
		return false, err
	}
	s.emitIfChanged(ctx, before, after)
	return before.Status != after.Status || before.PaymentStatus != after.PaymentStatus, nil
}

func (s *service) PollAndReconcile(ctx context.Context, order domain.Order) (bool, error) {
	target, err := s.gatewayClient.QueryStatus(ctx,
		payment.BuildGatewayOrderID(order.ID, order.SN))
	if err != nil {
		return false, err
	}
	return s.Reconcile(ctx, order.ID, order.SN, target)
}

func (s *service) SyncStatus(ctx context.Context, buyerID int64, orderSN string) (bool, error) {
	o, err := s.repo.FindBySN(ctx, buyerID, orderSN)
	if err != nil {
		return false, err
	}
	return s.PollAndReconcile(ctx, o)
}

func (s *service) Cancel(ctx context.Context, buyerID int64, orderSN string) error {
	o, err := s.repo.FindBySN(ctx, buyerID, orderSN)
	if err != nil {
		return err
	}
	before, after, err := s.repo.ApplyStatusChange(ctx, o.ID,
		func(o domain.Order) (domain.Order, error) {
			if o.Status != domain.StatusPending && o.Status != domain.StatusProcessing {
				return domain.Order{}, fmt.Errorf("%w: cancel from %d", ErrInvalidStatusTransition, o.Status)
			}
			o.Status = domain.StatusCancelled
			o.PaymentStatus = payment.StatusFailed
			return o, nil
		})
	if err != nil {
		return err
	}
	s.emitIfChanged(ctx, before, after)
	return nil
}

func (s *service) MarkCompleted(ctx context.Context, buyerID int64, orderSN string) error {
	o, err := s.repo.FindBySN(ctx, buyerID, orderSN)
	if err != nil {
		return err
	}
	before, after, err := s.repo.ApplyStatusChange(ctx, o.ID,
		func(o domain.Order) (domain.Order, error) {
			if o.Status != domain.StatusShipped {
				return domain.Order{}, fmt.Errorf("%w: complete from %d", ErrInvalidStatusTransition, o.Status)
			}
			o.Status = domain.StatusCompleted
			return o, nil
		})
	if err != nil {
		return err
	}
	s.emitIfChanged(ctx, before, after)
	return nil
}

func (s *service) FindBySN(ctx context.Context, buyerID int64, orderSN string) (domain.Order, error) {
	return s.repo.FindBySN(ctx, buyerID, orderSN)
}

func (s *service) List(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	return s.repo.ListByBuyer(ctx, buyerID, offset, limit)
}

func (s *service) SaveAddress(ctx context.Context, uid int64, addressID int64, payload domain.AddressPayload, isDefault bool) (int64, error) {
	if !payload.Complete() {
		return 0, ErrIncompleteAddress
	}
	return s.repo.SaveAddress(ctx, domain.Address{
		ID:         addressID,
		UserID:     uid,
		FullName:   payload.FullName,
		Address:    payload.Address,
		City:       payload.City,
		Province:   payload.Province,
		PostalCode: payload.PostalCode,
		Phone:      payload.Phone,
		IsDefault:  isDefault,
	})
}

func (s *service) ListAddresses(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.ListSavedAddresses(ctx, uid)
}

func (s *service) SetDefaultAddress(ctx context.Context, uid, addressID int64) error {
	return s.repo.SetDefaultAddress(ctx, uid, addressID)
}

func (s *service) AdminList(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) AdminUpdate(ctx context.Context, orderID int64, update domain.AdminUpdate) error {
	before, after, err := s.repo.ApplyStatusChange(ctx, orderID,
		func(o domain.Order) (domain.Order, error) {
			if update.Status != domain.StatusUnknown {
				o.Status = update.Status
			}
			if update.TrackingNumber != "" {
				o.TrackingNumber = update.TrackingNumber
			}
			if update.TrackingURL != "" {
				o.TrackingURL = update.TrackingURL
			}
			if update.AdminNotes != "" {
				o.AdminNotes = update.AdminNotes
			}
			return o, nil
		})
	if err != nil {
		return err
	}
	s.emitIfChanged(ctx, before, after)
	return nil
}

func (s *service) FindPendingPayments(ctx context.Context, afterID int64, limit int, maxCtime int64) ([]domain.Order, error) {
	return s.repo.FindPendingPayments(ctx, afterID, limit, maxCtime)
}

// emitIfChanged publishes a status event exactly once per call, using the
// status captured before the update.
func (s *service) emitIfChanged(ctx context.Context, before, after domain.Order) {
	if before.Status == after.Status {
		return
	}
	err := s.producer.Produce(ctx, event.StatusChangedEvent{
		OrderID:   after.ID,
		OrderSN:   after.SN,
		BuyerID:   after.BuyerID,
		OldStatus: before.Status.ToUint8(),
		NewStatus: after.Status.ToUint8(),
	})
	if err != nil {
		s.logger.Error("failed to publish order status event",
			elog.FieldErr(err),
			elog.Int64("orderID", after.ID))
	}
}
