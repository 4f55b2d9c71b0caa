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
	"sort"
	"testing"
	"time"

	"github.com/batiknusa/storefront/internal/cart"
	"github.com/batiknusa/storefront/internal/coupon"
	"github.com/batiknusa/storefront/internal/order/internal/domain"
	"github.com/batiknusa/storefront/internal/order/internal/event"
	"github.com/batiknusa/storefront/internal/order/internal/repository"
	"github.com/batiknusa/storefront/internal/payment"
	paymentmocks "github.com/batiknusa/storefront/internal/payment/mocks"
	"github.com/batiknusa/storefront/internal/pkg/sequencenumber"
	"github.com/batiknusa/storefront/internal/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUID = int64(42)

// fakeOrderRepository keeps the aggregate in memory but honors the real
// repository's contract: initPayment failing means nothing is stored.
type fakeOrderRepository struct {
	nextOrderID int64
	nextAddrID  int64
	orders      map[int64]domain.Order
	addresses   map[int64]domain.Address
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{
		orders:    make(map[int64]domain.Order),
		addresses: make(map[int64]domain.Address),
	}
}

func (f *fakeOrderRepository) CreateOrder(_ context.Context, order domain.Order, addr domain.Address,
	saved *domain.Address,
	initPayment func(order domain.Order) (payment.CreateResult, error)) (domain.Order, error) {
	f.nextAddrID++
	addr.ID = f.nextAddrID
	f.nextOrderID++
	order.ID = f.nextOrderID
	order.ShippingAddressID = addr.ID
	addr.OrderID = order.ID

	res, err := initPayment(order)
	if err != nil {
		return domain.Order{}, err
	}
	order.PaymentToken = res.Token
	order.PaymentURL = res.RedirectURL

	if saved != nil {
		s := *saved
		f.nextAddrID++
		s.ID = f.nextAddrID
		if s.IsDefault {
			for id, a := range f.addresses {
				if a.UserID == s.UserID && a.OrderID == 0 {
					a.IsDefault = false
					f.addresses[id] = a
				}
			}
		}
		f.addresses[s.ID] = s
	}
	f.addresses[addr.ID] = addr
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepository) FindByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, repository.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepository) FindBySN(_ context.Context, buyerID int64, sn string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.SN == sn {
			return o, nil
		}
	}
	return domain.Order{}, repository.ErrOrderNotFound
}

func (f *fakeOrderRepository) ListByBuyer(_ context.Context, buyerID int64, _, _ int) ([]domain.Order, int64, error) {
	var orders []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			orders = append(orders, o)
		}
	}
	return orders, int64(len(orders)), nil
}

func (f *fakeOrderRepository) ApplyStatusChange(_ context.Context, orderID int64,
	apply func(order domain.Order) (domain.Order, error)) (domain.Order, domain.Order, error) {
	before, ok := f.orders[orderID]
	if !ok {
		return domain.Order{}, domain.Order{}, repository.ErrOrderNotFound
	}
	after, err := apply(before)
	if err != nil {
		return domain.Order{}, domain.Order{}, err
	}
	stored := before
	stored.Status = after.Status
	stored.PaymentStatus = after.PaymentStatus
	stored.TrackingNumber = after.TrackingNumber
	stored.TrackingURL = after.TrackingURL
	stored.AdminNotes = after.AdminNotes
	f.orders[orderID] = stored
	return before, stored, nil
}

func (f *fakeOrderRepository) FindPendingPayments(_ context.Context, afterID int64, limit int, _ int64) ([]domain.Order, error) {
	var orders []domain.Order
	for _, o := range f.orders {
		if o.PaymentStatus == payment.StatusPending && o.ID > afterID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (f *fakeOrderRepository) List(_ context.Context, _, _ int) ([]domain.Order, int64, error) {
	var orders []domain.Order
	for _, o := range f.orders {
		orders = append(orders, o)
	}
	return orders, int64(len(orders)), nil
}

func (f *fakeOrderRepository) SaveAddress(_ context.Context, addr domain.Address) (int64, error) {
	if addr.ID == 0 {
		f.nextAddrID++
		addr.ID = f.nextAddrID
	}
	f.addresses[addr.ID] = addr
	return addr.ID, nil
}

func (f *fakeOrderRepository) ListSavedAddresses(_ context.Context, uid int64) ([]domain.Address, error) {
	var addrs []domain.Address
	for _, a := range f.addresses {
		if a.UserID == uid && a.OrderID == 0 {
			addrs = append(addrs, a)
		}
	}
	return addrs, nil
}

func (f *fakeOrderRepository) SetDefaultAddress(_ context.Context, uid, addressID int64) error {
	target, ok := f.addresses[addressID]
	if !ok || target.UserID != uid || target.OrderID != 0 {
		return repository.ErrAddressNotFound
	}
	for id, a := range f.addresses {
		if a.UserID == uid && a.OrderID == 0 {
			a.IsDefault = id == addressID
			f.addresses[id] = a
		}
	}
	return nil
}

func (f *fakeOrderRepository) FindOwnedAddress(_ context.Context, uid, addressID int64) (domain.Address, error) {
	a, ok := f.addresses[addressID]
	if !ok || a.UserID != uid || a.OrderID != 0 {
		return domain.Address{}, repository.ErrAddressNotFound
	}
	return a, nil
}

type fakeCartService struct {
	cart    cart.Cart
	cleared bool
}

func (f *fakeCartService) Add(_ context.Context, _, _, _ int64, _ string) (cart.Cart, error) {
	panic("not used")
}

func (f *fakeCartService) Update(_ context.Context, _ int64, _ string, _ int64) (cart.Cart, error) {
	panic("not used")
}

func (f *fakeCartService) Remove(_ context.Context, _ int64, _ string) (cart.Cart, error) {
	panic("not used")
}

func (f *fakeCartService) Clear(_ context.Context, _ int64) error {
	f.cleared = true
	return nil
}

func (f *fakeCartService) Get(_ context.Context, _ int64) (cart.Cart, error) {
	return f.cart, nil
}

type fakeCouponService struct {
	snapshot coupon.Snapshot
	applied  bool
	expired  bool
	removed  bool
}

func (f *fakeCouponService) Apply(_ context.Context, _ int64, _ string) (coupon.Snapshot, error) {
	panic("not used")
}

func (f *fakeCouponService) Remove(_ context.Context, _ int64) error {
	f.removed = true
	return nil
}

func (f *fakeCouponService) Current(_ context.Context, _ int64) (coupon.Snapshot, error) {
	if !f.applied {
		return coupon.Snapshot{}, coupon.ErrNoCouponApplied
	}
	return f.snapshot, nil
}

func (f *fakeCouponService) Revalidate(_ context.Context, _ coupon.Snapshot) error {
	if f.expired {
		return coupon.ErrInvalidOrExpired
	}
	return nil
}

type fakeShippingService struct {
	selection   shipping.Selection
	hasSelected bool
	cleared     bool
}

func (f *fakeShippingService) Options(_ context.Context, _ int64, _ string) ([]shipping.Option, error) {
	panic("not used")
}

func (f *fakeShippingService) Select(_ context.Context, _ int64, _ shipping.Selection) error {
	panic("not used")
}

func (f *fakeShippingService) Selected(_ context.Context, _ int64) (shipping.Selection, error) {
	if !f.hasSelected {
		return shipping.Selection{}, shipping.ErrNoShippingSelected
	}
	return f.selection, nil
}

func (f *fakeShippingService) ClearSelection(_ context.Context, _ int64) error {
	f.cleared = true
	return nil
}

type fakeProducer struct {
	events []event.StatusChangedEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.StatusChangedEvent) error {
	f.events = append(f.events, evt)
	return nil
}

type fixture struct {
	repo     *fakeOrderRepository
	cart     *fakeCartService
	coupon   *fakeCouponService
	shipping *fakeShippingService
	client   *paymentmocks.MockClient
	producer *fakeProducer
	svc      Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo: newFakeOrderRepository(),
		cart: &fakeCartService{cart: cart.Cart{Lines: []cart.Line{
			{ProductID: 1, ProductName: "Batik Parang", UnitPrice: 100000, Size: "M", Quantity: 2},
		}}},
		coupon: &fakeCouponService{},
		shipping: &fakeShippingService{
			selection: shipping.Selection{
				CourierCode: "jne", CourierName: "JNE",
				ServiceCode: "REG", ServiceName: "Reguler",
				Price: 15000, Duration: "2-3",
			},
			hasSelected: true,
		},
		client:   paymentmocks.NewMockClient(ctrl),
		producer: &fakeProducer{},
	}
	gen := sequencenumber.NewGeneratorWith(
		func(_ time.Time) int64 { return 1700000000000 },
		func() string { return "abcdefghijklmnopqrstuvwxyz" })
	f.svc = NewService(f.repo, f.cart, f.coupon, f.shipping, f.client, gen, f.producer)
	return f
}

func validIntent() domain.CheckoutIntent {
	return domain.CheckoutIntent{
		BuyerID:       testUID,
		PaymentMethod: payment.MethodBankTransfer,
		Address: domain.AddressPayload{
			FullName:   "Siti Rahayu",
			Address:    "Jl. Malioboro No. 10",
			City:       "Yogyakarta",
			Province:   "DI Yogyakarta",
			PostalCode: "55213",
			Phone:      "081234567890",
		},
	}
}

func TestService_Checkout(t *testing.T) {
	t.Parallel()

	t.Run("no coupon", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn payment.Transaction) (payment.CreateResult, error) {
				assert.Equal(t, int64(215000), txn.Amount)
				id, _, err := payment.ParseGatewayOrderID(txn.GatewayOrderID)
				require.NoError(t, err)
				assert.Equal(t, int64(1), id)
				return payment.CreateResult{Token: "tok", RedirectURL: "https://pay.example.com/tok"}, nil
			})

		order, err := f.svc.Checkout(context.Background(), validIntent())
		require.NoError(t, err)

		assert.Equal(t, int64(200000), order.TotalPrice)
		assert.Equal(t, int64(15000), order.ShippingCost)
		assert.Zero(t, order.Discount)
		assert.Equal(t, int64(215000), order.TotalAmount)
		assert.Equal(t, order.TotalPrice+order.ShippingCost-order.Discount, order.TotalAmount)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, payment.StatusPending, order.PaymentStatus)
		assert.Equal(t, "JNE - Reguler", order.ShippingMethod)
		assert.Equal(t, "tok", order.PaymentToken)
		require.Len(t, order.Items, 1)
		assert.Equal(t, domain.Item{
			ProductID: 1, ProductName: "Batik Parang", Size: "M", Quantity: 2, Price: 100000,
		}, order.Items[0])
		assert.Len(t, order.SN, 32)

		// the order-bound address is linked back to the order
		addr := f.repo.addresses[order.ShippingAddressID]
		assert.Equal(t, order.ID, addr.OrderID)
		assert.Equal(t, "Siti Rahayu", addr.FullName)

		// session state was consumed
		assert.True(t, f.cart.cleared)
		assert.True(t, f.shipping.cleared)
		assert.False(t, f.coupon.removed)
	})

	t.Run("with coupon", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.coupon.applied = true
		f.coupon.snapshot = coupon.Snapshot{ID: 7, Code: "HEMAT10", DiscountPercent: 10}
		f.client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txn payment.Transaction) (payment.CreateResult, error) {
				assert.Equal(t, int64(195000), txn.Amount)
				return payment.CreateResult{Token: "tok", RedirectURL: "url"}, nil
			})

		order, err := f.svc.Checkout(context.Background(), validIntent())
		require.NoError(t, err)
		assert.Equal(t, int64(20000), order.Discount)
		assert.Equal(t, int64(195000), order.TotalAmount)
		assert.Equal(t, int64(7), order.CouponID)
		assert.True(t, f.coupon.removed)
	})

	t.Run("gateway failure rolls everything back", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			Return(payment.CreateResult{}, payment.ErrGateway)

		_, err := f.svc.Checkout(context.Background(), validIntent())
		assert.ErrorIs(t, err, ErrPaymentInit)
		assert.Empty(t, f.repo.orders)
		assert.Empty(t, f.repo.addresses)
		assert.False(t, f.cart.cleared)
		assert.False(t, f.shipping.cleared)
	})

	t.Run("empty cart", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.cart.cart = cart.Cart{}
		_, err := f.svc.Checkout(context.Background(), validIntent())
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("no shipping selected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.shipping.hasSelected = false
		_, err := f.svc.Checkout(context.Background(), validIntent())
		assert.ErrorIs(t, err, ErrNoShippingSelected)
	})

	t.Run("invalid payment method", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		intent := validIntent()
		intent.PaymentMethod = "cheque"
		_, err := f.svc.Checkout(context.Background(), intent)
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})

	t.Run("incomplete address", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		intent := validIntent()
		intent.Address.Phone = ""
		_, err := f.svc.Checkout(context.Background(), intent)
		assert.ErrorIs(t, err, ErrIncompleteAddress)
	})

	t.Run("coupon expired between apply and checkout", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.coupon.applied = true
		f.coupon.expired = true
		_, err := f.svc.Checkout(context.Background(), validIntent())
		assert.ErrorIs(t, err, ErrCouponInvalid)
		assert.Empty(t, f.repo.orders)
	})

	t.Run("saved address is cloned", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		savedID, err := f.svc.SaveAddress(context.Background(), testUID, 0, domain.AddressPayload{
			FullName: "Siti Rahayu", Address: "Jl. Malioboro No. 10",
			City: "Yogyakarta", Province: "DI Yogyakarta",
			PostalCode: "55213", Phone: "081234567890",
		}, false)
		require.NoError(t, err)

		f.client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			Return(payment.CreateResult{Token: "tok", RedirectURL: "url"}, nil)

		intent := domain.CheckoutIntent{
			BuyerID:        testUID,
			PaymentMethod:  payment.MethodEWallet,
			SavedAddressID: savedID,
		}
		order, err := f.svc.Checkout(context.Background(), intent)
		require.NoError(t, err)

		// the order freezes its own copy, the saved row stays reusable
		assert.NotEqual(t, savedID, order.ShippingAddressID)
		assert.Zero(t, f.repo.addresses[savedID].OrderID)
		assert.Equal(t, order.ID, f.repo.addresses[order.ShippingAddressID].OrderID)
	})

	t.Run("saved address of another user", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		otherID, err := f.svc.SaveAddress(context.Background(), testUID+1, 0, domain.AddressPayload{
			FullName: "Budi", Address: "Jl. Sudirman 1", City: "Jakarta",
			Province: "DKI Jakarta", PostalCode: "10110", Phone: "0811111111",
		}, false)
		require.NoError(t, err)

		intent := validIntent()
		intent.SavedAddressID = otherID
		_, err = f.svc.Checkout(context.Background(), intent)
		assert.ErrorIs(t, err, ErrNotAddressOwner)
	})
}

// checkout creates a pending order and returns the fixture for the
// reconciliation tests.
func checkedOut(t *testing.T) (*fixture, domain.Order) {
	f := newFixture(t)
	f.client.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		Return(payment.CreateResult{Token: "tok", RedirectURL: "url"}, nil)
	order, err := f.svc.Checkout(context.Background(), validIntent())
	require.NoError(t, err)
	return f, order
}

func TestService_Reconcile(t *testing.T) {
	t.Parallel()

	t.Run("settlement moves the order to processing", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		changed, err := f.svc.Reconcile(context.Background(), order.ID, order.SN, payment.StatusPaid)
		require.NoError(t, err)
		assert.True(t, changed)

		got := f.repo.orders[order.ID]
		assert.Equal(t, payment.StatusPaid, got.PaymentStatus)
		assert.Equal(t, domain.StatusProcessing, got.Status)

		require.Len(t, f.producer.events, 1)
		assert.Equal(t, event.StatusChangedEvent{
			OrderID:   order.ID,
			OrderSN:   order.SN,
			BuyerID:   testUID,
			OldStatus: domain.StatusPending.ToUint8(),
			NewStatus: domain.StatusProcessing.ToUint8(),
		}, f.producer.events[0])
	})

	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		_, err := f.svc.Reconcile(context.Background(), order.ID, order.SN, payment.StatusPaid)
		require.NoError(t, err)

		changed, err := f.svc.Reconcile(context.Background(), order.ID, order.SN, payment.StatusPaid)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Len(t, f.producer.events, 1)
		assert.Equal(t, domain.StatusProcessing, f.repo.orders[order.ID].Status)
	})

	t.Run("terminal order rejects a different status", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		_, err := f.svc.Reconcile(context.Background(), order.ID, order.SN, payment.StatusPaid)
		require.NoError(t, err)

		// a stale expire event must not resurrect or cancel the paid order
		_, err = f.svc.Reconcile(context.Background(), order.ID, order.SN, payment.StatusFailed)
		assert.ErrorIs(t, err, ErrTerminalOrder)
		got := f.repo.orders[order.ID]
		assert.Equal(t, payment.StatusPaid, got.PaymentStatus)
		assert.Equal(t, domain.StatusProcessing, got.Status)
		assert.Len(t, f.producer.events, 1)
	})

	t.Run("challenge keeps the order pending", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		changed, err := f.svc.Reconcile(context.Background(), order.ID, order.SN, payment.StatusChallenge)
		require.NoError(t, err)
		assert.True(t, changed)

		got := f.repo.orders[order.ID]
		assert.Equal(t, payment.StatusChallenge, got.PaymentStatus)
		assert.Equal(t, domain.StatusPending, got.Status)
		// fulfillment did not move, so no event
		assert.Empty(t, f.producer.events)
	})

	t.Run("failure cancels the order", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		changed, err := f.svc.Reconcile(context.Background(), order.ID, order.SN, payment.StatusFailed)
		require.NoError(t, err)
		assert.True(t, changed)
		got := f.repo.orders[order.ID]
		assert.Equal(t, domain.StatusCancelled, got.Status)
		require.Len(t, f.producer.events, 1)
		assert.Equal(t, domain.StatusCancelled.ToUint8(), f.producer.events[0].NewStatus)
	})

	t.Run("unknown order", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.Reconcile(context.Background(), 999, "no-such-sn", payment.StatusPaid)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("sn mismatch leaves the order untouched", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		// A guessed id with a fabricated SN must not settle someone's order.
		_, err := f.svc.Reconcile(context.Background(), order.ID, "FORGED", payment.StatusPaid)
		assert.ErrorIs(t, err, ErrOrderNotFound)

		got := f.repo.orders[order.ID]
		assert.Equal(t, payment.StatusPending, got.PaymentStatus)
		assert.Equal(t, domain.StatusPending, got.Status)
		assert.Empty(t, f.producer.events)
	})
}

func TestService_SyncStatus(t *testing.T) {
	t.Parallel()
	f, order := checkedOut(t)
	f.client.EXPECT().QueryStatus(gomock.Any(), payment.BuildGatewayOrderID(order.ID, order.SN)).
		Return(payment.StatusPaid, nil)

	changed, err := f.svc.SyncStatus(context.Background(), testUID, order.SN)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.StatusProcessing, f.repo.orders[order.ID].Status)
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("pending order", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		require.NoError(t, f.svc.Cancel(context.Background(), testUID, order.SN))
		got := f.repo.orders[order.ID]
		assert.Equal(t, domain.StatusCancelled, got.Status)
		assert.Equal(t, payment.StatusFailed, got.PaymentStatus)
		assert.Len(t, f.producer.events, 1)
	})

	t.Run("already cancelled", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		require.NoError(t, f.svc.Cancel(context.Background(), testUID, order.SN))
		err := f.svc.Cancel(context.Background(), testUID, order.SN)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Len(t, f.producer.events, 1)
	})

	t.Run("not the owner", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		err := f.svc.Cancel(context.Background(), testUID+1, order.SN)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_MarkCompleted(t *testing.T) {
	t.Parallel()

	t.Run("shipped order", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		require.NoError(t, f.svc.AdminUpdate(context.Background(), order.ID, domain.AdminUpdate{
			Status: domain.StatusShipped,
		}))
		require.NoError(t, f.svc.MarkCompleted(context.Background(), testUID, order.SN))
		assert.Equal(t, domain.StatusCompleted, f.repo.orders[order.ID].Status)
	})

	t.Run("not yet shipped", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		err := f.svc.MarkCompleted(context.Background(), testUID, order.SN)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})
}

func TestService_AdminUpdate(t *testing.T) {
	t.Parallel()
	f, order := checkedOut(t)
	require.NoError(t, f.svc.AdminUpdate(context.Background(), order.ID, domain.AdminUpdate{
		Status:         domain.StatusShipped,
		TrackingNumber: "JNE123456",
		TrackingURL:    "https://tracking.example.com/JNE123456",
		AdminNotes:     "dikirim pagi",
	}))
	got := f.repo.orders[order.ID]
	assert.Equal(t, domain.StatusShipped, got.Status)
	assert.Equal(t, "JNE123456", got.TrackingNumber)

	require.Len(t, f.producer.events, 1)
	assert.Equal(t, domain.StatusPending.ToUint8(), f.producer.events[0].OldStatus)
	assert.Equal(t, domain.StatusShipped.ToUint8(), f.producer.events[0].NewStatus)

	// tracking-only update emits nothing
	require.NoError(t, f.svc.AdminUpdate(context.Background(), order.ID, domain.AdminUpdate{
		AdminNotes: "kurir kedua",
	}))
	assert.Len(t, f.producer.events, 1)
}

func TestService_SetDefaultAddress(t *testing.T) {
	t.Parallel()

	payloadFor := func(name string) domain.AddressPayload {
		return domain.AddressPayload{
			FullName: name, Address: "Jl. Malioboro No. 10",
			City: "Yogyakarta", Province: "DI Yogyakarta",
			PostalCode: "55213", Phone: "081234567890",
		}
	}
	defaultIDs := func(f *fixture, uid int64) []int64 {
		var ids []int64
		for id, a := range f.repo.addresses {
			if a.UserID == uid && a.OrderID == 0 && a.IsDefault {
				ids = append(ids, id)
			}
		}
		return ids
	}

	t.Run("re-pointing keeps a single default", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		first, err := f.svc.SaveAddress(context.Background(), testUID, 0, payloadFor("Siti"), false)
		require.NoError(t, err)
		second, err := f.svc.SaveAddress(context.Background(), testUID, 0, payloadFor("Siti Kantor"), false)
		require.NoError(t, err)
		_, err = f.svc.SaveAddress(context.Background(), testUID, 0, payloadFor("Siti Mertua"), false)
		require.NoError(t, err)

		require.NoError(t, f.svc.SetDefaultAddress(context.Background(), testUID, first))
		assert.Equal(t, []int64{first}, defaultIDs(f, testUID))

		require.NoError(t, f.svc.SetDefaultAddress(context.Background(), testUID, second))
		assert.Equal(t, []int64{second}, defaultIDs(f, testUID))

		// pointing at the current default changes nothing
		require.NoError(t, f.svc.SetDefaultAddress(context.Background(), testUID, second))
		assert.Equal(t, []int64{second}, defaultIDs(f, testUID))
	})

	t.Run("another user's address", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		mine, err := f.svc.SaveAddress(context.Background(), testUID, 0, payloadFor("Siti"), false)
		require.NoError(t, err)
		require.NoError(t, f.svc.SetDefaultAddress(context.Background(), testUID, mine))

		theirs, err := f.svc.SaveAddress(context.Background(), testUID+1, 0, payloadFor("Budi"), false)
		require.NoError(t, err)

		err = f.svc.SetDefaultAddress(context.Background(), testUID, theirs)
		assert.ErrorIs(t, err, ErrAddressNotFound)
		assert.Equal(t, []int64{mine}, defaultIDs(f, testUID))
	})

	t.Run("order-bound snapshot is not selectable", func(t *testing.T) {
		t.Parallel()
		f, order := checkedOut(t)
		err := f.svc.SetDefaultAddress(context.Background(), testUID, order.ShippingAddressID)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}
