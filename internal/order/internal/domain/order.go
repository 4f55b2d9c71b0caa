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

package domain

import (
	"github.com/batiknusa/storefront/internal/payment"
)

// Status is the fulfillment state of an order.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusPending
	StatusProcessing
	StatusShipped
	StatusCompleted
	StatusCancelled
)

// Terminal reports whether the order can no longer move through
// reconciliation.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// StatusFor derives the fulfillment state a payment state implies. Paid
// orders move to processing, failed payments cancel the order, everything
// else keeps the order waiting.
func StatusFor(ps payment.Status) Status {
	switch ps {
	case payment.StatusPaid:
		return StatusProcessing
	case payment.StatusFailed:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Order is the aggregate root. All money fields are in whole rupiah and
// frozen at creation time: TotalAmount = TotalPrice + ShippingCost - Discount.
type Order struct {
	ID  int64
	SN  string
	// BuyerID is zero for guest checkouts.
	BuyerID    int64
	GuestName  string
	GuestEmail string

	Status        Status
	PaymentStatus payment.Status
	PaymentMethod payment.Method
	PaymentToken  string
	PaymentURL    string

	// TotalPrice is the item subtotal.
	TotalPrice   int64
	ShippingCost int64
	Discount     int64
	TotalAmount  int64

	ShippingAddressID int64
	// ShippingMethod is a snapshot label, not a reference to a live quote.
	ShippingMethod string
	CouponID       int64
	Notes          string

	TrackingNumber string
	TrackingURL    string
	AdminNotes     string

	Items []Item

	Ctime int64
	Utime int64
}

// Item snapshots one cart line; Price is the unit price at checkout time.
type Item struct {
	ProductID   int64
	ProductName string
	Size        string
	Quantity    int64
	Price       int64
}

// Address is a shipping address row. Saved addresses have OrderID zero;
// order-bound clones carry the order they belong to and are immutable.
type Address struct {
	ID         int64
	UserID     int64
	OrderID    int64
	FullName   string
	Address    string
	City       string
	Province   string
	PostalCode string
	Phone      string
	IsDefault  bool
	Ctime      int64
	Utime      int64
}

// AddressPayload is the buyer-supplied destination on a checkout.
type AddressPayload struct {
	FullName   string
	Address    string
	City       string
	Province   string
	PostalCode string
	Phone      string
}

func (p AddressPayload) Complete() bool {
	return p.FullName != "" && p.Address != "" && p.City != "" &&
		p.Province != "" && p.PostalCode != "" && p.Phone != ""
}

// AdminUpdate carries the fields back office staff may change. Zero values
// leave the corresponding field untouched.
type AdminUpdate struct {
	Status         Status
	TrackingNumber string
	TrackingURL    string
	AdminNotes     string
}

// CheckoutIntent is everything the builder needs to turn session state into
// a persisted order.
type CheckoutIntent struct {
	BuyerID    int64
	GuestName  string
	GuestEmail string

	PaymentMethod payment.Method
	Notes         string

	// SavedAddressID references one of the buyer's saved addresses. When
	// zero, Address must be complete.
	SavedAddressID int64
	Address        AddressPayload
	// SaveAddress persists the supplied address as a reusable saved row.
	SaveAddress  bool
	SetAsDefault bool
}
