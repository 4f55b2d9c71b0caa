package web

import (
	"github.com/batiknusa/storefront/internal/order/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type AddressPayload struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

type CheckoutReq struct {
	// RequestID deduplicates double submits of the same checkout form.
	RequestID string `json:"requestID"`

	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`

	SavedAddressID int64           `json:"savedAddressID"`
	Address        *AddressPayload `json:"address"`
	SaveAddress    bool            `json:"saveAddress"`
	SetAsDefault   bool            `json:"setAsDefault"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
}

type CheckoutResp struct {
	OrderSN      string `json:"orderSN"`
	PaymentToken string `json:"paymentToken"`
	PaymentURL   string `json:"paymentURL"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type DetailReq struct {
	SN string `json:"sn"`
}

type CancelReq struct {
	SN string `json:"sn"`
}

type CompleteReq struct {
	SN string `json:"sn"`
}

type SyncStatusReq struct {
	SN string `json:"sn"`
}

type SyncStatusResp struct {
	Changed bool `json:"changed"`
}

type Order struct {
	SN             string      `json:"sn"`
	Status         uint8       `json:"status"`
	PaymentStatus  uint8       `json:"paymentStatus"`
	PaymentMethod  string      `json:"paymentMethod"`
	PaymentURL     string      `json:"paymentURL"`
	TotalPrice     int64       `json:"totalPrice"`
	ShippingCost   int64       `json:"shippingCost"`
	Discount       int64       `json:"discount"`
	TotalAmount    int64       `json:"totalAmount"`
	ShippingMethod string      `json:"shippingMethod"`
	Notes          string      `json:"notes"`
	TrackingNumber string      `json:"trackingNumber"`
	TrackingURL    string      `json:"trackingURL"`
	Items          []OrderItem `json:"items"`
	Ctime          int64       `json:"ctime"`
}

type OrderItem struct {
	ProductID   int64  `json:"productID"`
	ProductName string `json:"productName"`
	Size        string `json:"size"`
	Quantity    int64  `json:"quantity"`
	Price       int64  `json:"price"`
}

func newOrder(src domain.Order) Order {
	return Order{
		SN:             src.SN,
		Status:         src.Status.ToUint8(),
		PaymentStatus:  src.PaymentStatus.ToUint8(),
		PaymentMethod:  string(src.PaymentMethod),
		PaymentURL:     src.PaymentURL,
		TotalPrice:     src.TotalPrice,
		ShippingCost:   src.ShippingCost,
		Discount:       src.Discount,
		TotalAmount:    src.TotalAmount,
		ShippingMethod: src.ShippingMethod,
		Notes:          src.Notes,
		TrackingNumber: src.TrackingNumber,
		TrackingURL:    src.TrackingURL,
		Ctime:          src.Ctime,
		Items: slice.Map(src.Items, func(_ int, it domain.Item) OrderItem {
			return OrderItem{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Size:        it.Size,
				Quantity:    it.Quantity,
				Price:       it.Price,
			}
		}),
	}
}

type SaveAddressReq struct {
	ID int64 `json:"id"`
	AddressPayload
	IsDefault bool `json:"isDefault"`
}

type Address struct {
	ID int64 `json:"id"`
	AddressPayload
	IsDefault bool `json:"isDefault"`
}

type AddressListResp struct {
	Addresses []Address `json:"addresses"`
}

type SetDefaultAddressReq struct {
	ID int64 `json:"id"`
}

func newAddress(src domain.Address) Address {
	return Address{
		ID: src.ID,
		AddressPayload: AddressPayload{
			FullName:   src.FullName,
			Address:    src.Address,
			City:       src.City,
			Province:   src.Province,
			PostalCode: src.PostalCode,
			Phone:      src.Phone,
		},
		IsDefault: src.IsDefault,
	}
}

type AdminListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type AdminUpdateReq struct {
	OrderID        int64  `json:"orderID"`
	Status         uint8  `json:"status"`
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingURL"`
	AdminNotes     string `json:"adminNotes"`
}
