package errs

var (
	SystemError             = ErrorCode{Code: 513001, Msg: "internal error"}
	EmptyCart               = ErrorCode{Code: 513002, Msg: "cart is empty"}
	InvalidPaymentMethod    = ErrorCode{Code: 513003, Msg: "invalid payment method"}
	IncompleteAddress       = ErrorCode{Code: 513004, Msg: "shipping address is incomplete"}
	AddressNotOwned         = ErrorCode{Code: 513005, Msg: "address not found"}
	NoShippingSelected      = ErrorCode{Code: 513006, Msg: "no shipping option selected"}
	CouponInvalid           = ErrorCode{Code: 513007, Msg: "coupon is invalid or expired"}
	PaymentInitFailed       = ErrorCode{Code: 513008, Msg: "failed to initiate payment"}
	OrderNotFound           = ErrorCode{Code: 513009, Msg: "order not found"}
	InvalidStatusTransition = ErrorCode{Code: 513010, Msg: "order status does not permit this action"}
	TerminalOrderConflict   = ErrorCode{Code: 513011, Msg: "order is already in a terminal state"}
	DuplicateRequest        = ErrorCode{Code: 513012, Msg: "duplicate request"}
	PermissionDenied        = ErrorCode{Code: 513013, Msg: "permission denied"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
