package errs

var (
	SystemError        = ErrorCode{Code: 512001, Msg: "internal error"}
	QuoteServiceError  = ErrorCode{Code: 512002, Msg: "shipping quote service unavailable"}
	NoShippingSelected = ErrorCode{Code: 512003, Msg: "no shipping option selected"}
	EmptyCart          = ErrorCode{Code: 512004, Msg: "cart is empty"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
