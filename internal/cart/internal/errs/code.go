package errs

var (
	SystemError     = ErrorCode{Code: 510001, Msg: "internal error"}
	ProductNotFound = ErrorCode{Code: 510002, Msg: "product not found"}
	InvalidQuantity = ErrorCode{Code: 510003, Msg: "quantity must be at least one"}
	LineNotFound    = ErrorCode{Code: 510004, Msg: "cart line not found"}
	OutOfStock      = ErrorCode{Code: 510005, Msg: "not enough stock"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
