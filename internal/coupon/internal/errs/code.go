package errs

var (
	SystemError      = ErrorCode{Code: 511001, Msg: "internal error"}
	InvalidOrExpired = ErrorCode{Code: 511002, Msg: "coupon is invalid or expired"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
