package web

import (
	"github.com/batiknusa/storefront/internal/coupon/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidOrExpiredResult = ginx.Result{
		Code: errs.InvalidOrExpired.Code,
		Msg:  errs.InvalidOrExpired.Msg,
	}
)
