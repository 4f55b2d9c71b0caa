package web

import (
	"github.com/batiknusa/storefront/internal/shipping/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	quoteServiceErrorResult = ginx.Result{
		Code: errs.QuoteServiceError.Code,
		Msg:  errs.QuoteServiceError.Msg,
	}
	noShippingSelectedResult = ginx.Result{
		Code: errs.NoShippingSelected.Code,
		Msg:  errs.NoShippingSelected.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
)
