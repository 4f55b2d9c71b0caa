package web

import (
	"github.com/batiknusa/storefront/internal/cart/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	lineNotFoundResult = ginx.Result{
		Code: errs.LineNotFound.Code,
		Msg:  errs.LineNotFound.Msg,
	}
	outOfStockResult = ginx.Result{
		Code: errs.OutOfStock.Code,
		Msg:  errs.OutOfStock.Msg,
	}
)
