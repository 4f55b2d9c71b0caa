package web

import (
	"github.com/batiknusa/storefront/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	invalidPaymentMethodResult = ginx.Result{
		Code: errs.InvalidPaymentMethod.Code,
		Msg:  errs.InvalidPaymentMethod.Msg,
	}
	incompleteAddressResult = ginx.Result{
		Code: errs.IncompleteAddress.Code,
		Msg:  errs.IncompleteAddress.Msg,
	}
	addressNotOwnedResult = ginx.Result{
		Code: errs.AddressNotOwned.Code,
		Msg:  errs.AddressNotOwned.Msg,
	}
	noShippingSelectedResult = ginx.Result{
		Code: errs.NoShippingSelected.Code,
		Msg:  errs.NoShippingSelected.Msg,
	}
	couponInvalidResult = ginx.Result{
		Code: errs.CouponInvalid.Code,
		Msg:  errs.CouponInvalid.Msg,
	}
	paymentInitFailedResult = ginx.Result{
		Code: errs.PaymentInitFailed.Code,
		Msg:  errs.PaymentInitFailed.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	invalidStatusTransitionResult = ginx.Result{
		Code: errs.InvalidStatusTransition.Code,
		Msg:  errs.InvalidStatusTransition.Msg,
	}
	terminalOrderConflictResult = ginx.Result{
		Code: errs.TerminalOrderConflict.Code,
		Msg:  errs.TerminalOrderConflict.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
)
