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

package web

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/batiknusa/storefront/internal/order/internal/domain"
	"github.com/batiknusa/storefront/internal/order/internal/service"
	"github.com/batiknusa/storefront/internal/payment"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var errDuplicateRequest = errors.New("duplicate checkout request")

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	cache  ecache.Cache
	logger *elog.Component
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{
		svc:    svc,
		cache:  cache,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/checkout", ginx.BS[CheckoutReq](h.Checkout))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
	g.POST("/cancel", ginx.BS[CancelReq](h.Cancel))
	g.POST("/complete", ginx.BS[CompleteReq](h.Complete))
	g.POST("/sync-status", ginx.BS[SyncStatusReq](h.SyncStatus))

	a := server.Group("/address")
	a.POST("/save", ginx.BS[SaveAddressReq](h.SaveAddress))
	a.POST("/list", ginx.S(h.ListAddresses))
	a.POST("/default", ginx.BS[SetDefaultAddressReq](h.SetDefaultAddress))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// The gateway posts payment notifications here. The endpoint is
	// unauthenticated, so everything it reads is validated fail-closed.
	server.POST("/pay/notification", h.HandleNotification)
}

func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx, req.RequestID); err != nil {
		return duplicateRequestResult, err
	}
	intent := domain.CheckoutIntent{
		BuyerID:        sess.Claims().Uid,
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		PaymentMethod:  payment.Method(req.PaymentMethod),
		Notes:          req.Notes,
		SavedAddressID: req.SavedAddressID,
		SaveAddress:    req.SaveAddress,
		SetAsDefault:   req.SetAsDefault,
	}
	if req.Address != nil {
		intent.Address = domain.AddressPayload{
			FullName:   req.Address.FullName,
			Address:    req.Address.Address,
			City:       req.Address.City,
			Province:   req.Address.Province,
			PostalCode: req.Address.PostalCode,
			Phone:      req.Address.Phone,
		}
	}
	order, err := h.svc.Checkout(ctx.Request.Context(), intent)
	if err != nil {
		return h.checkoutErrResult(err), err
	}
	return ginx.Result{
		Data: CheckoutResp{
			OrderSN:      order.SN,
			PaymentToken: order.PaymentToken,
			PaymentURL:   order.PaymentURL,
		},
	}, nil
}

func (h *Handler) checkoutErrResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult
	case errors.Is(err, service.ErrInvalidPaymentMethod):
		return invalidPaymentMethodResult
	case errors.Is(err, service.ErrIncompleteAddress):
		return incompleteAddressResult
	case errors.Is(err, service.ErrNotAddressOwner):
		return addressNotOwnedResult
	case errors.Is(err, service.ErrNoShippingSelected):
		return noShippingSelectedResult
	case errors.Is(err, service.ErrCouponInvalid):
		return couponInvalidResult
	case errors.Is(err, service.ErrPaymentInit):
		return paymentInitFailedResult
	default:
		return systemErrorResult
	}
}

// checkRequestID rejects a checkout whose request id was already seen. The
// reservation outlives the request on purpose: a retry after a timeout must
// not create a second order.
func (h *Handler) checkRequestID(ctx *ginx.Context, requestID string) error {
	if requestID == "" {
		return errDuplicateRequest
	}
	ok, err := h.cache.SetNX(ctx.Request.Context(),
		"order:checkout:request:"+requestID, "1", 5*time.Minute)
	if err != nil {
		return err
	}
	if !ok {
		return errDuplicateRequest
	}
	return nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	orders, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Orders: slice.Map(orders, func(_ int, src domain.Order) Order {
				return newOrder(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindBySN(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(order)}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req CancelReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return invalidStatusTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, req CompleteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.MarkCompleted(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return invalidStatusTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SyncStatus(ctx *ginx.Context, req SyncStatusReq, sess session.Session) (ginx.Result, error) {
	changed, err := h.svc.SyncStatus(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrTerminalOrder):
		return terminalOrderConflictResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: SyncStatusResp{Changed: changed}}, nil
}

func (h *Handler) SaveAddress(ctx *ginx.Context, req SaveAddressReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.SaveAddress(ctx.Request.Context(), sess.Claims().Uid, req.ID,
		domain.AddressPayload{
			FullName:   req.FullName,
			Address:    req.Address,
			City:       req.City,
			Province:   req.Province,
			PostalCode: req.PostalCode,
			Phone:      req.Phone,
		}, req.IsDefault)
	switch {
	case errors.Is(err, service.ErrIncompleteAddress):
		return incompleteAddressResult, err
	case errors.Is(err, service.ErrAddressNotFound):
		return addressNotOwnedResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) ListAddresses(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	addrs, err := h.svc.ListAddresses(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AddressListResp{
			Addresses: slice.Map(addrs, func(_ int, src domain.Address) Address {
				return newAddress(src)
			}),
		},
	}, nil
}

func (h *Handler) SetDefaultAddress(ctx *ginx.Context, req SetDefaultAddressReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetDefaultAddress(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrAddressNotFound) {
		return addressNotOwnedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// HandleNotification is a raw gin handler so malformed deliveries can be
// answered with precise HTTP statuses the gateway understands.
func (h *Handler) HandleNotification(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "unreadable body"})
		return
	}
	n, err := payment.ParseNotification(body)
	if err != nil {
		h.logger.Warn("rejected malformed payment notification", elog.FieldErr(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "malformed payload"})
		return
	}
	orderID, orderSN, err := payment.ParseGatewayOrderID(n.GatewayOrderID)
	if err != nil {
		h.logger.Warn("rejected notification with malformed order id",
			elog.FieldErr(err), elog.String("orderID", n.GatewayOrderID))
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "malformed order id"})
		return
	}
	target := payment.MapStatus(n.TransactionStatus, n.FraudStatus)
	_, err = h.svc.Reconcile(ctx.Request.Context(), orderID, orderSN, target)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "unknown order"})
	case errors.Is(err, service.ErrTerminalOrder):
		ctx.JSON(http.StatusConflict, gin.H{"status": "error", "message": "order already settled"})
	case err != nil:
		h.logger.Error("failed to reconcile payment notification",
			elog.FieldErr(err), elog.Int64("orderID", orderID))
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal error"})
	default:
		ctx.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}
