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

	"github.com/batiknusa/storefront/internal/cart/internal/domain"
	"github.com/batiknusa/storefront/internal/cart/internal/service"
	"github.com/batiknusa/storefront/internal/product"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddLineReq](h.Add))
	g.POST("/update", ginx.BS[UpdateLineReq](h.Update))
	g.POST("/remove", ginx.BS[RemoveLineReq](h.Remove))
	g.POST("/detail", ginx.S(h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Add(ctx *ginx.Context, req AddLineReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.Add(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.Quantity, req.Size)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: h.toCartVO(cart)}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateLineReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.Update(ctx.Request.Context(), sess.Claims().Uid, req.LineKey, req.Quantity)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: h.toCartVO(cart)}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req RemoveLineReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.Remove(ctx.Request.Context(), sess.Claims().Uid, req.LineKey)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: h.toCartVO(cart)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.Get(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toCartVO(cart)}, nil
}

func (h *Handler) errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		return productNotFoundResult
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult
	case errors.Is(err, service.ErrLineNotFound):
		return lineNotFoundResult
	case errors.Is(err, service.ErrOutOfStock):
		return outOfStockResult
	default:
		return systemErrorResult
	}
}

func (h *Handler) toCartVO(cart domain.Cart) CartResp {
	return CartResp{
		Total: cart.Total(),
		Lines: slice.Map(cart.Lines, func(idx int, src domain.Line) Line {
			return Line{
				Key:         src.Key(),
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				UnitPrice:   src.UnitPrice,
				Size:        src.Size,
				Quantity:    src.Quantity,
				Subtotal:    src.Subtotal(),
			}
		}),
	}
}
