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

	"github.com/batiknusa/storefront/internal/shipping/internal/domain"
	"github.com/batiknusa/storefront/internal/shipping/internal/service"
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
	g := server.Group("/shipping")
	g.POST("/options", ginx.BS[OptionsReq](h.Options))
	g.POST("/select", ginx.BS[SelectReq](h.Select))
	g.POST("/selected", ginx.S(h.Selected))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Options(ctx *ginx.Context, req OptionsReq, sess session.Session) (ginx.Result, error) {
	options, err := h.svc.Options(ctx.Request.Context(), sess.Claims().Uid, req.DestinationPostalCode)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, err
	case errors.Is(err, service.ErrQuoteService):
		return quoteServiceErrorResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: OptionsResp{
			Options: slice.Map(options, func(_ int, src domain.Option) Option {
				return newOption(src)
			}),
		},
	}, nil
}

func (h *Handler) Select(ctx *ginx.Context, req SelectReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Select(ctx.Request.Context(), sess.Claims().Uid, domain.Selection{
		CourierCode: req.CourierCode,
		CourierName: req.CourierName,
		ServiceCode: req.ServiceCode,
		ServiceName: req.ServiceName,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Selected(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	sel, err := h.svc.Selected(ctx.Request.Context(), sess.Claims().Uid)
	if errors.Is(err, service.ErrNoShippingSelected) {
		return noShippingSelectedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SelectReq{
			CourierCode: sel.CourierCode,
			CourierName: sel.CourierName,
			ServiceCode: sel.ServiceCode,
			ServiceName: sel.ServiceName,
			Price:       sel.Price,
			Duration:    sel.Duration,
		},
	}, nil
}
