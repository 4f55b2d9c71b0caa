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

	"github.com/batiknusa/storefront/internal/order/internal/domain"
	"github.com/batiknusa/storefront/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/orders")
	g.POST("/list", ginx.BS[AdminListReq](h.List))
	g.POST("/update", ginx.BS[AdminUpdateReq](h.Update))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListReq, sess session.Session) (ginx.Result, error) {
	if !isAdmin(sess) {
		return permissionDeniedResult, nil
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	orders, total, err := h.svc.AdminList(ctx.Request.Context(), req.Offset, req.Limit)
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

func (h *AdminHandler) Update(ctx *ginx.Context, req AdminUpdateReq, sess session.Session) (ginx.Result, error) {
	if !isAdmin(sess) {
		return permissionDeniedResult, nil
	}
	err := h.svc.AdminUpdate(ctx.Request.Context(), req.OrderID, domain.AdminUpdate{
		Status:         domain.Status(req.Status),
		TrackingNumber: req.TrackingNumber,
		TrackingURL:    req.TrackingURL,
		AdminNotes:     req.AdminNotes,
	})
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func isAdmin(sess session.Session) bool {
	role, err := sess.Claims().Get("role").String()
	return err == nil && role == "admin"
}
