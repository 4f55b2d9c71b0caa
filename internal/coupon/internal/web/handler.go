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

	"github.com/batiknusa/storefront/internal/coupon/internal/service"
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
	g := server.Group("/coupon")
	g.POST("/apply", ginx.BS[ApplyCouponReq](h.Apply))
	g.POST("/remove", ginx.S(h.Remove))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyCouponReq, sess session.Session) (ginx.Result, error) {
	snapshot, err := h.svc.Apply(ctx.Request.Context(), sess.Claims().Uid, req.Code)
	if errors.Is(err, service.ErrInvalidOrExpired) {
		return invalidOrExpiredResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CouponResp{
			Code:            snapshot.Code,
			DiscountPercent: snapshot.DiscountPercent,
		},
	}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.Remove(ctx.Request.Context(), sess.Claims().Uid); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
