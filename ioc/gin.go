package ioc

import (
	"net/http"
	"strings"

	"github.com/batiknusa/storefront/internal/cart"
	"github.com/batiknusa/storefront/internal/coupon"
	"github.com/batiknusa/storefront/internal/order"
	"github.com/batiknusa/storefront/internal/pkg/middleware"
	"github.com/batiknusa/storefront/internal/shipping"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	cartHdl *cart.Handler,
	couponHdl *coupon.Handler,
	shippingHdl *shipping.Handler,
	orderHdl *order.Handler,
	adminHdl *order.AdminHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder("storefront").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "batiknusa.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// The payment gateway has no session; its webhook stays public.
	orderHdl.PublicRoutes(res.Engine)
	res.Use(session.CheckLoginMiddleware())
	cartHdl.PrivateRoutes(res.Engine)
	couponHdl.PrivateRoutes(res.Engine)
	shippingHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	adminHdl.PrivateRoutes(res.Engine)
	return res
}
