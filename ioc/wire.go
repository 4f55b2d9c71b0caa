//go:build wireinject

package ioc

import (
	"github.com/batiknusa/storefront/internal/cart"
	"github.com/batiknusa/storefront/internal/coupon"
	"github.com/batiknusa/storefront/internal/order"
	"github.com/batiknusa/storefront/internal/payment"
	"github.com/batiknusa/storefront/internal/product"
	"github.com/batiknusa/storefront/internal/shipping"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitModule,
		cart.InitModule,
		coupon.InitModule,
		shipping.InitModule,
		payment.InitModule,
		order.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*coupon.Module), "Hdl"),
		wire.FieldsOf(new(*shipping.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "SyncJob", "Consumer"),
		InitSession,
		initGinxServer,
		initCronJobs,
		initConsumers,
	)
	return new(App), nil
}

func initConsumers(c *order.NotificationConsumer) []Consumer {
	return []Consumer{c}
}
