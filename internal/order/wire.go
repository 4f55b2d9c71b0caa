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

//go:build wireinject

package order

import (
	"sync"
	"time"

	"github.com/batiknusa/storefront/internal/cart"
	"github.com/batiknusa/storefront/internal/coupon"
	"github.com/batiknusa/storefront/internal/order/internal/event"
	"github.com/batiknusa/storefront/internal/order/internal/job"
	"github.com/batiknusa/storefront/internal/order/internal/repository"
	"github.com/batiknusa/storefront/internal/order/internal/repository/dao"
	"github.com/batiknusa/storefront/internal/order/internal/service"
	"github.com/batiknusa/storefront/internal/order/internal/web"
	"github.com/batiknusa/storefront/internal/payment"
	"github.com/batiknusa/storefront/internal/pkg/sequencenumber"
	"github.com/batiknusa/storefront/internal/shipping"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitDAOs,
	repository.NewOrderRepository,
	sequencenumber.NewGenerator,
	event.NewStatusChangedEventProducer,
	event.NewNotificationConsumer,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
	InitSyncPendingPaymentsJob,
	wire.Struct(new(Module), "*"),
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ,
	cartModule *cart.Module, couponModule *coupon.Module,
	shippingModule *shipping.Module, paymentModule *payment.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*coupon.Module), "Svc"),
		wire.FieldsOf(new(*shipping.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Client"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitDAOs(db *egorm.Component) (dao.OrderDAO, dao.AddressDAO) {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewOrderGORMDAO(db), dao.NewAddressGORMDAO(db)
}

func InitSyncPendingPaymentsJob(svc service.Service) *job.SyncPendingPaymentsJob {
	return job.NewSyncPendingPaymentsJob(svc, 30*time.Minute, 100)
}
