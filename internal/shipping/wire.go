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

package shipping

import (
	"time"

	"github.com/batiknusa/storefront/internal/cart"
	"github.com/batiknusa/storefront/internal/shipping/internal/client"
	"github.com/batiknusa/storefront/internal/shipping/internal/repository"
	"github.com/batiknusa/storefront/internal/shipping/internal/repository/cache"
	"github.com/batiknusa/storefront/internal/shipping/internal/service"
	"github.com/batiknusa/storefront/internal/shipping/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ModuleSet = wire.NewSet(
	InitQuoteClient,
	InitServiceConfig,
	cache.NewQuoteECache,
	cache.NewSelectionECache,
	repository.NewShippingRepository,
	service.NewService,
	web.NewHandler,
	wire.Struct(new(Module), "*"),
)

func InitModule(ec ecache.Cache, cartModule *cart.Module) *Module {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*cart.Module), "Svc"),
	)
	return new(Module)
}

func InitQuoteClient() client.QuoteClient {
	type config struct {
		BaseURL   string `yaml:"baseURL"`
		APIKey    string `yaml:"apiKey"`
		TimeoutMS int64  `yaml:"timeoutMS"`
	}
	var cfg config
	if err := econf.UnmarshalKey("rajaongkir", &cfg); err != nil {
		panic(err)
	}
	return client.NewHTTPQuoteClient(cfg.BaseURL, cfg.APIKey,
		time.Duration(cfg.TimeoutMS)*time.Millisecond)
}

func InitServiceConfig() service.Config {
	return service.Config{
		OriginPostalCode: econf.GetString("rajaongkir.originPostalCode"),
	}
}
