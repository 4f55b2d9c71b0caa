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

package cart

import (
	"github.com/batiknusa/storefront/internal/cart/internal/repository"
	"github.com/batiknusa/storefront/internal/cart/internal/repository/cache"
	"github.com/batiknusa/storefront/internal/cart/internal/service"
	"github.com/batiknusa/storefront/internal/cart/internal/web"
	"github.com/batiknusa/storefront/internal/product"
	"github.com/ecodeclub/ecache"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	cache.NewCartECache,
	repository.NewCartRepository,
	service.NewService,
	web.NewHandler,
	wire.Struct(new(Module), "*"),
)

func InitModule(ec ecache.Cache, productModule *product.Module) *Module {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*product.Module), "Svc"),
	)
	return new(Module)
}
