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

package payment

import (
	"time"

	"github.com/batiknusa/storefront/internal/payment/internal/gateway"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ModuleSet = wire.NewSet(
	InitGatewayClient,
	wire.Struct(new(Module), "*"),
)

func InitModule() *Module {
	wire.Build(ModuleSet)
	return new(Module)
}

func InitGatewayClient() gateway.Client {
	type config struct {
		SnapBaseURL string `yaml:"snapBaseURL"`
		APIBaseURL  string `yaml:"apiBaseURL"`
		ServerKey   string `yaml:"serverKey"`
		TimeoutMS   int64  `yaml:"timeoutMS"`
	}
	var cfg config
	if err := econf.UnmarshalKey("midtrans", &cfg); err != nil {
		panic(err)
	}
	return gateway.NewHTTPClient(gateway.Config{
		SnapBaseURL: cfg.SnapBaseURL,
		APIBaseURL:  cfg.APIBaseURL,
		ServerKey:   cfg.ServerKey,
		Timeout:     time.Duration(cfg.TimeoutMS) * time.Millisecond,
	})
}
