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

package order

import (
	"github.com/batiknusa/storefront/internal/order/internal/domain"
	"github.com/batiknusa/storefront/internal/order/internal/event"
	"github.com/batiknusa/storefront/internal/order/internal/job"
	"github.com/batiknusa/storefront/internal/order/internal/service"
	"github.com/batiknusa/storefront/internal/order/internal/web"
)

type (
	Handler              = web.Handler
	AdminHandler         = web.AdminHandler
	Service              = service.Service
	Order                = domain.Order
	Item                 = domain.Item
	Address              = domain.Address
	AddressPayload       = domain.AddressPayload
	CheckoutIntent       = domain.CheckoutIntent
	AdminUpdate          = domain.AdminUpdate
	Status               = domain.Status
	StatusChangedEvent   = event.StatusChangedEvent
	NotificationConsumer = event.NotificationConsumer
	SyncPendingJob       = job.SyncPendingPaymentsJob
)

const (
	StatusPending    = domain.StatusPending
	StatusProcessing = domain.StatusProcessing
	StatusShipped    = domain.StatusShipped
	StatusCompleted  = domain.StatusCompleted
	StatusCancelled  = domain.StatusCancelled
)

var (
	ErrEmptyCart               = service.ErrEmptyCart
	ErrOrderNotFound           = service.ErrOrderNotFound
	ErrTerminalOrder           = service.ErrTerminalOrder
	ErrInvalidStatusTransition = service.ErrInvalidStatusTransition
	ErrPaymentInit             = service.ErrPaymentInit
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	SyncJob  *SyncPendingJob
	Consumer *NotificationConsumer
}
