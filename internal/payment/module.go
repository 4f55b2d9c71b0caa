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

package payment

import (
	"github.com/batiknusa/storefront/internal/payment/internal/domain"
	"github.com/batiknusa/storefront/internal/payment/internal/gateway"
)

type (
	Client       = gateway.Client
	Status       = domain.Status
	Method       = domain.Method
	Transaction  = domain.Transaction
	CreateResult = domain.CreateResult
	Notification = domain.Notification
)

const (
	StatusUnknown   = domain.StatusUnknown
	StatusPending   = domain.StatusPending
	StatusChallenge = domain.StatusChallenge
	StatusPaid      = domain.StatusPaid
	StatusFailed    = domain.StatusFailed

	MethodBankTransfer = domain.MethodBankTransfer
	MethodEWallet      = domain.MethodEWallet
	MethodCOD          = domain.MethodCOD
)

var (
	ErrGateway                 = gateway.ErrGateway
	ErrMalformedGatewayOrderID = gateway.ErrMalformedGatewayOrderID
	ErrMalformedNotification   = gateway.ErrMalformedNotification
)

// MapStatus translates the gateway transaction vocabulary into Status.
func MapStatus(transactionStatus, fraudStatus string) Status {
	return gateway.MapStatus(transactionStatus, fraudStatus)
}

func BuildGatewayOrderID(orderID int64, orderSN string) string {
	return gateway.BuildGatewayOrderID(orderID, orderSN)
}

func ParseGatewayOrderID(gatewayOrderID string) (int64, string, error) {
	return gateway.ParseGatewayOrderID(gatewayOrderID)
}

func ParseNotification(data []byte) (Notification, error) {
	return gateway.ParseNotification(data)
}

type Module struct {
	Client Client
}
