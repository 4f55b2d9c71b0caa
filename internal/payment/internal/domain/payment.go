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

package domain

// Status is the payment state of an order as this system sees it, after the
// gateway's vocabulary has been mapped.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusPending
	StatusChallenge
	StatusPaid
	StatusFailed
)

// Terminal reports whether no further gateway event may move the payment.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusFailed
}

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// Method is the payment channel the buyer picked at checkout.
type Method string

const (
	MethodBankTransfer Method = "bank_transfer"
	MethodEWallet      Method = "e_wallet"
	MethodCOD          Method = "cod"
)

func (m Method) Valid() bool {
	switch m {
	case MethodBankTransfer, MethodEWallet, MethodCOD:
		return true
	default:
		return false
	}
}

// Transaction is what the gateway needs to open a payment page.
type Transaction struct {
	// GatewayOrderID is the composite identifier echoed back by webhooks.
	GatewayOrderID string
	// Amount is the gross amount in whole rupiah.
	Amount        int64
	CustomerName  string
	CustomerEmail string
}

// CreateResult carries the redirect target for the buyer.
type CreateResult struct {
	Token       string
	RedirectURL string
}

// Notification is a parsed webhook payload.
type Notification struct {
	GatewayOrderID    string
	TransactionStatus string
	FraudStatus       string
}
