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

package gateway

import (
	"encoding/json"
	"strings"

	"github.com/batiknusa/storefront/internal/payment/internal/domain"
	"github.com/pkg/errors"
)

var ErrMalformedNotification = errors.New("malformed payment notification")

type notificationBody struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// ParseNotification validates an inbound webhook payload. The endpoint is
// unauthenticated, so required fields are checked strictly: a missing or
// blank order_id or transaction_status rejects the whole payload.
func ParseNotification(data []byte) (domain.Notification, error) {
	var body notificationBody
	if err := json.Unmarshal(data, &body); err != nil {
		return domain.Notification{}, errors.Wrap(ErrMalformedNotification, err.Error())
	}
	if strings.TrimSpace(body.OrderID) == "" || strings.TrimSpace(body.TransactionStatus) == "" {
		return domain.Notification{}, errors.Wrap(ErrMalformedNotification, "missing required field")
	}
	return domain.Notification{
		GatewayOrderID:    body.OrderID,
		TransactionStatus: body.TransactionStatus,
		FraudStatus:       body.FraudStatus,
	}, nil
}
