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

import "github.com/batiknusa/storefront/internal/payment/internal/domain"

// MapStatus translates the gateway's transaction vocabulary. A captured
// card payment is only money in hand once the fraud check clears, hence
// the fraud_status carve-out. Anything unrecognized stays pending so a
// later event or poll can settle it.
func MapStatus(transactionStatus, fraudStatus string) domain.Status {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return domain.StatusChallenge
		}
		return domain.StatusPaid
	case "settlement":
		return domain.StatusPaid
	case "pending":
		return domain.StatusPending
	case "deny", "cancel", "expire":
		return domain.StatusFailed
	default:
		return domain.StatusPending
	}
}
