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

type Coupon struct {
	ID              int64
	Code            string
	DiscountPercent int64
	Active          bool
	ValidFrom       int64
	// ValidUntil == 0 means the coupon never expires.
	ValidUntil int64
	Ctime      int64
	Utime      int64
}

// ValidAt reports whether the coupon may be applied at the given unix-milli
// instant.
func (c Coupon) ValidAt(now int64) bool {
	if !c.Active {
		return false
	}
	if now < c.ValidFrom {
		return false
	}
	if c.ValidUntil != 0 && now > c.ValidUntil {
		return false
	}
	return true
}

func (c Coupon) Snapshot() Snapshot {
	return Snapshot{
		ID:              c.ID,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
	}
}

// Snapshot is the lightweight session copy of an applied coupon. The discount
// an order grants is always computed from the snapshot percent, not from a
// live coupon lookup.
type Snapshot struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	DiscountPercent int64  `json:"discountPercent"`
}

// DiscountAmount rounds half-up to the whole rupiah.
func (s Snapshot) DiscountAmount(subtotal int64) int64 {
	return (subtotal*s.DiscountPercent + 50) / 100
}
