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

import "fmt"

// PerItemWeightGrams is the assumed weight of a single cart item.
// TODO: use per-product weight once the catalog stores it.
const PerItemWeightGrams = 250

// Option is one carrier rate returned by the quote service.
type Option struct {
	CourierCode string
	CourierName string
	ServiceCode string
	ServiceName string
	Description string
	// Duration is the carrier's estimate, e.g. "2-3".
	Duration string
	// Price is in whole rupiah.
	Price int64
}

// Selection is the option a session picked. It lives in the session store
// until checkout freezes it into the order.
type Selection struct {
	CourierCode string
	CourierName string
	ServiceCode string
	ServiceName string
	Price       int64
	Duration    string
}

// Label renders the selection the way it is frozen into an order's
// shipping method snapshot.
func (s Selection) Label() string {
	return fmt.Sprintf("%s - %s", s.CourierName, s.ServiceName)
}
