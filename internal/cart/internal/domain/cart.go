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

// Line is one cart entry. ProductName and UnitPrice are snapshots taken when
// the line was added; the catalog may change underneath without affecting an
// already-built cart.
type Line struct {
	ProductID   int64  `json:"productID"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Size        string `json:"size,omitempty"`
	Quantity    int64  `json:"quantity"`
}

// Key identifies a line inside the cart. Two adds with the same product and
// size merge into one line.
func (l Line) Key() string {
	return fmt.Sprintf("%d:%s", l.ProductID, l.Size)
}

func (l Line) Subtotal() int64 {
	return l.UnitPrice * l.Quantity
}

type Cart struct {
	Lines []Line `json:"lines"`
}

// Total is recomputed on every read, never cached across mutations.
func (c Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) TotalQuantity() int64 {
	var qty int64
	for _, l := range c.Lines {
		qty += l.Quantity
	}
	return qty
}
