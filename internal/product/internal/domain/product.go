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

type Product struct {
	ID   int64
	Name string
	Slug string
	// Price is in whole rupiah, IDR carries no fractional unit here.
	Price int64
	Stock int64
	Sizes []Size
	Ctime int64
	Utime int64
}

type Size struct {
	ID        int64
	ProductID int64
	Label     string
	Stock     int64
}

// StockFor returns the purchasable stock for the given size label. An empty
// label refers to the product-level stock.
func (p Product) StockFor(size string) int64 {
	if size == "" {
		return p.Stock
	}
	for _, s := range p.Sizes {
		if s.Label == size {
			return s.Stock
		}
	}
	return 0
}
