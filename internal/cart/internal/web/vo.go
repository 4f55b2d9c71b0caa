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

package web

type AddLineReq struct {
	ProductID int64  `json:"productID"`
	Quantity  int64  `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

type UpdateLineReq struct {
	LineKey  string `json:"lineKey"`
	Quantity int64  `json:"quantity"`
}

type RemoveLineReq struct {
	LineKey string `json:"lineKey"`
}

type CartResp struct {
	Lines []Line `json:"lines"`
	Total int64  `json:"total"`
}

type Line struct {
	Key         string `json:"key"`
	ProductID   int64  `json:"productID"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Size        string `json:"size,omitempty"`
	Quantity    int64  `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}
