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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_DiscountAmount(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		percent  int64
		subtotal int64
		want     int64
	}{
		{name: "exact division", percent: 10, subtotal: 200000, want: 20000},
		{name: "rounds half up", percent: 5, subtotal: 1010, want: 51},
		{name: "rounds down below half", percent: 3, subtotal: 1010, want: 30},
		{name: "zero percent", percent: 0, subtotal: 99999, want: 0},
		{name: "full discount", percent: 100, subtotal: 215000, want: 215000},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := Snapshot{ID: 1, Code: "HEMAT", DiscountPercent: tc.percent}
			assert.Equal(t, tc.want, s.DiscountAmount(tc.subtotal))
		})
	}
}

func TestCoupon_ValidAt(t *testing.T) {
	t.Parallel()
	const from, until = int64(1000), int64(2000)
	c := Coupon{Active: true, ValidFrom: from, ValidUntil: until}

	assert.True(t, c.ValidAt(from))
	assert.True(t, c.ValidAt(until))
	assert.False(t, c.ValidAt(from-1))
	assert.False(t, c.ValidAt(until+1))

	inactive := c
	inactive.Active = false
	assert.False(t, inactive.ValidAt(from))

	openEnded := Coupon{Active: true, ValidFrom: from}
	assert.True(t, openEnded.ValidAt(until*1000))
}
