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
	"testing"

	"github.com/batiknusa/storefront/internal/payment/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name              string
		transactionStatus string
		fraudStatus       string
		want              domain.Status
	}{
		{
			name:              "capture under fraud challenge",
			transactionStatus: "capture",
			fraudStatus:       "challenge",
			want:              domain.StatusChallenge,
		},
		{
			name:              "capture accepted",
			transactionStatus: "capture",
			fraudStatus:       "accept",
			want:              domain.StatusPaid,
		},
		{
			name:              "capture without fraud status",
			transactionStatus: "capture",
			want:              domain.StatusPaid,
		},
		{
			name:              "settlement",
			transactionStatus: "settlement",
			want:              domain.StatusPaid,
		},
		{
			name:              "pending",
			transactionStatus: "pending",
			want:              domain.StatusPending,
		},
		{
			name:              "deny",
			transactionStatus: "deny",
			want:              domain.StatusFailed,
		},
		{
			name:              "cancel",
			transactionStatus: "cancel",
			want:              domain.StatusFailed,
		},
		{
			name:              "expire",
			transactionStatus: "expire",
			want:              domain.StatusFailed,
		},
		{
			name:              "unrecognized stays pending",
			transactionStatus: "refund",
			want:              domain.StatusPending,
		},
		{
			name: "empty stays pending",
			want: domain.StatusPending,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapStatus(tc.transactionStatus, tc.fraudStatus))
		})
	}
}
