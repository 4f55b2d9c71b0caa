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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayOrderIDRoundTrip(t *testing.T) {
	t.Parallel()
	gid := BuildGatewayOrderID(123, "SN20240601ABCDEF")
	assert.Equal(t, "ORDER-123-SN20240601ABCDEF", gid)

	id, sn, err := ParseGatewayOrderID(gid)
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)
	assert.Equal(t, "SN20240601ABCDEF", sn)
}

func TestParseGatewayOrderID_KeepsFullSN(t *testing.T) {
	t.Parallel()
	// SNs may themselves contain dashes; everything after the id belongs
	// to the SN.
	id, sn, err := ParseGatewayOrderID("ORDER-7-SN-WITH-DASHES")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "SN-WITH-DASHES", sn)
}

func TestParseGatewayOrderID_FailsClosed(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "wrong prefix", input: "PAY-123-sn"},
		{name: "missing sn", input: "ORDER-123-"},
		{name: "missing id", input: "ORDER--sn"},
		{name: "non numeric id", input: "ORDER-abc-sn"},
		{name: "zero id", input: "ORDER-0-sn"},
		{name: "negative id", input: "ORDER--1-sn"},
		{name: "no separators", input: "ORDER123sn"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := ParseGatewayOrderID(tc.input)
			assert.ErrorIs(t, err, ErrMalformedGatewayOrderID)
		})
	}
}
