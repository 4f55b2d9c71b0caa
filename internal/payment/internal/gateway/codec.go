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
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrMalformedGatewayOrderID = errors.New("malformed gateway order id")

const gatewayOrderIDPrefix = "ORDER"

// BuildGatewayOrderID embeds the internal order id in the identifier the
// gateway echoes back on every webhook. The SN suffix keeps the id unique
// across environments sharing one gateway account.
func BuildGatewayOrderID(orderID int64, orderSN string) string {
	return fmt.Sprintf("%s-%d-%s", gatewayOrderIDPrefix, orderID, orderSN)
}

// ParseGatewayOrderID recovers the internal order id and the SN suffix. It
// fails closed: anything that does not match the exact shape produced by
// BuildGatewayOrderID is rejected. Callers on unauthenticated paths must
// check the SN against the stored order before acting on the id.
func ParseGatewayOrderID(gatewayOrderID string) (int64, string, error) {
	parts := strings.SplitN(gatewayOrderID, "-", 3)
	if len(parts) != 3 || parts[0] != gatewayOrderIDPrefix || parts[2] == "" {
		return 0, "", fmt.Errorf("%w: %q", ErrMalformedGatewayOrderID, gatewayOrderID)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, "", fmt.Errorf("%w: %q", ErrMalformedGatewayOrderID, gatewayOrderID)
	}
	return id, parts[2], nil
}
