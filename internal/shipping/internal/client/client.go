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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/batiknusa/storefront/internal/shipping/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
)

// ErrQuoteService marks carrier aggregator failures, including timeouts.
var ErrQuoteService = errors.New("shipping quote service unavailable")

type QuoteRequest struct {
	OriginPostalCode      string
	DestinationPostalCode string
	WeightGrams           int64
}

type QuoteClient interface {
	Quote(ctx context.Context, req QuoteRequest) ([]domain.Option, error)
}

func NewHTTPQuoteClient(baseURL, apiKey string, timeout time.Duration) QuoteClient {
	return &httpQuoteClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type httpQuoteClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type quoteReqBody struct {
	OriginPostalCode      string  `json:"origin_postal_code"`
	DestinationPostalCode string  `json:"destination_postal_code"`
	WeightKg              float64 `json:"weight_kg"`
}

type optionBody struct {
	CourierCode        string `json:"courier_code"`
	CourierName        string `json:"courier_name"`
	CourierServiceCode string `json:"courier_service_code"`
	CourierServiceName string `json:"courier_service_name"`
	Description        string `json:"description"`
	Duration           string `json:"duration"`
	Price              int64  `json:"price"`
}

type quoteRespBody struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    []optionBody `json:"data"`
}

func (c *httpQuoteClient) Quote(ctx context.Context, req QuoteRequest) ([]domain.Option, error) {
	body, err := json.Marshal(quoteReqBody{
		OriginPostalCode:      req.OriginPostalCode,
		DestinationPostalCode: req.DestinationPostalCode,
		WeightKg:              float64(req.WeightGrams) / 1000,
	})
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/rates", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("key", c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrQuoteService, err.Error())
	}
	defer func() { _ = httpResp.Body.Close() }()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http %d", ErrQuoteService, httpResp.StatusCode)
	}
	var resp quoteRespBody
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrQuoteService, err.Error())
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrQuoteService, resp.Message)
	}
	return slice.Map(resp.Data, func(_ int, src optionBody) domain.Option {
		return domain.Option{
			CourierCode: src.CourierCode,
			CourierName: src.CourierName,
			ServiceCode: src.CourierServiceCode,
			ServiceName: src.CourierServiceName,
			Description: src.Description,
			Duration:    src.Duration,
			Price:       src.Price,
		}
	}), nil
}
