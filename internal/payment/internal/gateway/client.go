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

//go:generate mockgen -source=./client.go -package=paymentmocks --destination=../../mocks/payment.mock.go Client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/batiknusa/storefront/internal/payment/internal/domain"
	"github.com/pkg/errors"
)

var ErrGateway = errors.New("payment gateway error")

type Client interface {
	// CreateTransaction opens a payment page for the order. Calling it again
	// for an order that already holds a token is a caller error.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (domain.CreateResult, error)
	// QueryStatus polls the gateway and maps its vocabulary.
	QueryStatus(ctx context.Context, gatewayOrderID string) (domain.Status, error)
}

type Config struct {
	SnapBaseURL string
	APIBaseURL  string
	ServerKey   string
	Timeout     time.Duration
}

func NewHTTPClient(cfg Config) Client {
	return &httpClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type httpClient struct {
	cfg    Config
	client *http.Client
}

type createReqBody struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	CustomerDetails struct {
		FirstName string `json:"first_name"`
		Email     string `json:"email"`
	} `json:"customer_details"`
}

type createRespBody struct {
	Token        string   `json:"token"`
	RedirectURL  string   `json:"redirect_url"`
	ErrorMessage []string `json:"error_messages"`
}

type statusRespBody struct {
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusMessage     string `json:"status_message"`
}

func (c *httpClient) CreateTransaction(ctx context.Context, txn domain.Transaction) (domain.CreateResult, error) {
	var body createReqBody
	body.TransactionDetails.OrderID = txn.GatewayOrderID
	body.TransactionDetails.GrossAmount = txn.Amount
	body.CustomerDetails.FirstName = txn.CustomerName
	body.CustomerDetails.Email = txn.CustomerEmail

	data, err := json.Marshal(body)
	if err != nil {
		return domain.CreateResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.SnapBaseURL+"/snap/v1/transactions", bytes.NewReader(data))
	if err != nil {
		return domain.CreateResult{}, err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.CreateResult{}, fmt.Errorf("%w: %s", ErrGateway, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()
	var respBody createRespBody
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return domain.CreateResult{}, fmt.Errorf("%w: %s", ErrGateway, err.Error())
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return domain.CreateResult{}, fmt.Errorf("%w: http %d %v",
			ErrGateway, resp.StatusCode, respBody.ErrorMessage)
	}
	if respBody.Token == "" || respBody.RedirectURL == "" {
		return domain.CreateResult{}, fmt.Errorf("%w: empty token in response", ErrGateway)
	}
	return domain.CreateResult{
		Token:       respBody.Token,
		RedirectURL: respBody.RedirectURL,
	}, nil
}

func (c *httpClient) QueryStatus(ctx context.Context, gatewayOrderID string) (domain.Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v2/%s/status", c.cfg.APIBaseURL, gatewayOrderID), nil)
	if err != nil {
		return domain.StatusUnknown, err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.StatusUnknown, fmt.Errorf("%w: %s", ErrGateway, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return domain.StatusUnknown, fmt.Errorf("%w: http %d", ErrGateway, resp.StatusCode)
	}
	var respBody statusRespBody
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return domain.StatusUnknown, fmt.Errorf("%w: %s", ErrGateway, err.Error())
	}
	return MapStatus(respBody.TransactionStatus, respBody.FraudStatus), nil
}

// setHeaders applies the gateway's basic auth scheme: the server key is the
// username and the password is empty.
func (c *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.ServerKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
}
