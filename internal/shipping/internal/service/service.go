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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/batiknusa/storefront/internal/cart"
	"github.com/batiknusa/storefront/internal/shipping/internal/client"
	"github.com/batiknusa/storefront/internal/shipping/internal/domain"
	"github.com/batiknusa/storefront/internal/shipping/internal/repository"
	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrQuoteService       = client.ErrQuoteService
	ErrNoShippingSelected = repository.ErrNoSelection
)

const (
	retryInterval = 200 * time.Millisecond
	// One retry on top of the first attempt. The aggregator call sits on the
	// checkout path, so we fail fast rather than mask a degraded carrier API.
	maxRetries = 1
)

type Config struct {
	OriginPostalCode string
}

type Service interface {
	// Options quotes carrier rates for the session's cart weight to the given
	// destination. Quotes are memoized per (origin, destination, weight).
	Options(ctx context.Context, uid int64, destinationPostalCode string) ([]domain.Option, error)
	Select(ctx context.Context, uid int64, sel domain.Selection) error
	Selected(ctx context.Context, uid int64) (domain.Selection, error)
	ClearSelection(ctx context.Context, uid int64) error
}

func NewService(repo repository.ShippingRepository,
	quoteClient client.QuoteClient,
	cartSvc cart.Service,
	cfg Config) Service {
	return &service{
		repo:        repo,
		quoteClient: quoteClient,
		cartSvc:     cartSvc,
		origin:      cfg.OriginPostalCode,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.ShippingRepository
	quoteClient client.QuoteClient
	cartSvc     cart.Service
	origin      string
	logger      *elog.Component
}

func (s *service) Options(ctx context.Context, uid int64, destinationPostalCode string) ([]domain.Option, error) {
	c, err := s.cartSvc.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	weight := domain.PerItemWeightGrams * c.TotalQuantity()

	options, err := s.repo.GetCachedQuote(ctx, s.origin, destinationPostalCode, weight)
	if err == nil {
		return options, nil
	}
	if !errors.Is(err, repository.ErrQuoteNotCached) {
		s.logger.Warn("failed to read cached shipping quote",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}

	options, err = s.quote(ctx, client.QuoteRequest{
		OriginPostalCode:      s.origin,
		DestinationPostalCode: destinationPostalCode,
		WeightGrams:           weight,
	})
	if err != nil {
		return nil, err
	}
	if err := s.repo.CacheQuote(ctx, s.origin, destinationPostalCode, weight, options); err != nil {
		s.logger.Warn("failed to cache shipping quote",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
	return options, nil
}

func (s *service) quote(ctx context.Context, req client.QuoteRequest) ([]domain.Option, error) {
	strategy, err := retry.NewFixedIntervalRetryStrategy(retryInterval, maxRetries)
	if err != nil {
		return nil, err
	}
	for {
		options, err := s.quoteClient.Quote(ctx, req)
		if err == nil {
			return options, nil
		}
		next, ok := strategy.Next()
		if !ok {
			return nil, err
		}
		s.logger.Warn("shipping quote request failed, retrying", elog.FieldErr(err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(next):
		}
	}
}

func (s *service) Select(ctx context.Context, uid int64, sel domain.Selection) error {
	return s.repo.SetSelection(ctx, uid, sel)
}

func (s *service) Selected(ctx context.Context, uid int64) (domain.Selection, error) {
	return s.repo.GetSelection(ctx, uid)
}

func (s *service) ClearSelection(ctx context.Context, uid int64) error {
	return s.repo.DelSelection(ctx, uid)
}
