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
	"fmt"
	"testing"

	"github.com/batiknusa/storefront/internal/cart"
	"github.com/batiknusa/storefront/internal/shipping/internal/client"
	"github.com/batiknusa/storefront/internal/shipping/internal/domain"
	"github.com/batiknusa/storefront/internal/shipping/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteClient struct {
	options  []domain.Option
	failures int
	calls    int
}

func (f *fakeQuoteClient) Quote(_ context.Context, _ client.QuoteRequest) ([]domain.Option, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, fmt.Errorf("%w: upstream 503", client.ErrQuoteService)
	}
	return f.options, nil
}

type fakeShippingRepository struct {
	quotes     map[string][]domain.Option
	selections map[int64]domain.Selection
}

func newFakeShippingRepository() *fakeShippingRepository {
	return &fakeShippingRepository{
		quotes:     make(map[string][]domain.Option),
		selections: make(map[int64]domain.Selection),
	}
}

func (f *fakeShippingRepository) quoteKey(origin, destination string, weightGrams int64) string {
	return fmt.Sprintf("%s:%s:%d", origin, destination, weightGrams)
}

func (f *fakeShippingRepository) GetCachedQuote(_ context.Context, origin, destination string, weightGrams int64) ([]domain.Option, error) {
	options, ok := f.quotes[f.quoteKey(origin, destination, weightGrams)]
	if !ok {
		return nil, repository.ErrQuoteNotCached
	}
	return options, nil
}

func (f *fakeShippingRepository) CacheQuote(_ context.Context, origin, destination string, weightGrams int64, options []domain.Option) error {
	f.quotes[f.quoteKey(origin, destination, weightGrams)] = options
	return nil
}

func (f *fakeShippingRepository) GetSelection(_ context.Context, uid int64) (domain.Selection, error) {
	sel, ok := f.selections[uid]
	if !ok {
		return domain.Selection{}, repository.ErrNoSelection
	}
	return sel, nil
}

func (f *fakeShippingRepository) SetSelection(_ context.Context, uid int64, sel domain.Selection) error {
	f.selections[uid] = sel
	return nil
}

func (f *fakeShippingRepository) DelSelection(_ context.Context, uid int64) error {
	delete(f.selections, uid)
	return nil
}

type fakeCartService struct {
	cart cart.Cart
}

func (f *fakeCartService) Add(_ context.Context, _ int64, _ int64, _ int64, _ string) (cart.Cart, error) {
	panic("not used")
}

func (f *fakeCartService) Update(_ context.Context, _ int64, _ string, _ int64) (cart.Cart, error) {
	panic("not used")
}

func (f *fakeCartService) Remove(_ context.Context, _ int64, _ string) (cart.Cart, error) {
	panic("not used")
}

func (f *fakeCartService) Clear(_ context.Context, _ int64) error { return nil }

func (f *fakeCartService) Get(_ context.Context, _ int64) (cart.Cart, error) {
	return f.cart, nil
}

func cartWithQuantity(qty int64) cart.Cart {
	return cart.Cart{Lines: []cart.Line{
		{ProductID: 1, ProductName: "Batik Parang", UnitPrice: 100000, Size: "M", Quantity: qty},
	}}
}

func TestService_Options(t *testing.T) {
	t.Parallel()
	const uid = int64(42)
	options := []domain.Option{
		{CourierCode: "jne", CourierName: "JNE", ServiceCode: "REG", ServiceName: "Reguler", Duration: "2-3", Price: 15000},
		{CourierCode: "sicepat", CourierName: "SiCepat", ServiceCode: "BEST", ServiceName: "Besok Sampai", Duration: "1", Price: 24000},
	}

	t.Run("quotes and memoizes", func(t *testing.T) {
		t.Parallel()
		repo := newFakeShippingRepository()
		qc := &fakeQuoteClient{options: options}
		svc := NewService(repo, qc, &fakeCartService{cart: cartWithQuantity(2)}, Config{OriginPostalCode: "55281"})

		got, err := svc.Options(context.Background(), uid, "40115")
		require.NoError(t, err)
		assert.Equal(t, options, got)
		assert.Equal(t, 1, qc.calls)

		// the second lookup for the same route and weight is served from cache
		got, err = svc.Options(context.Background(), uid, "40115")
		require.NoError(t, err)
		assert.Equal(t, options, got)
		assert.Equal(t, 1, qc.calls)

		// a different weight is a different key
		cached, ok := repo.quotes["55281:40115:500"]
		require.True(t, ok)
		assert.Equal(t, options, cached)
	})

	t.Run("retries once then succeeds", func(t *testing.T) {
		t.Parallel()
		repo := newFakeShippingRepository()
		qc := &fakeQuoteClient{options: options, failures: 1}
		svc := NewService(repo, qc, &fakeCartService{cart: cartWithQuantity(1)}, Config{OriginPostalCode: "55281"})

		got, err := svc.Options(context.Background(), uid, "40115")
		require.NoError(t, err)
		assert.Equal(t, options, got)
		assert.Equal(t, 2, qc.calls)
	})

	t.Run("gives up after the retry", func(t *testing.T) {
		t.Parallel()
		repo := newFakeShippingRepository()
		qc := &fakeQuoteClient{options: options, failures: 10}
		svc := NewService(repo, qc, &fakeCartService{cart: cartWithQuantity(1)}, Config{OriginPostalCode: "55281"})

		_, err := svc.Options(context.Background(), uid, "40115")
		assert.ErrorIs(t, err, ErrQuoteService)
		assert.Equal(t, 2, qc.calls)
	})

	t.Run("empty cart", func(t *testing.T) {
		t.Parallel()
		repo := newFakeShippingRepository()
		qc := &fakeQuoteClient{options: options}
		svc := NewService(repo, qc, &fakeCartService{}, Config{OriginPostalCode: "55281"})

		_, err := svc.Options(context.Background(), uid, "40115")
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Zero(t, qc.calls)
	})
}

func TestService_Selection(t *testing.T) {
	t.Parallel()
	const uid = int64(42)
	repo := newFakeShippingRepository()
	svc := NewService(repo, &fakeQuoteClient{}, &fakeCartService{}, Config{OriginPostalCode: "55281"})

	_, err := svc.Selected(context.Background(), uid)
	assert.ErrorIs(t, err, ErrNoShippingSelected)

	sel := domain.Selection{
		CourierCode: "jne", CourierName: "JNE",
		ServiceCode: "REG", ServiceName: "Reguler",
		Price: 15000, Duration: "2-3",
	}
	require.NoError(t, svc.Select(context.Background(), uid, sel))

	got, err := svc.Selected(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, sel, got)
	assert.Equal(t, "JNE - Reguler", got.Label())

	require.NoError(t, svc.ClearSelection(context.Background(), uid))
	_, err = svc.Selected(context.Background(), uid)
	assert.ErrorIs(t, err, ErrNoShippingSelected)
}
