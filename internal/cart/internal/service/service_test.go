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
	"testing"

	"github.com/batiknusa/storefront/internal/cart/internal/domain"
	"github.com/batiknusa/storefront/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartRepository struct {
	carts map[int64]domain.Cart
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{carts: make(map[int64]domain.Cart)}
}

// Get copies the stored lines: the real repository round-trips through the
// session store, so callers never share backing arrays with it.
func (f *fakeCartRepository) Get(_ context.Context, uid int64) (domain.Cart, error) {
	stored := f.carts[uid]
	cart := domain.Cart{Lines: make([]domain.Line, len(stored.Lines))}
	copy(cart.Lines, stored.Lines)
	return cart, nil
}

func (f *fakeCartRepository) Save(_ context.Context, uid int64, cart domain.Cart) error {
	stored := domain.Cart{Lines: make([]domain.Line, len(cart.Lines))}
	copy(stored.Lines, cart.Lines)
	f.carts[uid] = stored
	return nil
}

func (f *fakeCartRepository) Clear(_ context.Context, uid int64) error {
	delete(f.carts, uid)
	return nil
}

type fakeProductService struct {
	products map[int64]product.Product
}

func (f *fakeProductService) FindByID(_ context.Context, id int64) (product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return product.Product{}, product.ErrProductNotFound
	}
	return p, nil
}

func newTestService() (Service, *fakeCartRepository) {
	repo := newFakeCartRepository()
	productSvc := &fakeProductService{products: map[int64]product.Product{
		100: {ID: 100, Name: "Batik Parang Shirt", Price: 250000, Stock: 50, Sizes: []product.Size{
			{ID: 1, ProductID: 100, Label: "M", Stock: 10},
			{ID: 2, ProductID: 100, Label: "L", Stock: 2},
		}},
		200: {ID: 200, Name: "Batik Kawung Scarf", Price: 100000, Stock: 5},
	}}
	return NewService(repo, productSvc), repo
}

func TestService_Add(t *testing.T) {
	t.Parallel()
	const uid = int64(7)

	t.Run("snapshots name and price", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		cart, err := svc.Add(context.Background(), uid, 100, 2, "M")
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, domain.Line{
			ProductID:   100,
			ProductName: "Batik Parang Shirt",
			UnitPrice:   250000,
			Size:        "M",
			Quantity:    2,
		}, cart.Lines[0])
		assert.Equal(t, int64(500000), cart.Total())
	})

	t.Run("same product and size merges", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		_, err := svc.Add(context.Background(), uid, 100, 2, "M")
		require.NoError(t, err)
		cart, err := svc.Add(context.Background(), uid, 100, 3, "M")
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, int64(5), cart.Lines[0].Quantity)
	})

	t.Run("same product different size stays separate", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		_, err := svc.Add(context.Background(), uid, 100, 1, "M")
		require.NoError(t, err)
		cart, err := svc.Add(context.Background(), uid, 100, 1, "L")
		require.NoError(t, err)
		assert.Len(t, cart.Lines, 2)
	})

	t.Run("unknown product", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		_, err := svc.Add(context.Background(), uid, 999, 1, "")
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("quantity below one", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService()
		_, err := svc.Add(context.Background(), uid, 100, 0, "M")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("merged quantity above stock", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService()
		_, err := svc.Add(context.Background(), uid, 100, 2, "L")
		require.NoError(t, err)
		_, err = svc.Add(context.Background(), uid, 100, 1, "L")
		assert.ErrorIs(t, err, ErrOutOfStock)
		// the failed add must not dirty the stored cart
		cart, err := repo.Get(context.Background(), uid)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, int64(2), cart.Lines[0].Quantity)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()
	const uid = int64(7)

	svc, _ := newTestService()
	_, err := svc.Add(context.Background(), uid, 100, 1, "M")
	require.NoError(t, err)

	cart, err := svc.Update(context.Background(), uid, "100:M", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cart.Lines[0].Quantity)
	assert.Equal(t, int64(1000000), cart.Total())

	_, err = svc.Update(context.Background(), uid, "100:M", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Update(context.Background(), uid, "100:XL", 1)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestService_RemoveAndClear(t *testing.T) {
	t.Parallel()
	const uid = int64(7)

	svc, _ := newTestService()
	_, err := svc.Add(context.Background(), uid, 100, 1, "M")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), uid, 200, 1, "")
	require.NoError(t, err)

	cart, err := svc.Remove(context.Background(), uid, "100:M")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(200), cart.Lines[0].ProductID)

	_, err = svc.Remove(context.Background(), uid, "100:M")
	assert.ErrorIs(t, err, ErrLineNotFound)

	require.NoError(t, svc.Clear(context.Background(), uid))
	cart, err = svc.Get(context.Background(), uid)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
