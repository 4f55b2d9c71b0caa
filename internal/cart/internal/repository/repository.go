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

package repository

import (
	"context"

	"github.com/batiknusa/storefront/internal/cart/internal/domain"
	"github.com/batiknusa/storefront/internal/cart/internal/repository/cache"
)

// CartRepository is backed only by the session cache. Carts are never written
// to the relational store; checkout consumes them into an order instead.
type CartRepository interface {
	Get(ctx context.Context, uid int64) (domain.Cart, error)
	Save(ctx context.Context, uid int64, cart domain.Cart) error
	Clear(ctx context.Context, uid int64) error
}

func NewCartRepository(c cache.CartCache) CartRepository {
	return &cartRepository{c: c}
}

type cartRepository struct {
	c cache.CartCache
}

func (r *cartRepository) Get(ctx context.Context, uid int64) (domain.Cart, error) {
	return r.c.Get(ctx, uid)
}

func (r *cartRepository) Save(ctx context.Context, uid int64, cart domain.Cart) error {
	return r.c.Set(ctx, uid, cart)
}

func (r *cartRepository) Clear(ctx context.Context, uid int64) error {
	return r.c.Del(ctx, uid)
}
