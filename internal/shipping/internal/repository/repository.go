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

	"github.com/batiknusa/storefront/internal/shipping/internal/domain"
	"github.com/batiknusa/storefront/internal/shipping/internal/repository/cache"
)

var (
	ErrQuoteNotCached = cache.ErrQuoteNotCached
	ErrNoSelection    = cache.ErrSelectionNotFound
)

type ShippingRepository interface {
	GetCachedQuote(ctx context.Context, origin, destination string, weightGrams int64) ([]domain.Option, error)
	CacheQuote(ctx context.Context, origin, destination string, weightGrams int64, options []domain.Option) error
	GetSelection(ctx context.Context, uid int64) (domain.Selection, error)
	SetSelection(ctx context.Context, uid int64, sel domain.Selection) error
	DelSelection(ctx context.Context, uid int64) error
}

func NewShippingRepository(qc cache.QuoteCache, sc cache.SelectionCache) ShippingRepository {
	return &shippingRepository{qc: qc, sc: sc}
}

type shippingRepository struct {
	qc cache.QuoteCache
	sc cache.SelectionCache
}

func (r *shippingRepository) GetCachedQuote(ctx context.Context, origin, destination string, weightGrams int64) ([]domain.Option, error) {
	return r.qc.Get(ctx, origin, destination, weightGrams)
}

func (r *shippingRepository) CacheQuote(ctx context.Context, origin, destination string, weightGrams int64, options []domain.Option) error {
	return r.qc.Set(ctx, origin, destination, weightGrams, options)
}

func (r *shippingRepository) GetSelection(ctx context.Context, uid int64) (domain.Selection, error) {
	return r.sc.Get(ctx, uid)
}

func (r *shippingRepository) SetSelection(ctx context.Context, uid int64, sel domain.Selection) error {
	return r.sc.Set(ctx, uid, sel)
}

func (r *shippingRepository) DelSelection(ctx context.Context, uid int64) error {
	return r.sc.Del(ctx, uid)
}
