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
	"fmt"

	"github.com/batiknusa/storefront/internal/cart/internal/domain"
	"github.com/batiknusa/storefront/internal/cart/internal/repository"
	"github.com/batiknusa/storefront/internal/product"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least one")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrOutOfStock      = errors.New("not enough stock")
)

type Service interface {
	Add(ctx context.Context, uid int64, productID int64, quantity int64, size string) (domain.Cart, error)
	Update(ctx context.Context, uid int64, lineKey string, quantity int64) (domain.Cart, error)
	Remove(ctx context.Context, uid int64, lineKey string) (domain.Cart, error)
	Clear(ctx context.Context, uid int64) error
	Get(ctx context.Context, uid int64) (domain.Cart, error)
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{repo: repo, productSvc: productSvc}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func (s *service) Add(ctx context.Context, uid int64, productID int64, quantity int64, size string) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, ErrInvalidQuantity
	}
	p, err := s.productSvc.FindByID(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("look up product %d: %w", productID, err)
	}
	cart, err := s.repo.Get(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}

	line := domain.Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Size:        size,
		Quantity:    quantity,
	}
	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].Key() == line.Key() {
			cart.Lines[i].Quantity += quantity
			line = cart.Lines[i]
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, line)
	}
	if line.Quantity > p.StockFor(size) {
		return domain.Cart{}, fmt.Errorf("%w: product %d size %q", ErrOutOfStock, productID, size)
	}
	return cart, s.repo.Save(ctx, uid, cart)
}

func (s *service) Update(ctx context.Context, uid int64, lineKey string, quantity int64) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, ErrInvalidQuantity
	}
	cart, err := s.repo.Get(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	for i := range cart.Lines {
		if cart.Lines[i].Key() == lineKey {
			cart.Lines[i].Quantity = quantity
			return cart, s.repo.Save(ctx, uid, cart)
		}
	}
	return domain.Cart{}, fmt.Errorf("%w: %s", ErrLineNotFound, lineKey)
}

func (s *service) Remove(ctx context.Context, uid int64, lineKey string) (domain.Cart, error) {
	cart, err := s.repo.Get(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	for i := range cart.Lines {
		if cart.Lines[i].Key() == lineKey {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return cart, s.repo.Save(ctx, uid, cart)
		}
	}
	return domain.Cart{}, fmt.Errorf("%w: %s", ErrLineNotFound, lineKey)
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.Clear(ctx, uid)
}

func (s *service) Get(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.repo.Get(ctx, uid)
}
