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

	"github.com/batiknusa/storefront/internal/product/internal/domain"
	"github.com/batiknusa/storefront/internal/product/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	prod, err := p.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	sizes, err := p.d.FindSizesByProductID(ctx, prod.Id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(prod, sizes), nil
}

func (p *productRepository) toDomain(prod dao.Product, sizes []dao.ProductSize) domain.Product {
	return domain.Product{
		ID:    prod.Id,
		Name:  prod.Name,
		Slug:  prod.Slug,
		Price: prod.Price,
		Stock: prod.Stock,
		Sizes: slice.Map(sizes, func(idx int, src dao.ProductSize) domain.Size {
			return domain.Size{
				ID:        src.Id,
				ProductID: src.ProductId,
				Label:     src.Label,
				Stock:     src.Stock,
			}
		}),
		Ctime: prod.Ctime,
		Utime: prod.Utime,
	}
}
