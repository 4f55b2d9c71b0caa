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
	"time"

	"github.com/batiknusa/storefront/internal/coupon/internal/domain"
	"github.com/batiknusa/storefront/internal/coupon/internal/repository"
)

var (
	ErrInvalidOrExpired = errors.New("coupon is invalid or expired")
	ErrNoCouponApplied  = repository.ErrNoCouponApplied
)

type Service interface {
	// Apply validates the code and stores a snapshot for the session. The
	// validity check and the snapshot write happen on the same read of the
	// coupon row.
	Apply(ctx context.Context, uid int64, code string) (domain.Snapshot, error)
	Remove(ctx context.Context, uid int64) error
	Current(ctx context.Context, uid int64) (domain.Snapshot, error)
	// Revalidate re-checks the underlying coupon at checkout time, closing
	// the window in which a coupon expires between apply and checkout.
	Revalidate(ctx context.Context, snapshot domain.Snapshot) error
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo, now: func() int64 { return time.Now().UnixMilli() }}
}

func newServiceWithClock(repo repository.CouponRepository, now func() int64) Service {
	return &service{repo: repo, now: now}
}

type service struct {
	repo repository.CouponRepository
	now  func() int64
}

func (s *service) Apply(ctx context.Context, uid int64, code string) (domain.Snapshot, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", ErrInvalidOrExpired, code)
	}
	if !c.ValidAt(s.now()) {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", ErrInvalidOrExpired, code)
	}
	snapshot := c.Snapshot()
	if err := s.repo.SetSnapshot(ctx, uid, snapshot); err != nil {
		return domain.Snapshot{}, err
	}
	return snapshot, nil
}

func (s *service) Remove(ctx context.Context, uid int64) error {
	return s.repo.DelSnapshot(ctx, uid)
}

func (s *service) Current(ctx context.Context, uid int64) (domain.Snapshot, error) {
	return s.repo.GetSnapshot(ctx, uid)
}

func (s *service) Revalidate(ctx context.Context, snapshot domain.Snapshot) error {
	c, err := s.repo.FindByID(ctx, snapshot.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOrExpired, snapshot.Code)
	}
	if !c.ValidAt(s.now()) {
		return fmt.Errorf("%w: %s", ErrInvalidOrExpired, snapshot.Code)
	}
	return nil
}
