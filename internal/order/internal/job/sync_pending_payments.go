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

package job

import (
	"context"
	"errors"
	"time"

	"github.com/batiknusa/storefront/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// SyncPendingPaymentsJob sweeps orders whose payment is still pending and
// polls the gateway for each. Webhooks normally settle orders first; the
// sweep catches deliveries that never arrived.
type SyncPendingPaymentsJob struct {
	svc service.Service
	// minAge keeps freshly created orders out of the sweep so the job does
	// not race a checkout still in flight.
	minAge time.Duration
	limit  int
	logger *elog.Component
}

func NewSyncPendingPaymentsJob(svc service.Service, minAge time.Duration, limit int) *SyncPendingPaymentsJob {
	return &SyncPendingPaymentsJob{
		svc:    svc,
		minAge: minAge,
		limit:  limit,
		logger: elog.DefaultLogger,
	}
}

func (j *SyncPendingPaymentsJob) Name() string {
	return "sync_pending_payments"
}

func (j *SyncPendingPaymentsJob) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-j.minAge).UnixMilli()
	// Keyset pagination: reconciled orders drop out of the pending set
	// mid-sweep, so offset paging would skip every other page.
	var afterID int64
	for {
		orders, err := j.svc.FindPendingPayments(ctx, afterID, j.limit, cutoff)
		if err != nil {
			return err
		}
		for _, o := range orders {
			_, err := j.svc.PollAndReconcile(ctx, o)
			switch {
			case errors.Is(err, service.ErrTerminalOrder):
				// Already settled through another path. Logged by the
				// service; nothing to do here.
			case err != nil:
				j.logger.Warn("failed to sync pending payment",
					elog.FieldErr(err),
					elog.Int64("orderID", o.ID))
			}
		}
		if len(orders) < j.limit {
			return nil
		}
		afterID = orders[len(orders)-1].ID
	}
}
