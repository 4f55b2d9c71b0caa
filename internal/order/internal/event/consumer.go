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

package event

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// NotificationConsumer is the downstream hook for buyer notifications. It
// currently records every transition; mail and push delivery attach here.
type NotificationConsumer struct {
	consumer mq.Consumer
	logger   *elog.Component
}

func NewNotificationConsumer(q mq.MQ) (*NotificationConsumer, error) {
	groupID := "order_status_notification"
	consumer, err := q.Consumer(StatusChangedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &NotificationConsumer{
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *NotificationConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("failed to consume order status event", elog.FieldErr(err))
			}
		}
	}()
}

func (c *NotificationConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}
	var evt StatusChangedEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return err
	}
	c.logger.Info("order status changed",
		elog.Int64("orderID", evt.OrderID),
		elog.String("orderSN", evt.OrderSN),
		elog.Int64("buyerID", evt.BuyerID),
		elog.Any("oldStatus", evt.OldStatus),
		elog.Any("newStatus", evt.NewStatus))
	return nil
}
