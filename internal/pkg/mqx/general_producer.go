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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

// Producer publishes one event type to one topic.
type Producer[T any] interface {
	Produce(ctx context.Context, evt T) error
}

// NewGeneralProducer binds a JSON producer for T to topic.
func NewGeneralProducer[T any](q mq.MQ, topic string) (Producer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}
	return &generalProducer[T]{producer: p, topic: topic}, nil
}

type generalProducer[T any] struct {
	producer mq.Producer
	topic    string
}

func (p *generalProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if _, err = p.producer.Produce(ctx, &mq.Message{Value: data}); err != nil {
		return fmt.Errorf("produce event %#v to topic %s: %w", evt, p.topic, err)
	}
	return nil
}
