package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/klwxsrx/project-manager/pkg/event"
)

var ErrEventNotRegistered = errors.New("event is not registered")

type (
	EventDispatcher interface {
		event.Dispatcher
		Register(topic Topic, eventTypes ...string)
	}

	eventDispatcher struct {
		producer Producer

		mu     sync.RWMutex
		topics map[string]Topic
	}
)

func NewEventDispatcher(producer Producer) EventDispatcher {
	return &eventDispatcher{
		producer: producer,
		topics:   make(map[string]Topic),
	}
}

func (d *eventDispatcher) Register(topic Topic, eventTypes ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, eventType := range eventTypes {
		d.topics[eventType] = topic
	}
}

// Dispatch sends events in order and stops at the first failure.
func (d *eventDispatcher) Dispatch(ctx context.Context, events ...event.Event) error {
	for _, evt := range events {
		msg, err := d.toMessage(evt)
		if err != nil {
			return err
		}

		err = d.producer.Send(ctx, msg)
		if err != nil {
			return fmt.Errorf("send event %s with id %s: %w", evt.Type(), evt.ID(), err)
		}
	}

	return nil
}

func (d *eventDispatcher) toMessage(evt event.Event) (*Message, error) {
	d.mu.RLock()
	topic, ok := d.topics[evt.Type()]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEventNotRegistered, evt.Type())
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("serialize event %s: %w", evt.Type(), err)
	}

	return &Message{
		ID:      evt.ID(),
		Type:    evt.Type(),
		Topic:   topic,
		Key:     evt.AggregateID().String(),
		Payload: payload,
	}, nil
}
