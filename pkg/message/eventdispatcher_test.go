package message_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/project-manager/pkg/message"
	messagemock "github.com/klwxsrx/project-manager/pkg/message/mock"
)

type testEvent struct {
	EventID uuid.UUID `json:"eventID"`
	OwnerID uuid.UUID `json:"ownerID"`
	Name    string    `json:"name"`
}

func (e testEvent) ID() uuid.UUID          { return e.EventID }
func (e testEvent) Type() string           { return "test.created" }
func (e testEvent) AggregateID() uuid.UUID { return e.OwnerID }

func TestEventDispatcher(t *testing.T) {
	t.Parallel()

	const topic message.Topic = "persistent://public/default/test-domain-event"
	evt := testEvent{EventID: uuid.New(), OwnerID: uuid.New(), Name: "first"}

	t.Run("sends registered event", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		producer := messagemock.NewProducer(ctrl)

		var sent *message.Message
		producer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *message.Message) error {
			sent = msg
			return nil
		})

		dispatcher := message.NewEventDispatcher(producer)
		dispatcher.Register(topic, "test.created")
		require.NoError(t, dispatcher.Dispatch(context.Background(), evt))

		require.NotNil(t, sent)
		assert.Equal(t, evt.EventID, sent.ID)
		assert.Equal(t, topic, sent.Topic)
		assert.Equal(t, "test.created", sent.Type)
		assert.Equal(t, evt.OwnerID.String(), sent.Key)

		var payload testEvent
		require.NoError(t, json.Unmarshal(sent.Payload, &payload))
		assert.Equal(t, evt, payload)
	})

	t.Run("unregistered event", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		producer := messagemock.NewProducer(ctrl)

		dispatcher := message.NewEventDispatcher(producer)
		err := dispatcher.Dispatch(context.Background(), evt)
		assert.ErrorIs(t, err, message.ErrEventNotRegistered)
	})

	t.Run("producer failure", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		producer := messagemock.NewProducer(ctrl)
		errBroker := errors.New("broker unavailable")
		producer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errBroker)

		dispatcher := message.NewEventDispatcher(producer)
		dispatcher.Register(topic, "test.created")
		assert.ErrorIs(t, dispatcher.Dispatch(context.Background(), evt), errBroker)
	})
}

func TestNewDomainEventTopic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, message.Topic("persistent://public/default/user-user-events"), message.NewDomainEventTopic("user", "user"))
	assert.Equal(t, message.Topic("persistent://public/default/project-board-project-events"), message.NewDomainEventTopic("projectBoard", "Project"))
}
