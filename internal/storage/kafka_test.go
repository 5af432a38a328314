package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/mocks"
	"restaurant-storefront/internal/storage"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	ctx := context.Background()
	event := domain.OrderEvent{
		Type:      domain.EventOrderCreated,
		OrderID:   "o42",
		UserID:    "u1",
		Status:    domain.StatusPending,
		Total:     1680,
		CreatedAt: time.Date(2024, 3, 1, 19, 45, 0, 0, time.UTC),
		Items:     []domain.OrderEventItem{{ProductID: "p1", Quantity: 2}},
	}

	tests := []struct {
		name     string
		writeErr error
	}{
		{name: "success"},
		{name: "broker unavailable", writeErr: errors.New("broker unavailable")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			writer := mocks.NewMessageWriter(t)
			var sent kafka.Message
			writer.On("WriteMessages", ctx, mock.AnythingOfType("kafka.Message")).
				Run(func(args mock.Arguments) { sent = args.Get(1).(kafka.Message) }).
				Return(testCase.writeErr).Once()

			err := storage.NewKafkaPublisher(writer).PublishOrderEvent(ctx, event)
			assert.Equal(t, testCase.writeErr, err)

			assert.Equal(t, "o42", string(sent.Key))
			var decoded domain.OrderEvent
			require.NoError(t, json.Unmarshal(sent.Value, &decoded))
			assert.Equal(t, event.Type, decoded.Type)
			assert.Equal(t, event.Items, decoded.Items)
			assert.Equal(t, event.Total, decoded.Total)
		})
	}
}
