package queue_test

import (
	"context"
	"testing"
	"time"

	"go-event-ticketing/internal/model"
	"go-event-ticketing/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationQueue_PublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewNotificationQueue(10)

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	notification := &model.TicketIssuedNotification{
		OrderID:    1,
		EventID:    2,
		BookingRef: "TIX-abc",
		Email:      "buyer@example.com",
		TicketsQty: 3,
	}
	require.NoError(t, q.Publish(ctx, notification))

	select {
	case d := <-msgs:
		assert.Equal(t, "TIX-abc", d.Data.BookingRef)
		assert.Equal(t, 3, d.Data.TicketsQty)
		d.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestNotificationQueue_NackRequeues(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewNotificationQueue(10)

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, q.Publish(ctx, &model.TicketIssuedNotification{BookingRef: "TIX-retry"}))

	var first queue.Delivery
	select {
	case first = <-msgs:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first delivery")
	}
	first.Nack(true)

	select {
	case second := <-msgs:
		assert.Equal(t, "TIX-retry", second.Data.BookingRef)
		second.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("nacked message was not redelivered")
	}
}

func TestNotificationQueue_PublishAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := queue.NewNotificationQueue(0)

	err := q.Publish(ctx, &model.TicketIssuedNotification{BookingRef: "TIX-late"})
	assert.ErrorIs(t, err, context.Canceled)
}
