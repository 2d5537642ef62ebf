package worker

import (
	"context"

	"go-event-ticketing/internal/queue"
	"go-event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

// Dispatcher delivers one confirmation to the buyer. The default
// implementation logs the delivery; a mail sender satisfies the same
// interface in production.
type Dispatcher interface {
	Dispatch(ctx context.Context, d *queue.Delivery) error
}

type NotificationWorker interface {
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	queue      queue.NotificationQueue
	dispatcher Dispatcher
}

func NewNotificationWorker(q queue.NotificationQueue, dispatcher Dispatcher) NotificationWorker {
	if dispatcher == nil {
		dispatcher = &logDispatcher{}
	}
	return &NotificationWorkerImpl{
		queue:      q,
		dispatcher: dispatcher,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			err := w.dispatcher.Dispatch(ctx, &msg)
			if err != nil {
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}

type logDispatcher struct{}

func (d *logDispatcher) Dispatch(ctx context.Context, msg *queue.Delivery) error {
	logger.WithComponent("notification").Info("ticket issued",
		zap.String("booking_ref", msg.Data.BookingRef),
		zap.String("email", msg.Data.Email),
		zap.Int("event_id", msg.Data.EventID),
		zap.Int("tickets_qty", msg.Data.TicketsQty),
	)
	return nil
}
