package queue

import (
	"context"
	"go-event-ticketing/internal/model"
)

type Delivery struct {
	Data *model.TicketIssuedNotification
	Ack  func()
	Nack func(requeue bool)
}

// NotificationQueue carries ticket-issued notifications from the
// reconciliation path to the notification worker. Publishing happens
// after the reconciliation transaction commits and is best-effort.
type NotificationQueue interface {
	Publish(ctx context.Context, notification *model.TicketIssuedNotification) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// NotificationQueueImpl is the in-process channel implementation, used in
// single-instance deployments and tests.
type NotificationQueueImpl struct {
	ch chan *model.TicketIssuedNotification
}

func NewNotificationQueue(bufferSize int) NotificationQueue {
	return &NotificationQueueImpl{
		ch: make(chan *model.TicketIssuedNotification, bufferSize),
	}
}

func (q *NotificationQueueImpl) Publish(ctx context.Context, notification *model.TicketIssuedNotification) error {
	select {
	case q.ch <- notification:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *NotificationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case notification, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: notification,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- notification
						}
					},
				}
			}
		}
	}()

	return out, nil
}
