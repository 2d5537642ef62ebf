package model

// TicketIssuedNotification is published after a successful reconciliation
// and consumed by the notification worker. Reconciliation itself is
// synchronous; only the confirmation delivery rides the queue.
type TicketIssuedNotification struct {
	OrderID    int    `json:"order_id"`
	EventID    int    `json:"event_id"`
	BookingRef string `json:"booking_ref"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	TicketsQty int    `json:"tickets_qty"`
}
