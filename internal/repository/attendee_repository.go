package repository

import (
	"context"
	"fmt"

	"go-event-ticketing/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttendeeRepository interface {
	ListByUserID(ctx context.Context, userID int) ([]*model.Attendee, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Attendee, error)
	CountByBookingRef(ctx context.Context, bookingRef string) (int, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, attendee *model.Attendee) (*model.Attendee, error)
}

type AttendeeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAttendeeRepository(pool *pgxpool.Pool) AttendeeRepository {
	return &AttendeeRepositoryImpl{
		pool: pool,
	}
}

const attendeeColumns = `id, event_id, user_id, full_name, email, phone,
		tickets_qty, payment_status, booking_ref, registered_at`

func scanAttendee(row pgx.Row) (*model.Attendee, error) {
	var attendee model.Attendee
	err := row.Scan(
		&attendee.ID,
		&attendee.EventID,
		&attendee.UserID,
		&attendee.FullName,
		&attendee.Email,
		&attendee.Phone,
		&attendee.TicketsQty,
		&attendee.PaymentStatus,
		&attendee.BookingRef,
		&attendee.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

// Create mints an attendee record inside the reconciliation transaction.
func (r *AttendeeRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, attendee *model.Attendee) (*model.Attendee, error) {
	query := fmt.Sprintf(`
		INSERT INTO attendees (event_id, user_id, full_name, email, phone,
			tickets_qty, payment_status, booking_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, attendeeColumns)

	created, err := scanAttendee(tx.QueryRow(ctx, query,
		attendee.EventID, attendee.UserID, attendee.FullName, attendee.Email,
		attendee.Phone, attendee.TicketsQty, attendee.PaymentStatus, attendee.BookingRef,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create attendee: %w", err)
	}

	return created, nil
}

func (r *AttendeeRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Attendee, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendees
		WHERE user_id = $1
		ORDER BY registered_at DESC
	`, attendeeColumns)

	return r.list(ctx, query, userID)
}

func (r *AttendeeRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Attendee, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM attendees
		WHERE event_id = $1
		ORDER BY registered_at DESC
	`, attendeeColumns)

	return r.list(ctx, query, eventID)
}

func (r *AttendeeRepositoryImpl) list(ctx context.Context, query string, arg any) ([]*model.Attendee, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]*model.Attendee, 0)
	for rows.Next() {
		attendee, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, attendee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attendees, nil
}

func (r *AttendeeRepositoryImpl) CountByBookingRef(ctx context.Context, bookingRef string) (int, error) {
	query := `SELECT COUNT(*) FROM attendees WHERE booking_ref = $1`

	var count int
	err := r.pool.QueryRow(ctx, query, bookingRef).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
