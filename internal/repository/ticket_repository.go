package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-event-ticketing/internal/model"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error)
	FindByID(ctx context.Context, id int) (*model.Ticket, error)
	Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error)
	Delete(ctx context.Context, id int) error

	// Transaction methods
	FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Ticket, error)
	CommitSale(ctx context.Context, tx pgx.Tx, id int, quantity int) error
	SumSoldByEventID(ctx context.Context, eventID int) (int, error)
	SumSoldByOrganizerID(ctx context.Context, organizerID int) (int, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `id, event_id, name, price, quantity_available,
		quantity_sold, created_at, updated_at`

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.Name,
		&ticket.Price,
		&ticket.QuantityAvailable,
		&ticket.QuantitySold,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := fmt.Sprintf(`
		INSERT INTO tickets (event_id, name, price, quantity_available, quantity_sold)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING %s
	`, ticketColumns)

	created, err := scanTicket(r.pool.QueryRow(ctx, query,
		ticket.EventID, ticket.Name, ticket.Price, ticket.QuantityAvailable,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return created, nil
}

func (r *TicketRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets
		WHERE event_id = $1
		ORDER BY price ASC
	`, ticketColumns)

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets
		WHERE id = $1
	`, ticketColumns)

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Ticket, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tickets
		WHERE id = $1
		FOR UPDATE
	`, ticketColumns)

	ticket, err := scanTicket(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateTicketParams) (*model.Ticket, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Price != nil {
		sets = append(sets, fmt.Sprintf("price = $%d", argPos))
		args = append(args, *params.Price)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tickets
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, ticketColumns)

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}

// CommitSale moves quantity units from available to sold. The guard on
// quantity_available keeps stock from going negative: if a concurrent
// sale already consumed the units, the update matches no row and the
// surrounding transaction rolls back.
func (r *TicketRepositoryImpl) CommitSale(ctx context.Context, tx pgx.Tx, id int, quantity int) error {
	query := `
		UPDATE tickets
		SET quantity_available = quantity_available - $1,
			quantity_sold = quantity_sold + $1,
			updated_at = $2
		WHERE id = $3 AND quantity_available >= $1
	`

	result, err := tx.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrInsufficientStock
	}

	return nil
}

func (r *TicketRepositoryImpl) SumSoldByEventID(ctx context.Context, eventID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity_sold), 0)
		FROM tickets
		WHERE event_id = $1
	`

	var sold int
	err := r.pool.QueryRow(ctx, query, eventID).Scan(&sold)
	if err != nil {
		return 0, err
	}

	return sold, nil
}

func (r *TicketRepositoryImpl) SumSoldByOrganizerID(ctx context.Context, organizerID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(t.quantity_sold), 0)
		FROM tickets t
		JOIN events e ON e.id = t.event_id
		WHERE e.organizer_id = $1
	`

	var sold int
	err := r.pool.QueryRow(ctx, query, organizerID).Scan(&sold)
	if err != nil {
		return 0, err
	}

	return sold, nil
}
