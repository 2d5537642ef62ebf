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

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	ListByOrganizerID(ctx context.Context, organizerID int) ([]*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id int) error
	CountByOrganizerID(ctx context.Context, organizerID int) (int, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, organizer_id, category_id, title, description, date,
		venue, state_id, lga_id, image_url, status, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.OrganizerID,
		&event.CategoryID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Venue,
		&event.StateID,
		&event.LgaID,
		&event.ImageURL,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (organizer_id, category_id, title, description, date,
			venue, state_id, lga_id, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s
	`, eventColumns)

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.OrganizerID, event.CategoryID, event.Title, event.Description,
		event.Date, event.Venue, event.StateID, event.LgaID, event.ImageURL,
		model.EventStatusActive,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argPos))
		args = append(args, *filter.CategoryID)
		argPos++
	}

	if filter.StateID != nil {
		conditions = append(conditions, fmt.Sprintf("state_id = $%d", argPos))
		args = append(args, *filter.StateID)
		argPos++
	}

	if filter.Upcoming {
		conditions = append(conditions, fmt.Sprintf("date >= $%d AND status = 'active'", argPos))
		args = append(args, time.Now().UTC())
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE %s
		ORDER BY date ASC
	`, eventColumns, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) ListByOrganizerID(ctx context.Context, organizerID int) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.CategoryID != nil {
		appendSet("category_id", *params.CategoryID)
	}
	if params.Title != nil {
		appendSet("title", *params.Title)
	}
	if params.Description != nil {
		appendSet("description", *params.Description)
	}
	if params.Date != nil {
		appendSet("date", *params.Date)
	}
	if params.Venue != nil {
		appendSet("venue", *params.Venue)
	}
	if params.StateID != nil {
		appendSet("state_id", *params.StateID)
	}
	if params.LgaID != nil {
		appendSet("lga_id", *params.LgaID)
	}
	if params.ImageURL != nil {
		appendSet("image_url", *params.ImageURL)
	}
	if params.Status != nil {
		if !params.Status.IsValid() {
			return nil, apperrors.ErrInvalidInput
		}
		appendSet("status", *params.Status)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	appendSet("updated_at", time.Now().UTC())

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// Delete removes the event and, via cascade, its tickets. Events are only
// deleted by explicit organizer action.
func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

func (r *EventRepositoryImpl) CountByOrganizerID(ctx context.Context, organizerID int) (int, error) {
	query := `SELECT COUNT(*) FROM events WHERE organizer_id = $1`

	var count int
	err := r.pool.QueryRow(ctx, query, organizerID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
