package repository

import (
	"context"
	"fmt"
	"strings"

	"go-event-ticketing/internal/model"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrganizerRepository interface {
	Create(ctx context.Context, organizer *model.Organizer) (*model.Organizer, error)
	FindByID(ctx context.Context, id int) (*model.Organizer, error)
	FindByUserID(ctx context.Context, userID int) (*model.Organizer, error)
	Update(ctx context.Context, id int, params model.UpdateOrganizerParams) (*model.Organizer, error)
}

type OrganizerRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrganizerRepository(pool *pgxpool.Pool) OrganizerRepository {
	return &OrganizerRepositoryImpl{
		pool: pool,
	}
}

const organizerColumns = `id, user_id, organization_name, email, phone, bio,
		verified, joined_at`

func scanOrganizer(row pgx.Row) (*model.Organizer, error) {
	var organizer model.Organizer
	err := row.Scan(
		&organizer.ID,
		&organizer.UserID,
		&organizer.OrganizationName,
		&organizer.Email,
		&organizer.Phone,
		&organizer.Bio,
		&organizer.Verified,
		&organizer.JoinedAt,
	)
	if err != nil {
		return nil, err
	}
	return &organizer, nil
}

func (r *OrganizerRepositoryImpl) Create(ctx context.Context, organizer *model.Organizer) (*model.Organizer, error) {
	query := fmt.Sprintf(`
		INSERT INTO organizers (user_id, organization_name, email, phone, bio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, organizerColumns)

	created, err := scanOrganizer(r.pool.QueryRow(ctx, query,
		organizer.UserID, organizer.OrganizationName, organizer.Email,
		organizer.Phone, organizer.Bio,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create organizer: %w", err)
	}

	return created, nil
}

func (r *OrganizerRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Organizer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM organizers
		WHERE id = $1
	`, organizerColumns)

	organizer, err := scanOrganizer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, err
	}

	return organizer, nil
}

func (r *OrganizerRepositoryImpl) FindByUserID(ctx context.Context, userID int) (*model.Organizer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM organizers
		WHERE user_id = $1
	`, organizerColumns)

	organizer, err := scanOrganizer(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, err
	}

	return organizer, nil
}

func (r *OrganizerRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateOrganizerParams) (*model.Organizer, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.OrganizationName != nil {
		sets = append(sets, fmt.Sprintf("organization_name = $%d", argPos))
		args = append(args, *params.OrganizationName)
		argPos++
	}

	if params.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", argPos))
		args = append(args, *params.Email)
		argPos++
	}

	if params.Phone != nil {
		sets = append(sets, fmt.Sprintf("phone = $%d", argPos))
		args = append(args, *params.Phone)
		argPos++
	}

	if params.Bio != nil {
		sets = append(sets, fmt.Sprintf("bio = $%d", argPos))
		args = append(args, *params.Bio)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE organizers
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, organizerColumns)

	organizer, err := scanOrganizer(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrganizerNotFound
		}
		return nil, err
	}

	return organizer, nil
}
