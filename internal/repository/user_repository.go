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

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindProfileByUserID(ctx context.Context, userID int) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID int, params model.UpdateProfileParams) (*model.Profile, error)
}

type UserRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &UserRepositoryImpl{
		pool: pool,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
		INSERT INTO users (username, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, first_name, last_name, email, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		user.Username, user.FirstName, user.LastName, user.Email,
	).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id int) (*model.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, created_at
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, created_at
		FROM users
		WHERE email = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepositoryImpl) FindProfileByUserID(ctx context.Context, userID int) (*model.Profile, error) {
	query := `
		SELECT id, user_id, phone, gender, address, status, created_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile model.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Phone,
		&profile.Gender,
		&profile.Address,
		&profile.Status,
		&profile.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &profile, nil
}

func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, userID int, params model.UpdateProfileParams) (*model.Profile, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Phone != nil {
		sets = append(sets, fmt.Sprintf("phone = $%d", argPos))
		args = append(args, *params.Phone)
		argPos++
	}

	if params.Gender != nil {
		sets = append(sets, fmt.Sprintf("gender = $%d", argPos))
		args = append(args, *params.Gender)
		argPos++
	}

	if params.Address != nil {
		sets = append(sets, fmt.Sprintf("address = $%d", argPos))
		args = append(args, *params.Address)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	args = append(args, userID)

	query := fmt.Sprintf(`
		UPDATE profiles
		SET %s
		WHERE user_id = $%d
		RETURNING id, user_id, phone, gender, address, status, created_at
	`, strings.Join(sets, ", "), argPos)

	var profile model.Profile
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Phone,
		&profile.Gender,
		&profile.Address,
		&profile.Status,
		&profile.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &profile, nil
}
