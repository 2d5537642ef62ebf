package repository

import (
	"context"
	"fmt"

	"go-event-ticketing/internal/model"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository also serves the other read-mostly reference data
// (states and local government areas).
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	FindCategoryByID(ctx context.Context, id int) (*model.Category, error)
	ListStates(ctx context.Context) ([]*model.State, error)
	ListLGAsByStateID(ctx context.Context, stateID int) ([]*model.LGA, error)
}

type CategoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &CategoryRepositoryImpl{
		pool: pool,
	}
}

func (r *CategoryRepositoryImpl) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`

	err := r.pool.QueryRow(ctx, query, category.Name, category.Description).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (r *CategoryRepositoryImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	query := `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*model.Category, 0)
	for rows.Next() {
		var category model.Category
		err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepositoryImpl) FindCategoryByID(ctx context.Context, id int) (*model.Category, error) {
	query := `
		SELECT id, name, description, created_at
		FROM categories
		WHERE id = $1
	`

	var category model.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	return &category, nil
}

func (r *CategoryRepositoryImpl) ListStates(ctx context.Context) ([]*model.State, error) {
	query := `
		SELECT id, name
		FROM states
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make([]*model.State, 0)
	for rows.Next() {
		var state model.State
		err := rows.Scan(&state.ID, &state.Name)
		if err != nil {
			return nil, err
		}
		states = append(states, &state)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return states, nil
}

func (r *CategoryRepositoryImpl) ListLGAsByStateID(ctx context.Context, stateID int) ([]*model.LGA, error) {
	query := `
		SELECT id, state_id, name
		FROM lgas
		WHERE state_id = $1
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query, stateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lgas := make([]*model.LGA, 0)
	for rows.Next() {
		var lga model.LGA
		err := rows.Scan(&lga.ID, &lga.StateID, &lga.Name)
		if err != nil {
			return nil, err
		}
		lgas = append(lgas, &lga)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lgas, nil
}
