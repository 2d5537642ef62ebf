package repository

import (
	"context"
	"fmt"
	"time"

	"go-event-ticketing/internal/model"
	apperrors "go-event-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PayoutRepository interface {
	Create(ctx context.Context, payout *model.Payout) (*model.Payout, error)
	FindByID(ctx context.Context, id int) (*model.Payout, error)
	ListByOrganizerID(ctx context.Context, organizerID int) ([]*model.Payout, error)
	UpdateStatus(ctx context.Context, id int, status model.PayoutStatus) (*model.Payout, error)
	// SumActiveByOrganizerID totals all non-rejected payouts; rejected
	// requests return their amount to the available balance.
	SumActiveByOrganizerID(ctx context.Context, organizerID int) (decimal.Decimal, error)
}

type PayoutRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPayoutRepository(pool *pgxpool.Pool) PayoutRepository {
	return &PayoutRepositoryImpl{
		pool: pool,
	}
}

const payoutColumns = `id, organizer_id, amount, status, requested_at, processed_at`

func scanPayout(row pgx.Row) (*model.Payout, error) {
	var payout model.Payout
	err := row.Scan(
		&payout.ID,
		&payout.OrganizerID,
		&payout.Amount,
		&payout.Status,
		&payout.RequestedAt,
		&payout.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

func (r *PayoutRepositoryImpl) Create(ctx context.Context, payout *model.Payout) (*model.Payout, error) {
	query := fmt.Sprintf(`
		INSERT INTO payouts (organizer_id, amount, status)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, payoutColumns)

	created, err := scanPayout(r.pool.QueryRow(ctx, query,
		payout.OrganizerID, payout.Amount, model.PayoutStatusPending,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}

	return created, nil
}

func (r *PayoutRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Payout, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payouts
		WHERE id = $1
	`, payoutColumns)

	payout, err := scanPayout(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPayoutNotFound
		}
		return nil, err
	}

	return payout, nil
}

func (r *PayoutRepositoryImpl) ListByOrganizerID(ctx context.Context, organizerID int) ([]*model.Payout, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM payouts
		WHERE organizer_id = $1
		ORDER BY requested_at DESC
	`, payoutColumns)

	rows, err := r.pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payouts := make([]*model.Payout, 0)
	for rows.Next() {
		payout, err := scanPayout(rows)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, payout)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payouts, nil
}

func (r *PayoutRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.PayoutStatus) (*model.Payout, error) {
	query := fmt.Sprintf(`
		UPDATE payouts
		SET status = $1, processed_at = $2
		WHERE id = $3
		RETURNING %s
	`, payoutColumns)

	payout, err := scanPayout(r.pool.QueryRow(ctx, query, status, time.Now().UTC(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPayoutNotFound
		}
		return nil, fmt.Errorf("failed to update payout status: %w", err)
	}

	return payout, nil
}

func (r *PayoutRepositoryImpl) SumActiveByOrganizerID(ctx context.Context, organizerID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payouts
		WHERE organizer_id = $1 AND status != $2
	`

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, organizerID, model.PayoutStatusRejected).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
