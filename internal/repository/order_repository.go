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

type OrderRepository interface {
	FindByID(ctx context.Context, id int) (*model.Order, error)
	FindByReference(ctx context.Context, reference string) (*model.Order, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.Order, error)
	ListItemsByOrderID(ctx context.Context, orderID int) ([]*model.OrderItem, error)
	UpdateReference(ctx context.Context, id int, reference string) (*model.Order, error)
	SumPaidByOrganizerID(ctx context.Context, organizerID int) (decimal.Decimal, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error)
	FindPendingByUserAndEvent(ctx context.Context, tx pgx.Tx, userID, eventID int) (*model.Order, error)
	FindByReferenceWithLock(ctx context.Context, tx pgx.Tx, reference string) (*model.Order, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.OrderStatus) (*model.Order, error)
	UpdateTotalAmount(ctx context.Context, tx pgx.Tx, id int, total decimal.Decimal) (*model.Order, error)
	CreateItem(ctx context.Context, tx pgx.Tx, item *model.OrderItem) (*model.OrderItem, error)
	DeleteItemsByOrderID(ctx context.Context, tx pgx.Tx, orderID int) error
	ListItemsByOrderIDTx(ctx context.Context, tx pgx.Tx, orderID int) ([]*model.OrderItem, error)
}

type OrderRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &OrderRepositoryImpl{
		pool: pool,
	}
}

const orderColumns = `id, user_id, event_id, total_amount, reference, status,
		created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var order model.Order
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.EventID,
		&order.TotalAmount,
		&order.Reference,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, order *model.Order) (*model.Order, error) {
	query := fmt.Sprintf(`
		INSERT INTO orders (user_id, event_id, total_amount, reference, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, orderColumns)

	created, err := scanOrder(tx.QueryRow(ctx, query,
		order.UserID, order.EventID, order.TotalAmount, order.Reference, order.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return created, nil
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE id = $1
	`, orderColumns)

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

func (r *OrderRepositoryImpl) FindByReference(ctx context.Context, reference string) (*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE reference = $1
	`, orderColumns)

	order, err := scanOrder(r.pool.QueryRow(ctx, query, reference))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

// FindByReferenceWithLock locks the order row for the duration of the
// reconciliation transaction so a concurrent verification of the same
// reference serializes behind it.
func (r *OrderRepositoryImpl) FindByReferenceWithLock(ctx context.Context, tx pgx.Tx, reference string) (*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE reference = $1
		FOR UPDATE
	`, orderColumns)

	order, err := scanOrder(tx.QueryRow(ctx, query, reference))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

// FindPendingByUserAndEvent returns the single retained pending order for
// (user, event), locked for item replacement, or ErrOrderNotFound.
func (r *OrderRepositoryImpl) FindPendingByUserAndEvent(ctx context.Context, tx pgx.Tx, userID, eventID int) (*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE user_id = $1 AND event_id = $2 AND status = $3
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`, orderColumns)

	order, err := scanOrder(tx.QueryRow(ctx, query, userID, eventID, model.OrderStatusPending))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

func (r *OrderRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, orderColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.OrderStatus) (*model.Order, error) {
	query := fmt.Sprintf(`
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING %s
	`, orderColumns)

	order, err := scanOrder(tx.QueryRow(ctx, query, status, time.Now().UTC(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}

// UpdateReference regenerates the payment reference ahead of a provider
// initialization and resets the order to pending, restarting the state
// machine for the new reference.
func (r *OrderRepositoryImpl) UpdateReference(ctx context.Context, id int, reference string) (*model.Order, error) {
	query := fmt.Sprintf(`
		UPDATE orders
		SET reference = $1, status = $2, updated_at = $3
		WHERE id = $4
		RETURNING %s
	`, orderColumns)

	order, err := scanOrder(r.pool.QueryRow(ctx, query, reference, model.OrderStatusPending, time.Now().UTC(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order reference: %w", err)
	}

	return order, nil
}

func (r *OrderRepositoryImpl) UpdateTotalAmount(ctx context.Context, tx pgx.Tx, id int, total decimal.Decimal) (*model.Order, error) {
	query := fmt.Sprintf(`
		UPDATE orders
		SET total_amount = $1, updated_at = $2
		WHERE id = $3
		RETURNING %s
	`, orderColumns)

	order, err := scanOrder(tx.QueryRow(ctx, query, total, time.Now().UTC(), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order total: %w", err)
	}

	return order, nil
}

func (r *OrderRepositoryImpl) CreateItem(ctx context.Context, tx pgx.Tx, item *model.OrderItem) (*model.OrderItem, error) {
	query := `
		INSERT INTO order_items (order_id, ticket_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, order_id, ticket_id, quantity
	`

	err := tx.QueryRow(ctx, query, item.OrderID, item.TicketID, item.Quantity).Scan(
		&item.ID,
		&item.OrderID,
		&item.TicketID,
		&item.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order item: %w", err)
	}

	return item, nil
}

func (r *OrderRepositoryImpl) DeleteItemsByOrderID(ctx context.Context, tx pgx.Tx, orderID int) error {
	query := `DELETE FROM order_items WHERE order_id = $1`

	_, err := tx.Exec(ctx, query, orderID)
	return err
}

func (r *OrderRepositoryImpl) ListItemsByOrderID(ctx context.Context, orderID int) ([]*model.OrderItem, error) {
	return listOrderItems(ctx, r.pool, orderID)
}

func (r *OrderRepositoryImpl) ListItemsByOrderIDTx(ctx context.Context, tx pgx.Tx, orderID int) ([]*model.OrderItem, error) {
	return listOrderItems(ctx, tx, orderID)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func listOrderItems(ctx context.Context, q querier, orderID int) ([]*model.OrderItem, error) {
	query := `
		SELECT id, order_id, ticket_id, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.OrderItem, 0)
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.TicketID, &item.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// SumPaidByOrganizerID totals paid-order revenue across all of an
// organizer's events, used for the payout balance.
func (r *OrderRepositoryImpl) SumPaidByOrganizerID(ctx context.Context, organizerID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(o.total_amount), 0)
		FROM orders o
		JOIN events e ON e.id = o.event_id
		WHERE e.organizer_id = $1 AND o.status = $2
	`

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, organizerID, model.OrderStatusPaid).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
