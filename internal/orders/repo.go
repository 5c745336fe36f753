package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists orders in Postgres. Implements Store.
type Repo struct{ DB *pgxpool.Pool }

// Insert writes the order and all its lines in one transaction and assigns
// the internal ID. Line position preserves request order for retrieval.
func (r *Repo) Insert(ctx context.Context, o *Order) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o.ID = uuid.NewString()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders(id, order_number, created_at)
		VALUES ($1, $2, $3)
	`, o.ID, o.OrderNumber, o.CreatedAt)
	if err != nil {
		return err
	}

	for i, it := range o.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_lines(order_id, position, sku_code, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID, i, it.SkuCode, it.Quantity, it.Price,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *Repo) GetByNumber(ctx context.Context, orderNumber string) (Order, error) {
	var o Order
	row := r.DB.QueryRow(ctx, `SELECT id, order_number, created_at FROM orders WHERE order_number=$1`, orderNumber)
	if err := row.Scan(&o.ID, &o.OrderNumber, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}

	items, err := r.loadLines(ctx, o.ID)
	if err != nil {
		return Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, order_number, created_at FROM orders ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.loadLines(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

// DeleteByNumber removes the order and its lines in one transaction and
// returns what was deleted.
func (r *Repo) DeleteByNumber(ctx context.Context, orderNumber string) (Order, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var o Order
	row := tx.QueryRow(ctx, `SELECT id, order_number, created_at FROM orders WHERE order_number=$1 FOR UPDATE`, orderNumber)
	if err := row.Scan(&o.ID, &o.OrderNumber, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}

	rows, err := tx.Query(ctx, `
		SELECT sku_code, quantity, price FROM order_lines
		WHERE order_id=$1 ORDER BY position`, o.ID)
	if err != nil {
		return Order{}, err
	}
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.SkuCode, &it.Quantity, &it.Price); err != nil {
			rows.Close()
			return Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Order{}, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id=$1`, o.ID); err != nil {
		return Order{}, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, o.ID); err != nil {
		return Order{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *Repo) loadLines(ctx context.Context, orderID string) ([]LineItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT sku_code, quantity, price FROM order_lines
		WHERE order_id=$1 ORDER BY position`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.SkuCode, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
