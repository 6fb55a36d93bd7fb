package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) StoreExists(ctx context.Context, storeID int64) (bool, error) {
	var one int
	err := r.DB.QueryRow(ctx, `SELECT 1 FROM stores WHERE store_id=$1`, storeID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repo) CustomerExists(ctx context.Context, customerID int64) (bool, error) {
	var one int
	err := r.DB.QueryRow(ctx, `SELECT 1 FROM customers WHERE customer_id=$1`, customerID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateOrder persists an order and its lines in one transaction:
// insert the header with a zero total, price the lines against the menu as
// read inside the transaction, insert the lines, then update the header
// total. Any failure, pricing included, rolls the whole order back.
func (r *Repo) CreateOrder(ctx context.Context, req PlaceOrderRequest, promo *Promo) (Receipt, error) {
	orderedAt := req.OrderedAt
	if orderedAt.IsZero() {
		orderedAt = time.Now().UTC()
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: begin: %v", ErrDataAccess, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, store_id, order_timestamp, total_amount, payment_method, status)
		VALUES ($1, $2, $3, 0, $4, $5)
		RETURNING order_id`,
		req.CustomerID, req.StoreID, orderedAt, string(req.Payment), StatusCompleted,
	).Scan(&orderID)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: insert order: %v", ErrDataAccess, err)
	}

	table, err := r.priceTable(ctx, tx)
	if err != nil {
		return Receipt{}, err
	}

	lines, total, err := PriceLines(table, req.Items, promo)
	if err != nil {
		return Receipt{}, err
	}

	for i := range lines {
		lines[i].OrderID = orderID
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items
				(order_id, item_id, order_type, quantity, unit_price,
				 discount_percent, discount_amount, line_total, discount_reason)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			orderID, lines[i].ItemID, string(lines[i].OrderType), lines[i].Quantity,
			lines[i].UnitPrice, lines[i].DiscountPercent, lines[i].DiscountAmount,
			lines[i].LineTotal, lines[i].DiscountReason,
		)
		if err != nil {
			return Receipt{}, fmt.Errorf("%w: insert order line: %v", ErrDataAccess, err)
		}
	}

	_, err = tx.Exec(ctx, `UPDATE orders SET total_amount=$1 WHERE order_id=$2`, total, orderID)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: update total: %v", ErrDataAccess, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}
	return Receipt{OrderID: orderID, TotalAmount: total, Lines: len(lines)}, nil
}

func (r *Repo) priceTable(ctx context.Context, tx pgx.Tx) (PriceTable, error) {
	rows, err := tx.Query(ctx, `SELECT item_id, box_price, slice_price FROM menu_items`)
	if err != nil {
		return nil, fmt.Errorf("%w: load price table: %v", ErrDataAccess, err)
	}
	defer rows.Close()

	table := PriceTable{}
	for rows.Next() {
		var itemID int64
		var p ItemPrices
		if err := rows.Scan(&itemID, &p.Box, &p.Slice); err != nil {
			return nil, fmt.Errorf("%w: scan price row: %v", ErrDataAccess, err)
		}
		table[itemID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load price table: %v", ErrDataAccess, err)
	}
	return table, nil
}
