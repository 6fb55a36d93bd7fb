package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresReader struct {
	DB *pgxpool.Pool
}

func (r *PostgresReader) ListMenu(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT item_id, name, category, COALESCE(size, ''), box_price, slice_price
		FROM menu_items
		ORDER BY item_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(&m.ItemID, &m.Name, &m.Category, &m.Size, &m.BoxPrice, &m.SlicePrice); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return out, nil
}

func (r *PostgresReader) ListStores(ctx context.Context) ([]Store, error) {
	rows, err := r.DB.Query(ctx, `SELECT store_id, city FROM stores ORDER BY store_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var out []Store
	for rows.Next() {
		var s Store
		if err := rows.Scan(&s.StoreID, &s.City); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return out, nil
}
