package cart

import (
	"database/sql"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	upsertCartItemQuery = `
		INSERT INTO cart_items (user_id, product_id, quantity, created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING cart_item_id, product_id, quantity, created_at
	`
	setCartQuantityQuery = `
		UPDATE cart_items SET quantity = $1
		WHERE user_id = $2 AND product_id = $3
		RETURNING cart_item_id, product_id, quantity, created_at
	`
	removeCartItemQuery = `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
	clearCartQuery      = `DELETE FROM cart_items WHERE user_id = $1`
	listCartQuery       = `
		SELECT cart_item_id, product_id, quantity, created_at
		FROM cart_items WHERE user_id = $1 ORDER BY cart_item_id
	`
	countCartQuery = `SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(userID, productID, qty int, at time.Time) (Item, error) {
	var it Item
	err := r.db.QueryRow(upsertCartItemQuery, userID, productID, qty, at).
		Scan(&it.ID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) SetQuantity(userID, productID, qty int) (Item, error) {
	var it Item
	err := r.db.QueryRow(setCartQuantityQuery, qty, userID, productID).
		Scan(&it.ID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err == sql.ErrNoRows {
		return Item{}, ErrNotInCart
	}
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) Remove(userID, productID int) error {
	res, err := r.db.Exec(removeCartItemQuery, userID, productID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotInCart
	}
	return nil
}

func (r *PostgresRepository) Clear(userID int) error {
	_, err := r.db.Exec(clearCartQuery, userID)
	return err
}

func (r *PostgresRepository) List(userID int) ([]Item, error) {
	rows, err := r.db.Query(listCartQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Count(userID int) (int, error) {
	var n int
	if err := r.db.QueryRow(countCartQuery, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
