package wishlist

import (
	"database/sql"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	addWishlistQuery = `
		INSERT INTO wishlist_items (user_id, product_id, created_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (user_id, product_id) DO UPDATE SET product_id = EXCLUDED.product_id
		RETURNING wishlist_item_id, product_id, created_at
	`
	removeWishlistQuery = `DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`
	hasWishlistQuery    = `SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2)`
	clearWishlistQuery  = `DELETE FROM wishlist_items WHERE user_id = $1`
	listWishlistQuery   = `
		SELECT wishlist_item_id, product_id, created_at
		FROM wishlist_items WHERE user_id = $1 ORDER BY wishlist_item_id
	`
	countWishlistQuery = `SELECT COUNT(*) FROM wishlist_items WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(userID, productID int, at time.Time) (Item, error) {
	var it Item
	err := r.db.QueryRow(addWishlistQuery, userID, productID, at).
		Scan(&it.ID, &it.ProductID, &it.CreatedAt)
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) Remove(userID, productID int) error {
	res, err := r.db.Exec(removeWishlistQuery, userID, productID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotWishlisted
	}
	return nil
}

func (r *PostgresRepository) Has(userID, productID int) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(hasWishlistQuery, userID, productID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRepository) Clear(userID int) error {
	_, err := r.db.Exec(clearWishlistQuery, userID)
	return err
}

func (r *PostgresRepository) List(userID int) ([]Item, error) {
	rows, err := r.db.Query(listWishlistQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.ProductID, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Count(userID int) (int, error) {
	var n int
	if err := r.db.QueryRow(countWishlistQuery, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
