package product

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `product_id, name, description, price, delivery_fee, condition, condition_rating, images, location_state, type, quantity, out_of_stock, active, is_disabled, seller_id, created_at`

	getProductByIDQuery = `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`

	insertProductQuery = `
		INSERT INTO products (name, description, price, delivery_fee, condition, condition_rating, images, location_state, type, quantity, out_of_stock, active, is_disabled, seller_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING product_id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			description = $2,
			price = $3,
			delivery_fee = $4,
			condition = $5,
			condition_rating = $6,
			images = $7,
			location_state = $8,
			type = $9,
			quantity = $10,
			out_of_stock = $11,
			active = $12,
			is_disabled = $13
		WHERE product_id = $14
	`
	decrementStockQuery = `
		UPDATE products
		SET quantity = quantity - 1,
			out_of_stock = (quantity - 1 <= 0)
		WHERE product_id = $1 AND quantity > 0
		RETURNING ` + productColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(f Filter) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var conds []string
	var args []interface{}
	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		conds = append(conds, `lower(name) LIKE $`+itoa(len(args)))
	}
	if f.Location != "" {
		args = append(args, f.Location)
		conds = append(conds, `lower(location_state) = lower($`+itoa(len(args))+`)`)
	}
	if f.Condition != "" {
		args = append(args, f.Condition)
		conds = append(conds, `lower(condition) = lower($`+itoa(len(args))+`)`)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY product_id DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(insertProductQuery,
		p.Name, p.Description, p.Price, p.DeliveryFee, p.Condition, p.ConditionRating,
		pq.Array(p.Images), p.LocationState, p.Type, p.Quantity, p.OutOfStock,
		p.Active, p.IsDisabled, p.SellerID, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(updateProductQuery,
		p.Name, p.Description, p.Price, p.DeliveryFee, p.Condition, p.ConditionRating,
		pq.Array(p.Images), p.LocationState, p.Type, p.Quantity, p.OutOfStock,
		p.Active, p.IsDisabled, id,
	)
	if err != nil {
		return Product{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) DecrementStock(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(decrementStockQuery, id))
	if err == sql.ErrNoRows {
		// either the product does not exist or it has no stock left; the
		// caller checked existence already, so report it as sold out
		return Product{}, ErrUnavailable
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DeliveryFee,
		&p.Condition, &p.ConditionRating, pq.Array(&p.Images), &p.LocationState,
		&p.Type, &p.Quantity, &p.OutOfStock, &p.Active, &p.IsDisabled,
		&p.SellerID, &p.CreatedAt)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
