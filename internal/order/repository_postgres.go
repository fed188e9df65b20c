package order

import (
	"database/sql"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `order_id, reference, product_id, buyer_id, seller_id, price, delivery_fee, status, satisfaction, created_at, delivered_at`

	insertOrderQuery = `
		INSERT INTO orders (reference, product_id, buyer_id, seller_id, price, delivery_fee, status, satisfaction, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING order_id
	`
	getOrderByIDQuery        = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	getOrderByReferenceQuery = `SELECT ` + orderColumns + ` FROM orders WHERE reference = $1`
	markPaidQuery            = `UPDATE orders SET status = $1 WHERE reference = $2 AND status = $3 RETURNING ` + orderColumns
	updateOrderStatusQuery   = `UPDATE orders SET status = $1 WHERE order_id = $2`
	setDeliveredQuery        = `UPDATE orders SET status = $1, delivered_at = $2 WHERE order_id = $3 AND delivered_at IS NULL`
	setSatisfactionQuery     = `UPDATE orders SET satisfaction = $1 WHERE order_id = $2`
	listByBuyerQuery         = `SELECT ` + orderColumns + ` FROM orders WHERE buyer_id = $1 ORDER BY order_id DESC`
	listBySellerQuery        = `SELECT ` + orderColumns + ` FROM orders WHERE seller_id = $1 ORDER BY order_id DESC`
	listAllQuery             = `SELECT ` + orderColumns + ` FROM orders ORDER BY order_id DESC`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	err := r.db.QueryRow(insertOrderQuery,
		ord.Reference, ord.ProductID, ord.BuyerID, ord.SellerID,
		ord.Price, ord.DeliveryFee, string(ord.Status), string(ord.Satisfaction), ord.CreatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}
	ord.TotalAmount = ord.Total()
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	return r.get(getOrderByIDQuery, id)
}

func (r *PostgresRepository) GetByReference(reference string) (Order, error) {
	return r.get(getOrderByReferenceQuery, reference)
}

func (r *PostgresRepository) get(query string, arg interface{}) (Order, error) {
	row := r.db.QueryRow(query, arg)
	ord, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) MarkPaid(reference string) (Order, error) {
	row := r.db.QueryRow(markPaidQuery, string(StatusPaid), reference, string(StatusUnderReview))
	ord, err := scanOrder(row)
	if err == sql.ErrNoRows {
		// no row matched: either the reference is unknown or the order is
		// already past UNDER_REVIEW; the follow-up read tells them apart
		ord, err = r.get(getOrderByReferenceQuery, reference)
		if err != nil {
			return Order{}, err
		}
		return ord, ErrAlreadyVerified
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) UpdateStatus(id int, status Status) error {
	res, err := r.db.Exec(updateOrderStatusQuery, string(status), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PostgresRepository) SetDelivered(id int, at time.Time) error {
	res, err := r.db.Exec(setDeliveredQuery, string(StatusDelivered), at, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PostgresRepository) SetSatisfaction(id int, s Satisfaction) error {
	res, err := r.db.Exec(setSatisfactionQuery, string(s), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PostgresRepository) ListByBuyer(buyerID int) ([]Order, error) {
	return r.listQuery(listByBuyerQuery, buyerID)
}

func (r *PostgresRepository) ListBySeller(sellerID int) ([]Order, error) {
	return r.listQuery(listBySellerQuery, sellerID)
}

func (r *PostgresRepository) ListAll() ([]Order, error) {
	return r.listQuery(listAllQuery)
}

func (r *PostgresRepository) listQuery(query string, args ...interface{}) ([]Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	var status, satisfaction string
	var deliveredAt sql.NullTime
	err := row.Scan(&ord.ID, &ord.Reference, &ord.ProductID, &ord.BuyerID, &ord.SellerID,
		&ord.Price, &ord.DeliveryFee, &status, &satisfaction, &ord.CreatedAt, &deliveredAt)
	if err != nil {
		return Order{}, err
	}
	ord.Status = Status(status)
	ord.Satisfaction = Satisfaction(satisfaction)
	if deliveredAt.Valid {
		t := deliveredAt.Time
		ord.DeliveredAt = &t
	}
	ord.TotalAmount = ord.Total()
	return ord, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
