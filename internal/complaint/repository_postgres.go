package complaint

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertComplaintQuery = `
		INSERT INTO complaints (order_id, buyer_id, reasons, description, images, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING complaint_id
	`
	listComplaintsByOrderQuery = `
		SELECT complaint_id, order_id, buyer_id, reasons, description, images, status, created_at
		FROM complaints WHERE order_id = $1 ORDER BY complaint_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(c Complaint) (Complaint, error) {
	err := r.db.QueryRow(insertComplaintQuery,
		c.OrderID, c.BuyerID, pq.Array(c.Reasons), c.Description,
		pq.Array(c.Images), c.Status, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return Complaint{}, err
	}
	return c, nil
}

func (r *PostgresRepository) ListByOrder(orderID int) ([]Complaint, error) {
	rows, err := r.db.Query(listComplaintsByOrderQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Complaint, 0)
	for rows.Next() {
		var c Complaint
		if err := rows.Scan(&c.ID, &c.OrderID, &c.BuyerID, pq.Array(&c.Reasons),
			&c.Description, pq.Array(&c.Images), &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
