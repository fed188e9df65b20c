package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	userColumns = `user_id, email, password_hash, full_name, whatsapp, house_address, substitute_address, bank_account_number, bank_name, role, accepted_terms_at, created_at, updated_at`

	getUserByIDQuery    = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	getUserByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	insertUserQuery     = `
		INSERT INTO users (email, password_hash, full_name, whatsapp, house_address, substitute_address, bank_account_number, bank_name, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING user_id
	`
	updateUserQuery = `
		UPDATE users
		SET email = $1,
			password_hash = $2,
			full_name = $3,
			whatsapp = $4,
			house_address = $5,
			substitute_address = $6,
			bank_account_number = $7,
			bank_name = $8,
			role = $9,
			accepted_terms_at = $10,
			updated_at = $11
		WHERE user_id = $12
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return r.get(getUserByIDQuery, id)
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.get(getUserByEmailQuery, email)
}

func (r *PostgresRepository) get(query string, arg interface{}) (User, error) {
	var u User
	var acceptedAt sql.NullTime
	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Email, &u.Password, &u.FullName, &u.Whatsapp,
		&u.HouseAddress, &u.SubstituteAddress, &u.BankAccount, &u.BankName,
		&u.Role, &acceptedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	if acceptedAt.Valid {
		t := acceptedAt.Time
		u.AcceptedTermsAt = &t
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	err := r.db.QueryRow(insertUserQuery,
		u.Email, u.Password, u.FullName, u.Whatsapp, u.HouseAddress,
		u.SubstituteAddress, u.BankAccount, u.BankName, u.Role,
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Update(id int, u User) (User, error) {
	var acceptedAt interface{}
	if u.AcceptedTermsAt != nil {
		acceptedAt = *u.AcceptedTermsAt
	}
	res, err := r.db.Exec(updateUserQuery,
		u.Email, u.Password, u.FullName, u.Whatsapp, u.HouseAddress,
		u.SubstituteAddress, u.BankAccount, u.BankName, u.Role,
		acceptedAt, u.UpdatedAt, id,
	)
	if err != nil {
		return User{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if n == 0 {
		return User{}, ErrNotFound
	}
	u.ID = id
	return u, nil
}
