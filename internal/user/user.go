package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTermsAccepted      = errors.New("Terms already accepted")
)

const (
	RoleAdmin   = "admin"
	RoleRegular = "regular"
)

type User struct {
	ID                int        `json:"id"`
	Email             string     `json:"email"`
	Password          string     `json:"password,omitempty"`
	FullName          string     `json:"fullName"`
	Whatsapp          string     `json:"whatsapp"`
	HouseAddress      string     `json:"houseAddress"`
	SubstituteAddress string     `json:"substituteAddress"`
	BankAccount       string     `json:"bankAccount"`
	BankName          string     `json:"bankName"`
	Role              string     `json:"role"`
	AcceptedTermsAt   *time.Time `json:"acceptedTermsAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Public is the subset of a user shown to other users (e.g. as a product's
// seller or an order party).
type Public struct {
	ID                int    `json:"id"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Whatsapp          string `json:"whatsapp,omitempty"`
	HouseAddress      string `json:"houseAddress,omitempty"`
	SubstituteAddress string `json:"substituteAddress,omitempty"`
}

func (u User) AsPublic() Public {
	return Public{
		ID:                u.ID,
		FullName:          u.FullName,
		Email:             u.Email,
		Whatsapp:          u.Whatsapp,
		HouseAddress:      u.HouseAddress,
		SubstituteAddress: u.SubstituteAddress,
	}
}
