package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Register(User{
		Email:    "ada@example.com",
		Password: "s3cret",
		FullName: "Ada Example",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleRegular, created.Role)
	assert.NotEqual(t, "s3cret", created.Password, "password must be stored hashed")

	got, err := svc.Authenticate("ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Authenticate("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	_, err := svc.Register(User{Email: "a@b.c", Password: "x", FullName: "A"})
	require.NoError(t, err)

	_, err = svc.Register(User{Email: "a@b.c", Password: "y", FullName: "B"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAcceptTermsOnce(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	created, err := svc.Register(User{Email: "a@b.c", Password: "x", FullName: "A"})
	require.NoError(t, err)

	accepted, err := svc.AcceptTerms(created.ID)
	require.NoError(t, err)
	require.NotNil(t, accepted.AcceptedTermsAt)
	first := *accepted.AcceptedTermsAt

	again, err := svc.AcceptTerms(created.ID)
	assert.ErrorIs(t, err, ErrTermsAccepted)
	require.NotNil(t, again.AcceptedTermsAt)
	assert.Equal(t, first, *again.AcceptedTermsAt, "acceptance time never changes")
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	u := User{ID: 7, Email: "a@b.c", Role: RoleAdmin}

	token, err := NewToken(u, secret)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
