package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Register(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Password = string(hashed)
	if u.Role == "" {
		u.Role = RoleRegular
	}
	now := s.now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	return s.repo.Create(u)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) Update(id int, u User) (User, error) {
	u.UpdatedAt = s.now().UTC()
	return s.repo.Update(id, u)
}

// AcceptTerms stamps the acceptance time once. A second acceptance attempt
// is reported as ErrTermsAccepted so callers can refresh instead of failing.
func (s *Service) AcceptTerms(id int) (User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	if u.AcceptedTermsAt != nil {
		return u, ErrTermsAccepted
	}
	at := s.now().UTC()
	u.AcceptedTermsAt = &at
	u.UpdatedAt = at
	return s.repo.Update(id, u)
}
