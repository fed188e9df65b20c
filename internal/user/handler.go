package user

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes auth and profile endpoints.
type Handler struct {
	service   *Service
	jwtSecret []byte
}

func NewHandler(service *Service, jwtSecret []byte) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/auth/signup", h.signup)
	app.Post("/api/auth/login", h.login)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/users/me", h.me)
	app.Put("/api/users/me", h.updateMe)
	app.Post("/api/auth/accept-terms", h.acceptTerms)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupRequest mirrors the wire contract: the signup payload arrives in
// snake_case.
type signupRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	FullName          string `json:"full_name"`
	Whatsapp          string `json:"whatsapp"`
	HouseAddress      string `json:"house_address"`
	SubstituteAddress string `json:"substitute_address"`
	BankAccount       string `json:"bank_account_number"`
	BankName          string `json:"bank_name"`
}

func (r signupRequest) isMissingRequiredFields() bool {
	return r.Email == "" || r.Password == "" || r.FullName == ""
}

func (h *Handler) signup(c *fiber.Ctx) error {
	payload := new(signupRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.isMissingRequiredFields() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing required fields"})
	}

	created, err := h.service.Register(User{
		Email:             payload.Email,
		Password:          payload.Password,
		FullName:          payload.FullName,
		Whatsapp:          payload.Whatsapp,
		HouseAddress:      payload.HouseAddress,
		SubstituteAddress: payload.SubstituteAddress,
		BankAccount:       payload.BankAccount,
		BankName:          payload.BankName,
	})
	if err != nil {
		if err == ErrEmailExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	token, err := NewToken(created, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  sanitizeUser(created),
		"token": token,
	})
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	token, err := NewToken(u, h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    sanitizeUser(u),
		"token":   token,
	})
}

func (h *Handler) me(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	u, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}
	return c.JSON(sanitizeUser(u))
}

// profileUpdateRequest accepts partial payloads; absent fields are left
// untouched.
type profileUpdateRequest struct {
	FullName          *string `json:"fullName"`
	Whatsapp          *string `json:"whatsapp"`
	HouseAddress      *string `json:"houseAddress"`
	SubstituteAddress *string `json:"substituteAddress"`
	BankAccount       *string `json:"bankAccount"`
	BankName          *string `json:"bankName"`
}

func (h *Handler) updateMe(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	existing, err := h.service.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	var payload profileUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.FullName != nil {
		existing.FullName = *payload.FullName
	}
	if payload.Whatsapp != nil {
		existing.Whatsapp = *payload.Whatsapp
	}
	if payload.HouseAddress != nil {
		existing.HouseAddress = *payload.HouseAddress
	}
	if payload.SubstituteAddress != nil {
		existing.SubstituteAddress = *payload.SubstituteAddress
	}
	if payload.BankAccount != nil {
		existing.BankAccount = *payload.BankAccount
	}
	if payload.BankName != nil {
		existing.BankName = *payload.BankName
	}

	updated, err := h.service.Update(userID, existing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(sanitizeUser(updated))
}

func (h *Handler) acceptTerms(c *fiber.Ctx) error {
	userID, err := GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	u, err := h.service.AcceptTerms(userID)
	switch err {
	case nil:
		return c.JSON(sanitizeUser(u))
	case ErrTermsAccepted:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrTermsAccepted.Error()})
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
