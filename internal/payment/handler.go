package payment

import (
	"github.com/gofiber/fiber/v2"

	"github.com/declutterhub/marketplace-backend/internal/order"
	"github.com/declutterhub/marketplace-backend/internal/product"
	"github.com/declutterhub/marketplace-backend/internal/user"
)

// Handler exposes checkout initiation and payment verification.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// Verification is keyed by an unguessable reference and must work on the
// return leg from the gateway, so it stays public.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/payments/verify/:reference", h.verify)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/payments/initialize", h.initialize)
}

type initializeRequest struct {
	ProductID   int    `json:"productId"`
	CallbackURL string `json:"callbackUrl"`
}

func (h *Handler) initialize(c *fiber.Ctx) error {
	buyerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(initializeRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	result, err := h.service.Initialize(c.Context(), buyerID, payload.ProductID, payload.CallbackURL)
	if err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrOwnListing:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrOwnListing.Error()})
		case product.ErrUnavailable:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": product.ErrUnavailable.Error()})
		case user.ErrNotFound:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(result)
}

func (h *Handler) verify(c *fiber.Ctx) error {
	reference := c.Params("reference")
	if reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing payment reference"})
	}

	result, err := h.service.Verify(c.Context(), reference)
	if err != nil {
		switch err {
		case order.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "payment reference not found"})
		case order.ErrAlreadyVerified:
			// duplicate verification attempt: a 400 whose message says
			// "already" so clients can remap it to success
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "payment already verified"})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(result)
}
