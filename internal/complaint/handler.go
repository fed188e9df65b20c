package complaint

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/declutterhub/marketplace-backend/internal/order"
	"github.com/declutterhub/marketplace-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/complaints", h.file)
}

type fileRequest struct {
	OrderID     int      `json:"orderId"`
	Reasons     []string `json:"reasons"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

func (h *Handler) file(c *fiber.Ctx) error {
	buyerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	var req fileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.OrderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "orderId is required"})
	}

	filed, err := h.service.File(req.OrderID, buyerID, req.Reasons, req.Description, req.Images)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		case errors.Is(err, order.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "You can only complain about your own orders"})
		case errors.Is(err, order.ErrInvalidTransition):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "This order cannot be disputed"})
		case errors.Is(err, ErrEmptyComplaint):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to file complaint"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(filed)
}
