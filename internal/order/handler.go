package order

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/declutterhub/marketplace-backend/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/orders/my", h.myOrders)
	app.Get("/api/orders", h.allOrders)
	app.Put("/api/orders/:id/status", h.updateStatus)
	app.Post("/api/orders/:id/confirm_received", h.confirmReceived)
	app.Post("/api/orders/:id/confirm_satisfied", h.confirmSatisfied)
}

func (h *Handler) myOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orders, err := h.service.ListForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

// allOrders is the admin table; regular users only ever see their own.
func (h *Handler) allOrders(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if user.GetRoleFromCtx(c) != user.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	orders, err := h.service.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}
	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	target, ok := ParseStatus(strings.ToUpper(strings.TrimSpace(payload.Status)))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown status"})
	}

	ord, err := h.service.UpdateStatus(orderID, userID, target)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(ord)
}

func (h *Handler) confirmReceived(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}
	ord, err := h.service.ConfirmReceived(orderID, userID)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(ord)
}

func (h *Handler) confirmSatisfied(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}
	ord, err := h.service.ConfirmSatisfied(orderID, userID)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(ord)
}

// orderError maps service errors onto HTTP statuses. A rejected transition
// never mutates state, so the client just shows the message.
func orderError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	case ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "you are not allowed to update this order"})
	case ErrInvalidTransition:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
