package seller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/declutterhub/marketplace-backend/internal/user"
)

// Handler exposes the seller dashboard endpoints.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/seller/stats", h.stats)
	app.Get("/api/seller/sales/summary", h.salesSummary)
}

func (h *Handler) stats(c *fiber.Ctx) error {
	sellerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	st, err := h.service.Stats(sellerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(st)
}

func (h *Handler) salesSummary(c *fiber.Ctx) error {
	sellerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	total, err := h.service.TotalSales(sellerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"total_sales": total})
}
