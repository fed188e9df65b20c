package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/declutterhub/marketplace-backend/internal/user"
)

// Handler delegates product operations to the product service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.listProducts)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/products", h.createProduct)
	app.Put("/api/products/:id", h.updateProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	f := Filter{
		Search:    c.Query("search"),
		Location:  c.Query("location"),
		Condition: c.Query("condition"),
	}
	products, err := h.service.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	p, err := h.service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(p)
}

// Numeric fields are pointers so a partial update can tell "absent" apart
// from an explicit zero (free listing, zeroed-out quantity).
type productRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price"`
	DeliveryFee     *float64 `json:"deliveryFee"`
	Condition       string   `json:"condition"`
	ConditionRating *int     `json:"conditionRating"`
	Images          []string `json:"images"`
	LocationState   string   `json:"locationState"`
	Type            string   `json:"type"`
	Quantity        *int     `json:"quantity"`
	Active          *bool    `json:"active"`
	OutOfStock      *bool    `json:"outOfStock"`
}

func (p *productRequest) validPrices() bool {
	if p.Price != nil && *p.Price < 0 {
		return false
	}
	if p.DeliveryFee != nil && *p.DeliveryFee < 0 {
		return false
	}
	return true
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	sellerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}
	if !payload.validPrices() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "prices must be non-negative"})
	}

	p := Product{
		Name:          payload.Name,
		Description:   payload.Description,
		Condition:     payload.Condition,
		Images:        payload.Images,
		LocationState: payload.LocationState,
		Type:          payload.Type,
	}
	if payload.Price != nil {
		p.Price = *payload.Price
	}
	if payload.DeliveryFee != nil {
		p.DeliveryFee = *payload.DeliveryFee
	}
	if payload.ConditionRating != nil {
		p.ConditionRating = *payload.ConditionRating
	}
	if payload.Quantity != nil {
		p.Quantity = *payload.Quantity
	}

	created, err := h.service.Create(p, sellerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	sellerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	existing, err := h.service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !payload.validPrices() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "prices must be non-negative"})
	}
	if payload.Name != "" {
		existing.Name = payload.Name
	}
	if payload.Description != "" {
		existing.Description = payload.Description
	}
	if payload.Price != nil {
		existing.Price = *payload.Price
	}
	if payload.DeliveryFee != nil {
		existing.DeliveryFee = *payload.DeliveryFee
	}
	if payload.Condition != "" {
		existing.Condition = payload.Condition
	}
	if payload.ConditionRating != nil {
		existing.ConditionRating = *payload.ConditionRating
	}
	if len(payload.Images) > 0 {
		existing.Images = payload.Images
	}
	if payload.LocationState != "" {
		existing.LocationState = payload.LocationState
	}
	if payload.Quantity != nil {
		existing.Quantity = *payload.Quantity
	}
	if payload.Active != nil {
		existing.Active = *payload.Active
	}
	if payload.OutOfStock != nil {
		existing.OutOfStock = *payload.OutOfStock
	}

	updated, err := h.service.Update(id, existing, sellerID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "you can only edit your own listings"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}
