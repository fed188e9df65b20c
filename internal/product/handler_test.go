package product

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/declutterhub/marketplace-backend/internal/user"
)

// makeApp injects a jwt.Token into locals when X-User-ID is set, so handler
// tests run without the full jwtware middleware.
func makeApp(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"user_id": id}})
			}
		}
		return c.Next()
	})
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestUpdateProductAcceptsZeroValues(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "desk", Price: 150, DeliveryFee: 20, Quantity: 3, Active: true, SellerID: 2},
	})
	app := makeApp(NewHandler(NewService(repo, user.NewInMemoryRepository(nil))))

	req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"price":0,"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "2")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	p, _ := repo.GetByID(1)
	if p.Price != 0 {
		t.Fatalf("price not zeroed: %v", p.Price)
	}
	if p.Quantity != 0 {
		t.Fatalf("quantity not zeroed: %v", p.Quantity)
	}
	if p.DeliveryFee != 20 || p.Name != "desk" {
		t.Fatalf("absent fields must stay untouched: %+v", p)
	}
}

func TestUpdateProductRejectsNegativePrice(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "desk", Price: 150, Active: true, SellerID: 2},
	})
	app := makeApp(NewHandler(NewService(repo, user.NewInMemoryRepository(nil))))

	req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"price":-5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "2")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	p, _ := repo.GetByID(1)
	if p.Price != 150 {
		t.Fatalf("rejected update must not mutate the listing: %+v", p)
	}
}

func TestCreateProductWithoutPrice(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeApp(NewHandler(NewService(repo, user.NewInMemoryRepository(nil))))

	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(`{"name":"giveaway chair"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "2")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	p, _ := repo.GetByID(1)
	if p.Price != 0 || p.Quantity != 1 {
		t.Fatalf("free single-unit listing expected, got %+v", p)
	}
}
