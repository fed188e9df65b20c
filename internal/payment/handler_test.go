package payment

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/declutterhub/marketplace-backend/internal/product"
)

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

func TestInitializeEndpoint(t *testing.T) {
	f := newFixture(t, []product.Product{listing(1)})
	app := makeApp(NewHandler(f.svc))

	body := `{"productId":1,"callbackUrl":"https://shop.example/payment/callback"}`
	req := httptest.NewRequest("POST", "/api/payments/initialize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "authorization_url") {
		t.Fatalf("expected authorization_url in body: %s", string(b))
	}
}

func TestInitializeOwnListingIs400(t *testing.T) {
	f := newFixture(t, []product.Product{listing(1)})
	app := makeApp(NewHandler(f.svc))

	req := httptest.NewRequest("POST", "/api/payments/initialize", strings.NewReader(`{"productId":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "2")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestVerifyEndpointIdempotencyContract(t *testing.T) {
	f := newFixture(t, []product.Product{listing(1)})
	app := makeApp(NewHandler(f.svc))

	body := `{"productId":1}`
	req := httptest.NewRequest("POST", "/api/payments/initialize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("initialize failed with %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	ref := extractJSONString(t, string(b), "reference")

	// first verification succeeds, no token required on the return leg
	res1, err := app.Test(httptest.NewRequest("GET", "/api/payments/verify/"+ref, nil))
	if err != nil {
		t.Fatal(err)
	}
	if res1.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on first verify, got %d", res1.StatusCode)
	}
	b1, _ := io.ReadAll(res1.Body)
	if !strings.Contains(string(b1), `"success"`) {
		t.Fatalf("expected success status: %s", string(b1))
	}

	// reloading the callback page verifies again: a 400 whose message says
	// "already" so clients remap it to success
	res2, err := app.Test(httptest.NewRequest("GET", "/api/payments/verify/"+ref, nil))
	if err != nil {
		t.Fatal(err)
	}
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 on repeat verify, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "already") {
		t.Fatalf("repeat verify message must contain 'already': %s", string(b2))
	}
}

func TestVerifyUnknownReferenceIs404(t *testing.T) {
	f := newFixture(t, nil)
	app := makeApp(NewHandler(f.svc))

	res, err := app.Test(httptest.NewRequest("GET", "/api/payments/verify/nope", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func extractJSONString(t *testing.T, body, key string) string {
	t.Helper()
	marker := `"` + key + `":"`
	i := strings.Index(body, marker)
	if i < 0 {
		t.Fatalf("key %q not found in %s", key, body)
	}
	rest := body[i+len(marker):]
	j := strings.Index(rest, `"`)
	if j < 0 {
		t.Fatalf("unterminated value for %q in %s", key, body)
	}
	return rest[:j]
}
