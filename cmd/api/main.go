package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/declutterhub/marketplace-backend/internal/cart"
	"github.com/declutterhub/marketplace-backend/internal/complaint"
	"github.com/declutterhub/marketplace-backend/internal/config"
	"github.com/declutterhub/marketplace-backend/internal/order"
	"github.com/declutterhub/marketplace-backend/internal/payment"
	"github.com/declutterhub/marketplace-backend/internal/product"
	"github.com/declutterhub/marketplace-backend/internal/seller"
	"github.com/declutterhub/marketplace-backend/internal/user"
	"github.com/declutterhub/marketplace-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService, []byte(cfg.JWTSecret))

	productService := product.NewService(product.NewPostgresRepository(db), userRepo)
	productHandler := product.NewHandler(productService)

	orderService := order.NewService(order.NewPostgresRepository(db))
	orderHandler := order.NewHandler(orderService)

	paymentService := payment.NewService(orderService, productService, userRepo, pickGateway(cfg))
	paymentHandler := payment.NewHandler(paymentService)

	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(db), productService))
	wishlistHandler := wishlist.NewHandler(wishlist.NewService(wishlist.NewPostgresRepository(db), productService))
	sellerHandler := seller.NewHandler(seller.NewService(orderService, productService))
	complaintHandler := complaint.NewHandler(complaint.NewService(complaint.NewPostgresRepository(db), orderService))

	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	// the verify callback arrives from the gateway redirect without a token
	paymentHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// browsing and the payment return leg stay public
		Filter: func(c *fiber.Ctx) bool {
			if c.Method() != fiber.MethodGet {
				return false
			}
			p := c.Path()
			return strings.HasPrefix(p, "/api/products") ||
				strings.HasPrefix(p, "/api/payments/verify/")
		},
	}))

	userHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	paymentHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	sellerHandler.RegisterProtectedRoutes(app)
	complaintHandler.RegisterProtectedRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

// pickGateway uses Paystack when a secret key is configured and the local
// mock otherwise, so the checkout flow works end to end in development.
func pickGateway(cfg config.Config) payment.Gateway {
	if cfg.PaystackSecretKey != "" {
		return payment.NewPaystackGateway(cfg.PaystackBaseURL, cfg.PaystackSecretKey)
	}
	fmt.Println("PAYSTACK_SECRET_KEY is not set, using the mock payment gateway")
	return payment.NewMockGateway(cfg.FrontendURL)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%v)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT,
			whatsapp TEXT,
			house_address TEXT,
			substitute_address TEXT,
			bank_account_number TEXT,
			bank_name TEXT,
			role TEXT NOT NULL DEFAULT 'regular',
			accepted_terms_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC NOT NULL DEFAULT 0,
			delivery_fee NUMERIC NOT NULL DEFAULT 0,
			condition TEXT,
			condition_rating INT NOT NULL DEFAULT 0,
			images TEXT[] NOT NULL DEFAULT '{}',
			location_state TEXT,
			type TEXT,
			quantity INT NOT NULL DEFAULT 0,
			out_of_stock BOOLEAN NOT NULL DEFAULT FALSE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			is_disabled BOOLEAN NOT NULL DEFAULT FALSE,
			seller_id INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			reference TEXT NOT NULL UNIQUE,
			product_id INT NOT NULL,
			buyer_id INT NOT NULL,
			seller_id INT NOT NULL,
			price NUMERIC NOT NULL DEFAULT 0,
			delivery_fee NUMERIC NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			satisfaction TEXT NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMPTZ NOT NULL,
			delivered_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			cart_item_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist_items (
			wishlist_item_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS complaints (
			complaint_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL,
			buyer_id INT NOT NULL,
			reasons TEXT[] NOT NULL DEFAULT '{}',
			description TEXT,
			images TEXT[] NOT NULL DEFAULT '{}',
			status TEXT NOT NULL DEFAULT 'OPEN',
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
