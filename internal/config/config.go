package config

import "os"

type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	FrontendURL       string
	PaystackSecretKey string
	PaystackBaseURL   string
}

func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	paystackBase := os.Getenv("PAYSTACK_BASE_URL")
	if paystackBase == "" {
		paystackBase = "https://api.paystack.co"
	}

	return Config{
		Addr:              addr,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		FrontendURL:       frontendURL,
		PaystackSecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		PaystackBaseURL:   paystackBase,
	}
}
