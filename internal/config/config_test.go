package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("PAYSTACK_BASE_URL", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Fatalf("unexpected default frontend url %q", cfg.FrontendURL)
	}
	if cfg.PaystackBaseURL != "https://api.paystack.co" {
		t.Fatalf("unexpected default paystack url %q", cfg.PaystackBaseURL)
	}
}

func TestLoadAddr(t *testing.T) {
	t.Setenv("ADDR", ":9090")

	if cfg := Load(); cfg.Addr != ":9090" {
		t.Fatalf("ADDR not picked up, got %q", cfg.Addr)
	}
}
