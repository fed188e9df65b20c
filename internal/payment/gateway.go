package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// InitializeParams is what the gateway needs to start a transaction.
type InitializeParams struct {
	Reference   string
	Email       string
	Amount      float64
	CallbackURL string
}

// Verification is the gateway's answer for a reference.
type Verification struct {
	Verified bool
	Message  string
}

// Gateway abstracts the external payment provider. The real provider is
// Paystack-shaped; the mock settles everything locally for development.
type Gateway interface {
	Initialize(ctx context.Context, p InitializeParams) (authorizationURL string, err error)
	Verify(ctx context.Context, reference string) (Verification, error)
}

// PaystackGateway talks to a Paystack-style REST API. Amounts are sent in
// subunits (kobo).
type PaystackGateway struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewPaystackGateway(baseURL, secretKey string) *PaystackGateway {
	return &PaystackGateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type paystackInitRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url"`
}

type paystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status string `json:"status"`
	} `json:"data"`
}

func (g *PaystackGateway) Initialize(ctx context.Context, p InitializeParams) (string, error) {
	body, err := json.Marshal(paystackInitRequest{
		Email:       p.Email,
		Amount:      int64(p.Amount * 100),
		Reference:   p.Reference,
		CallbackURL: p.CallbackURL,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/transaction/initialize", strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var result paystackInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !result.Status {
		return "", fmt.Errorf("gateway initialize failed: %s", result.Message)
	}
	return result.Data.AuthorizationURL, nil
}

func (g *PaystackGateway) Verify(ctx context.Context, reference string) (Verification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return Verification{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Verification{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var result paystackVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Verification{}, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !result.Status {
		return Verification{}, fmt.Errorf("gateway verify failed: %s", result.Message)
	}
	return Verification{
		Verified: result.Data.Status == "success",
		Message:  result.Message,
	}, nil
}

// MockGateway stands in for the provider in local development. Its
// authorization URL points at the front end's mock payment page, which waits
// briefly and then calls back into verify.
type MockGateway struct {
	frontendURL string
}

func NewMockGateway(frontendURL string) *MockGateway {
	return &MockGateway{frontendURL: strings.TrimRight(frontendURL, "/")}
}

func (g *MockGateway) Initialize(_ context.Context, p InitializeParams) (string, error) {
	return g.frontendURL + "/mock/pay/" + p.Reference, nil
}

func (g *MockGateway) Verify(context.Context, string) (Verification, error) {
	return Verification{Verified: true, Message: "mock settlement"}, nil
}
