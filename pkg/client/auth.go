package client

import "context"

// Login authenticates and stores the returned token. The profile is cached
// so checkout can guard against self-purchase without an extra round trip.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]string{"email": email, "password": password}
	var raw map[string]interface{}
	if err := c.post(ctx, "/api/auth/login", body, &raw); err != nil {
		return User{}, err
	}
	return c.adoptSession(raw)
}

// SignupParams is the registration payload. The wire contract is snake_case.
type SignupParams struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	FullName          string `json:"full_name"`
	Whatsapp          string `json:"whatsapp"`
	HouseAddress      string `json:"house_address"`
	SubstituteAddress string `json:"substitute_address"`
	BankAccount       string `json:"bank_account_number"`
	BankName          string `json:"bank_name"`
}

// Signup registers a new account and stores the returned token.
func (c *Client) Signup(ctx context.Context, params SignupParams) (User, error) {
	var raw map[string]interface{}
	if err := c.post(ctx, "/api/auth/signup", params, &raw); err != nil {
		return User{}, err
	}
	return c.adoptSession(raw)
}

// Me fetches the signed-in profile and refreshes the cached copy.
func (c *Client) Me(ctx context.Context) (User, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, "/api/users/me", &raw); err != nil {
		return User{}, err
	}
	u := mapUser(raw)
	c.setUser(&u)
	return u, nil
}

// AcceptTerms records acceptance of the marketplace terms. Re-accepting is a
// backend 400 and surfaces as an APIError.
func (c *Client) AcceptTerms(ctx context.Context) (User, error) {
	var raw map[string]interface{}
	if err := c.post(ctx, "/api/auth/accept-terms", nil, &raw); err != nil {
		return User{}, err
	}
	return mapUser(raw), nil
}

// UpdateProfile sends a partial profile update; nil fields stay untouched.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]interface{}) (User, error) {
	var raw map[string]interface{}
	if err := c.put(ctx, "/api/users/me", fields, &raw); err != nil {
		return User{}, err
	}
	u := mapUser(raw)
	c.setUser(&u)
	return u, nil
}

func (c *Client) adoptSession(raw map[string]interface{}) (User, error) {
	if token := pickString(raw, "token"); token != "" {
		c.tokens.SetToken(token)
	}
	userRaw, _ := raw["user"].(map[string]interface{})
	u := mapUser(userRaw)
	c.setUser(&u)
	return u, nil
}
