package client

import (
	"context"
	"net/url"
	"strconv"
)

// ProductFilter narrows the listing query; empty fields are omitted.
type ProductFilter struct {
	Search    string
	Location  string
	Condition string
}

func (f ProductFilter) encode() string {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.Condition != "" {
		q.Set("condition", f.Condition)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Products lists available products, optionally filtered.
func (c *Client) Products(ctx context.Context, f ProductFilter) ([]Product, error) {
	var raws []map[string]interface{}
	if err := c.get(ctx, "/api/products"+f.encode(), &raws); err != nil {
		return nil, err
	}
	return mapProducts(raws), nil
}

// ProductByID fetches one listing.
func (c *Client) ProductByID(ctx context.Context, id int) (Product, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, "/api/products/"+strconv.Itoa(id), &raw); err != nil {
		return Product{}, err
	}
	return mapProduct(raw), nil
}
