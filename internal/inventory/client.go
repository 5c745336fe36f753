// Package inventory is the outbound gateway to the inventory service.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// stockEntry mirrors the inventory service's response element.
type stockEntry struct {
	SkuCode string `json:"skuCode"`
	InStock int    `json:"inStock"`
}

// Client performs the raw HTTP lookup, one batched request for all SKUs.
// Resilience policies live in Checker, not here.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// CheckStock queries available stock for every given SKU in a single round
// trip: GET /api/inventory?skuCode=a&skuCode=b. SKUs the service does not
// report are simply absent from the result; the caller decides what absence
// means. Extra entries are kept but harmless.
func (c *Client) CheckStock(ctx context.Context, skuCodes []string) (map[string]int, error) {
	q := url.Values{}
	for _, sku := range skuCodes {
		q.Add("skuCode", sku)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/inventory?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inventory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inventory responded %d", resp.StatusCode)
	}

	var entries []stockEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode inventory response: %w", err)
	}

	stock := make(map[string]int, len(entries))
	for _, e := range entries {
		stock[e.SkuCode] = e.InStock
	}
	return stock, nil
}
