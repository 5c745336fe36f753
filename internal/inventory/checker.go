package inventory

import (
	"context"

	"github.com/shopsmart/order-service/internal/resilience"
)

// Checker wraps Client with the retry/circuit-breaker/timeout policy stack
// for the "inventory" dependency. Exhausting the policies yields an error,
// never an empty stock map, so the caller cannot mistake an outage for "out
// of stock".
type Checker struct {
	client *Client
	runner *resilience.Runner[map[string]int]
}

func NewChecker(client *Client, cfg resilience.Config) *Checker {
	return &Checker{
		client: client,
		runner: resilience.NewRunner[map[string]int](cfg),
	}
}

func (c *Checker) CheckStock(ctx context.Context, skuCodes []string) (map[string]int, error) {
	return c.runner.Do(ctx, func(ctx context.Context) (map[string]int, error) {
		return c.client.CheckStock(ctx, skuCodes)
	})
}
