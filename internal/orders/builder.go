package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewOrder builds the in-memory aggregate for a placement attempt: a fresh
// order number plus one line item per input, in input order. Pure
// construction, no side effects; the store assigns the internal ID on insert.
func NewOrder(items []LineItemInput) (Order, error) {
	if len(items) == 0 {
		return Order{}, &ValidationError{Reason: "order has no items"}
	}

	lines := make([]LineItem, 0, len(items))
	for i, it := range items {
		if it.SkuCode == "" {
			return Order{}, &ValidationError{Reason: fmt.Sprintf("item %d: missing sku code", i)}
		}
		if it.Quantity <= 0 {
			return Order{}, &ValidationError{Reason: fmt.Sprintf("item %d (%s): quantity must be positive", i, it.SkuCode)}
		}
		if it.Price.IsNegative() {
			return Order{}, &ValidationError{Reason: fmt.Sprintf("item %d (%s): negative price", i, it.SkuCode)}
		}
		lines = append(lines, LineItem{SkuCode: it.SkuCode, Quantity: it.Quantity, Price: it.Price})
	}

	return Order{
		OrderNumber: uuid.NewString(),
		Items:       lines,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
