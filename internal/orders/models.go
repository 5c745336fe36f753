package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate built on each placement attempt. It only becomes
// durable once the stock check accepts it; there is no update path, and
// cancellation deletes it outright.
type Order struct {
	ID          string     `json:"id"`
	OrderNumber string     `json:"order_number"`
	Items       []LineItem `json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LineItem struct {
	SkuCode  string          `json:"sku_code"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// LineItemInput is what the request boundary hands us per requested item.
type LineItemInput struct {
	SkuCode  string          `json:"sku_code"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OutOfStockItem reports one SKU whose available stock could not cover the
// requested quantity. Never persisted.
type OutOfStockItem struct {
	SkuCode   string `json:"sku_code"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// Decision is the outcome of a placement attempt. Accepted carries the stored
// order; a rejection carries the out-of-stock detail instead.
type Decision struct {
	Accepted   bool
	Order      Order
	OutOfStock []OutOfStockItem
}

// RequestedQuantities flattens the order's line items into a SKU -> quantity
// map. A SKU appearing in multiple line items sums its quantities, so the
// stock check sees the full amount the order needs.
func (o Order) RequestedQuantities() map[string]int {
	m := make(map[string]int, len(o.Items))
	for _, it := range o.Items {
		m[it.SkuCode] += it.Quantity
	}
	return m
}
