package redisx

import "time"

const (
	// Cached GET response per order: order:{order_number} -> order JSON.
	// Orders are immutable once stored, so the only invalidation needed is
	// on cancel.
	KeyOrderByNumber = "order:%s"
)

var TTLOrderCache = 5 * time.Minute
