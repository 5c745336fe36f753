package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateAllInStock(t *testing.T) {
	requested := map[string]int{"iphone_15": 25, "pixel_8": 12}
	available := map[string]int{"iphone_15": 30, "pixel_8": 12}

	assert.Empty(t, Evaluate(requested, available))
}

func TestEvaluateExactEqualityAccepts(t *testing.T) {
	requested := map[string]int{"pixel_8": 12}
	available := map[string]int{"pixel_8": 12}

	assert.Empty(t, Evaluate(requested, available))
}

func TestEvaluateInsufficientStock(t *testing.T) {
	requested := map[string]int{"iphone_15": 25, "pixel_8": 12}
	available := map[string]int{"iphone_15": 30, "pixel_8": 5}

	got := Evaluate(requested, available)
	assert.Equal(t, []OutOfStockItem{
		{SkuCode: "pixel_8", Requested: 12, Available: 5},
	}, got)
}

func TestEvaluateMissingSkuCountsAsZero(t *testing.T) {
	requested := map[string]int{"iphone_15": 2, "unknown_sku": 1}
	available := map[string]int{"iphone_15": 10}

	got := Evaluate(requested, available)
	assert.Equal(t, []OutOfStockItem{
		{SkuCode: "unknown_sku", Requested: 1, Available: 0},
	}, got)
}

func TestEvaluateDeterministicOrder(t *testing.T) {
	requested := map[string]int{"c": 5, "a": 5, "b": 5}
	available := map[string]int{}

	got := Evaluate(requested, available)
	assert.Equal(t, []OutOfStockItem{
		{SkuCode: "a", Requested: 5, Available: 0},
		{SkuCode: "b", Requested: 5, Available: 0},
		{SkuCode: "c", Requested: 5, Available: 0},
	}, got)
}

func TestEvaluateExtraInventoryEntriesIgnored(t *testing.T) {
	requested := map[string]int{"iphone_15": 1}
	available := map[string]int{"iphone_15": 2, "pixel_8": 0}

	assert.Empty(t, Evaluate(requested, available))
}
