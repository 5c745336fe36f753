package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(sku string, qty int, price string) LineItemInput {
	return LineItemInput{SkuCode: sku, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestNewOrderPreservesInputOrder(t *testing.T) {
	o, err := NewOrder([]LineItemInput{
		item("iphone_15", 25, "250.00"),
		item("pixel_8", 12, "1245.00"),
	})
	require.NoError(t, err)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "iphone_15", o.Items[0].SkuCode)
	assert.Equal(t, "pixel_8", o.Items[1].SkuCode)
	assert.True(t, o.Items[0].Price.Equal(decimal.RequireFromString("250.00")))
	assert.NotEmpty(t, o.OrderNumber)
	assert.Empty(t, o.ID, "internal ID is assigned by the store, not the builder")
}

func TestNewOrderFreshOrderNumbers(t *testing.T) {
	a, err := NewOrder([]LineItemInput{item("x", 1, "1")})
	require.NoError(t, err)
	b, err := NewOrder([]LineItemInput{item("x", 1, "1")})
	require.NoError(t, err)

	assert.NotEqual(t, a.OrderNumber, b.OrderNumber)
}

func TestNewOrderValidation(t *testing.T) {
	cases := []struct {
		name  string
		items []LineItemInput
	}{
		{"empty request", nil},
		{"zero quantity", []LineItemInput{item("x", 0, "1")}},
		{"negative quantity", []LineItemInput{item("x", -3, "1")}},
		{"missing sku", []LineItemInput{item("", 1, "1")}},
		{"negative price", []LineItemInput{item("x", 1, "-0.01")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrder(tc.items)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestRequestedQuantitiesSumsDuplicateSkus(t *testing.T) {
	o, err := NewOrder([]LineItemInput{
		item("iphone_15", 10, "250.00"),
		item("pixel_8", 1, "1245.00"),
		item("iphone_15", 5, "250.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"iphone_15": 15, "pixel_8": 1}, o.RequestedQuantities())
}
