package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	o, err := NewOrder([]LineItemInput{
		item("iphone_15", 25, "250.00"),
		item("pixel_8", 12, "1245.00"),
	})
	require.NoError(t, err)
	require.NoError(t, s.Insert(ctx, &o))
	assert.NotEmpty(t, o.ID)

	got, err := s.GetByNumber(ctx, o.OrderNumber)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, o.Items, got.Items)
	assert.Equal(t, o.ID, got.ID)

	// reads are idempotent
	again, err := s.GetByNumber(ctx, o.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestMemStoreListEmpty(t *testing.T) {
	list, err := NewMemStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemStoreListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	var numbers []string
	for i := 0; i < 3; i++ {
		o, err := NewOrder([]LineItemInput{item("x", i+1, "1")})
		require.NoError(t, err)
		require.NoError(t, s.Insert(ctx, &o))
		numbers = append(numbers, o.OrderNumber)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, o := range list {
		assert.Equal(t, numbers[i], o.OrderNumber)
	}
}

func TestMemStoreDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	o, err := NewOrder([]LineItemInput{item("x", 1, "1")})
	require.NoError(t, err)
	require.NoError(t, s.Insert(ctx, &o))

	deleted, err := s.DeleteByNumber(ctx, o.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, o.OrderNumber, deleted.OrderNumber)
	assert.Equal(t, o.Items, deleted.Items)

	_, err = s.GetByNumber(ctx, o.OrderNumber)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.DeleteByNumber(ctx, o.OrderNumber)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreGetUnknown(t *testing.T) {
	_, err := NewMemStore().GetByNumber(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, ErrNotFound)
}
