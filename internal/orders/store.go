package orders

import "context"

// Store is the durable order boundary. Implementations must make Insert
// atomic per order: all line items land or none do. The client-facing lookup
// key is the order number, not the internal ID.
type Store interface {
	Insert(ctx context.Context, o *Order) error
	GetByNumber(ctx context.Context, orderNumber string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	DeleteByNumber(ctx context.Context, orderNumber string) (Order, error)
}
