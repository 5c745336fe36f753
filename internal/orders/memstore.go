package orders

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemStore keeps orders in memory behind a mutex. Used in tests and for
// running the service without Postgres.
type MemStore struct {
	mu       sync.RWMutex
	byNumber map[string]Order
	numbers  []string // insertion order, for List
}

func NewMemStore() *MemStore {
	return &MemStore{byNumber: make(map[string]Order)}
}

func (s *MemStore) Insert(_ context.Context, o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	s.byNumber[o.OrderNumber] = cloneOrder(*o)
	s.numbers = append(s.numbers, o.OrderNumber)
	return nil
}

func (s *MemStore) GetByNumber(_ context.Context, orderNumber string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.byNumber[orderNumber]
	if !ok {
		return Order{}, ErrNotFound
	}
	return cloneOrder(o), nil
}

func (s *MemStore) List(_ context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, 0, len(s.numbers))
	for _, n := range s.numbers {
		out = append(out, cloneOrder(s.byNumber[n]))
	}
	return out, nil
}

func (s *MemStore) DeleteByNumber(_ context.Context, orderNumber string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.byNumber[orderNumber]
	if !ok {
		return Order{}, ErrNotFound
	}
	delete(s.byNumber, orderNumber)
	for i, n := range s.numbers {
		if n == orderNumber {
			s.numbers = append(s.numbers[:i], s.numbers[i+1:]...)
			break
		}
	}
	return cloneOrder(o), nil
}

func cloneOrder(o Order) Order {
	items := make([]LineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
