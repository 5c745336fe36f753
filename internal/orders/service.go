package orders

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// StockChecker is the guarded inventory dependency: one batched lookup per
// placement attempt. An error means the dependency is unavailable, never that
// items are out of stock.
type StockChecker interface {
	CheckStock(ctx context.Context, skuCodes []string) (map[string]int, error)
}

// Service runs the placement flow end to end and fronts the store for reads
// and cancellation.
type Service struct {
	Store Store
	Stock StockChecker
}

// PlaceOrder builds the aggregate, checks stock for every distinct SKU in one
// round trip, and persists only on acceptance. A crash before the store write
// leaves no trace. Stock-check failure surfaces as ErrInventoryUnavailable,
// distinct from a Rejected decision.
func (s *Service) PlaceOrder(ctx context.Context, items []LineItemInput) (Decision, error) {
	order, err := NewOrder(items)
	if err != nil {
		return Decision{}, err
	}

	requested := order.RequestedQuantities()
	skus := make([]string, 0, len(requested))
	for sku := range requested {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	available, err := s.Stock.CheckStock(ctx, skus)
	if err != nil {
		log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("inventory lookup failed")
		return Decision{}, fmt.Errorf("%w: %v", ErrInventoryUnavailable, err)
	}

	if oos := Evaluate(requested, available); len(oos) > 0 {
		log.Info().Str("order_number", order.OrderNumber).Int("out_of_stock", len(oos)).Msg("order rejected")
		return Decision{OutOfStock: oos}, nil
	}

	if err := s.Store.Insert(ctx, &order); err != nil {
		return Decision{}, err
	}
	log.Info().Str("order_number", order.OrderNumber).Int("items", len(order.Items)).Msg("order created")
	return Decision{Accepted: true, Order: order}, nil
}

// GetAllOrders returns every stored order; no orders is an empty list, not an
// error.
func (s *Service) GetAllOrders(ctx context.Context) ([]Order, error) {
	return s.Store.List(ctx)
}

func (s *Service) GetOrder(ctx context.Context, orderNumber string) (Order, error) {
	return s.Store.GetByNumber(ctx, orderNumber)
}

// CancelOrder deletes the order and returns what was deleted, or ErrNotFound.
func (s *Service) CancelOrder(ctx context.Context, orderNumber string) (Order, error) {
	o, err := s.Store.DeleteByNumber(ctx, orderNumber)
	if err != nil {
		return Order{}, err
	}
	log.Info().Str("order_number", orderNumber).Msg("order cancelled")
	return o, nil
}
