package order

import (
	"context"
	"fmt"
)

type OrderService struct {
	orderRepo OrderRepo
}

func NewOrderService(orderRepo OrderRepo) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (Order, error) {
	o, err := s.orderRepo.GetOrder(ctx, id)
	if err != nil {
		return Order{}, fmt.Errorf("get order: %w", err)
	}
	return *o, nil
}

// GetOrderDetails reads the order and its documents from one snapshot.
func (s *OrderService) GetOrderDetails(ctx context.Context, id string) (Details, error) {
	var details Details
	err := s.orderRepo.InTransaction(ctx, func(tx TxOrderRepo) error {
		o, err := tx.GetOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		details.Order = *o

		if details.Invoices, err = tx.ListInvoices(ctx, id); err != nil {
			return fmt.Errorf("list invoices: %w", err)
		}
		if details.CreditMemos, err = tx.ListCreditMemos(ctx, id); err != nil {
			return fmt.Errorf("list credit memos: %w", err)
		}
		if details.Authorizations, err = tx.ListAuthorizations(ctx, id); err != nil {
			return fmt.Errorf("list authorizations: %w", err)
		}
		if details.Notes, err = tx.ListNotes(ctx, id); err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		return nil
	})
	if err != nil {
		return Details{}, err
	}
	return details, nil
}
