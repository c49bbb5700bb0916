package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpovs/sportactive/internal/client/models"
)

// Order transition gating errors, raised before the remote call.
var (
	ErrOrderNotPayable    = errors.New("only a pending order can be paid")
	ErrOrderNotCancelable = errors.New("only a pending order can be cancelled")
	ErrOrderNotRefundable = errors.New("only a paid order can be refunded")
)

// OrderAPI is the slice of the backend client the order service uses.
type OrderAPI interface {
	CreateOrder(ctx context.Context, order models.NewOrder) (*models.Order, error)
	MyOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	PayOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	CancelOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	RefundOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	OrderStats(ctx context.Context) (*models.OrderStats, error)
}

type OrderService struct {
	api OrderAPI
}

func NewOrderService(api OrderAPI) *OrderService {
	return &OrderService{api: api}
}

func (s *OrderService) Create(ctx context.Context, order models.NewOrder) (*models.Order, error) {
	if order.ActivityID == 0 {
		return nil, fmt.Errorf("activity id is required")
	}
	return s.api.CreateOrder(ctx, order)
}

// Mine lists the current user's orders, optionally filtered by status.
func (s *OrderService) Mine(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return s.api.MyOrders(ctx, status)
}

func (s *OrderService) Get(ctx context.Context, orderNumber string) (*models.Order, error) {
	return s.api.GetOrder(ctx, orderNumber)
}

// Pay pays a pending order. The current status is checked first so an
// obviously invalid transition never reaches the backend.
func (s *OrderService) Pay(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.api.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if !order.Payable() {
		return nil, fmt.Errorf("order %s is %s: %w", orderNumber, order.Status, ErrOrderNotPayable)
	}
	return s.api.PayOrder(ctx, orderNumber)
}

// Cancel cancels a pending order.
func (s *OrderService) Cancel(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.api.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if !order.Cancellable() {
		return nil, fmt.Errorf("order %s is %s: %w", orderNumber, order.Status, ErrOrderNotCancelable)
	}
	return s.api.CancelOrder(ctx, orderNumber)
}

// Refund requests a refund for a paid order.
func (s *OrderService) Refund(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.api.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if !order.Refundable() {
		return nil, fmt.Errorf("order %s is %s: %w", orderNumber, order.Status, ErrOrderNotRefundable)
	}
	return s.api.RefundOrder(ctx, orderNumber)
}

func (s *OrderService) Stats(ctx context.Context) (*models.OrderStats, error) {
	return s.api.OrderStats(ctx)
}
