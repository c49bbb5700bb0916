package models

import "time"

// OrderStatus is the server-set order state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// Order is a payment order for an activity registration.
type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	ActivityID  int64       `json:"activityId"`
	UserID      int64       `json:"userId"`
	Status      OrderStatus `json:"status"`
	Amount      float64     `json:"amount"`
	FinalAmount float64     `json:"finalAmount,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	PaidAt      *time.Time  `json:"paidAt,omitempty"`
	RefundedAt  *time.Time  `json:"refundedAt,omitempty"`
	Activity    *Activity   `json:"activity,omitempty"`
}

// Payable reports whether the order can be paid: only pending orders.
func (o *Order) Payable() bool { return o.Status == OrderStatusPending }

// Cancellable reports whether the order can be cancelled: only pending orders.
func (o *Order) Cancellable() bool { return o.Status == OrderStatusPending }

// Refundable reports whether a refund can be requested: only paid orders.
func (o *Order) Refundable() bool { return o.Status == OrderStatusPaid }

// NewOrder is the order creation payload.
type NewOrder struct {
	ActivityID int64   `json:"activityId"`
	Amount     float64 `json:"amount"`
}

// OrderStats is the per-user order summary.
type OrderStats struct {
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	PaidOrders     int     `json:"paidOrders"`
	TotalAmount    float64 `json:"totalAmount"`
	RefundedAmount float64 `json:"refundedAmount"`
}
