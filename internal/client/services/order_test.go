package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akarpovs/sportactive/internal/client/models"
)

type fakeOrderAPI struct {
	order *models.Order

	payCalls    int
	cancelCalls int
	refundCalls int
}

func (f *fakeOrderAPI) CreateOrder(ctx context.Context, order models.NewOrder) (*models.Order, error) {
	return &models.Order{OrderNumber: "ORD-1", ActivityID: order.ActivityID, Status: models.OrderStatusPending}, nil
}

func (f *fakeOrderAPI) MyOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return []models.Order{*f.order}, nil
}

func (f *fakeOrderAPI) GetOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	return f.order, nil
}

func (f *fakeOrderAPI) PayOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	f.payCalls++
	o := *f.order
	o.Status = models.OrderStatusPaid
	return &o, nil
}

func (f *fakeOrderAPI) CancelOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	f.cancelCalls++
	o := *f.order
	o.Status = models.OrderStatusCancelled
	return &o, nil
}

func (f *fakeOrderAPI) RefundOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	f.refundCalls++
	o := *f.order
	o.Status = models.OrderStatusRefunded
	return &o, nil
}

func (f *fakeOrderAPI) OrderStats(ctx context.Context) (*models.OrderStats, error) {
	return &models.OrderStats{TotalOrders: 1}, nil
}

func TestOrderService_PayGating(t *testing.T) {
	t.Run("pending order is paid", func(t *testing.T) {
		api := &fakeOrderAPI{order: &models.Order{OrderNumber: "ORD-1", Status: models.OrderStatusPending}}
		svc := NewOrderService(api)
		o, err := svc.Pay(context.Background(), "ORD-1")
		require.NoError(t, err)
		require.Equal(t, models.OrderStatusPaid, o.Status)
		require.Equal(t, 1, api.payCalls)
	})

	t.Run("paid order cannot be paid again", func(t *testing.T) {
		api := &fakeOrderAPI{order: &models.Order{OrderNumber: "ORD-1", Status: models.OrderStatusPaid}}
		svc := NewOrderService(api)
		_, err := svc.Pay(context.Background(), "ORD-1")
		require.ErrorIs(t, err, ErrOrderNotPayable)
		require.Zero(t, api.payCalls)
	})
}

func TestOrderService_CancelGating(t *testing.T) {
	api := &fakeOrderAPI{order: &models.Order{OrderNumber: "ORD-1", Status: models.OrderStatusRefunded}}
	svc := NewOrderService(api)
	_, err := svc.Cancel(context.Background(), "ORD-1")
	require.ErrorIs(t, err, ErrOrderNotCancelable)
	require.Zero(t, api.cancelCalls)
}

func TestOrderService_RefundGating(t *testing.T) {
	t.Run("paid order is refunded", func(t *testing.T) {
		api := &fakeOrderAPI{order: &models.Order{OrderNumber: "ORD-1", Status: models.OrderStatusPaid}}
		svc := NewOrderService(api)
		o, err := svc.Refund(context.Background(), "ORD-1")
		require.NoError(t, err)
		require.Equal(t, models.OrderStatusRefunded, o.Status)
	})

	t.Run("pending order cannot be refunded", func(t *testing.T) {
		api := &fakeOrderAPI{order: &models.Order{OrderNumber: "ORD-1", Status: models.OrderStatusPending}}
		svc := NewOrderService(api)
		_, err := svc.Refund(context.Background(), "ORD-1")
		require.ErrorIs(t, err, ErrOrderNotRefundable)
		require.Zero(t, api.refundCalls)
	})
}

func TestOrderService_CreateRequiresActivity(t *testing.T) {
	svc := NewOrderService(&fakeOrderAPI{})
	_, err := svc.Create(context.Background(), models.NewOrder{})
	require.Error(t, err)

	o, err := svc.Create(context.Background(), models.NewOrder{ActivityID: 7, Amount: 25})
	require.NoError(t, err)
	require.Equal(t, "ORD-1", o.OrderNumber)
}
