package cli

import (
	"context"
	"fmt"

	"github.com/akarpovs/sportactive/internal/client/models"
)

func (a *App) createOrder(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	activityID, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	act, err := a.activities.Get(ctx, activityID)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	order, err := a.orders.Create(ctx, models.NewOrder{ActivityID: activityID, Amount: act.Price})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Order %s created, amount %.2f. Use 'pay %s' to pay.\n",
		order.OrderNumber, order.Amount, order.OrderNumber)
}

func (a *App) myOrders(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	var status models.OrderStatus
	if len(args) > 0 {
		status = models.OrderStatus(args[0])
	}

	orders, err := a.orders.Mine(ctx, status)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders")
		return
	}

	fmt.Fprintln(a.out, "Your orders:")
	for _, o := range orders {
		title := ""
		if o.Activity != nil {
			title = " " + o.Activity.Title
		}
		fmt.Fprintf(a.out, "  %s | %s | %.2f |%s created %s\n",
			o.OrderNumber, o.Status, o.Amount, title, formatTime(o.CreatedAt))
	}
}

func (a *App) payOrder(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(a.out, "order number is required")
		return
	}
	order, err := a.orders.Pay(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Order %s paid\n", order.OrderNumber)
}

func (a *App) cancelOrder(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(a.out, "order number is required")
		return
	}
	order, err := a.orders.Cancel(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Order %s cancelled\n", order.OrderNumber)
}

func (a *App) refundOrder(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(a.out, "order number is required")
		return
	}
	order, err := a.orders.Refund(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Order %s refunded\n", order.OrderNumber)
}

func (a *App) orderStats(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	stats, err := a.orders.Stats(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Orders total: %d (pending %d, paid %d)\n",
		stats.TotalOrders, stats.PendingOrders, stats.PaidOrders)
	fmt.Fprintf(a.out, "Amount spent: %.2f, refunded: %.2f\n",
		stats.TotalAmount, stats.RefundedAmount)
}
