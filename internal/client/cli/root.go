package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if st := a.store.State(); st.Authenticated {
		s = st.User.Username + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: activities [page], show <id>, create, update <id>, delete <id>, mine,")
		fmt.Fprintln(a.out, "  enroll <id>, withdraw <id>, myregs, order <activityId>, orders [status], pay <n>,")
		fmt.Fprintln(a.out, "  cancelorder <n>, refund <n>, stats, comments <activityId>, comment <activityId>,")
		fmt.Fprintln(a.out, "  profile, update-profile, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, activities [page], show <id>, comments <activityId>, exit")
	}
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the sportactive CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "sa %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "profile":
			a.Profile(ctx)
		case "update-profile":
			a.UpdateProfile(ctx)
		case "activities", "list":
			a.listActivities(ctx, args)
		case "show":
			a.showActivity(ctx, args)
		case "create":
			a.createActivity(ctx)
		case "update":
			a.updateActivity(ctx, args)
		case "delete":
			a.deleteActivity(ctx, args)
		case "mine":
			a.myActivities(ctx)
		case "enroll":
			a.enroll(ctx, args)
		case "withdraw":
			a.withdraw(ctx, args)
		case "myregs":
			a.myRegistrations(ctx)
		case "order":
			a.createOrder(ctx, args)
		case "orders":
			a.myOrders(ctx, args)
		case "pay":
			a.payOrder(ctx, args)
		case "cancelorder":
			a.cancelOrder(ctx, args)
		case "refund":
			a.refundOrder(ctx, args)
		case "stats":
			a.orderStats(ctx)
		case "comments":
			a.listComments(ctx, args)
		case "comment":
			a.addComment(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
