package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/akarpovs/sportactive/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func parseID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("id argument is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id: %s", args[0])
	}
	return id, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func displayStatusLabel(s models.DisplayStatus) string {
	switch s {
	case models.DisplayStatusOpen:
		return "open"
	case models.DisplayStatusInProgress:
		return "in progress"
	case models.DisplayStatusEnded:
		return "ended"
	case models.DisplayStatusCancelled:
		return "cancelled"
	}
	return string(s)
}

func (a *App) printActivityRow(act *models.Activity, now time.Time) {
	full := ""
	if act.IsFull() {
		full = " [full]"
	}
	fmt.Fprintf(a.out, "  #%d %s | %s | %s - %s | %d/%d%s | %.2f | %s\n",
		act.ID, act.Title, act.Category,
		formatTime(act.StartTime), formatTime(act.EndTime),
		act.CurrentParticipants, act.MaxParticipants, full,
		act.Price, displayStatusLabel(act.DisplayStatusAt(now)))
}

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return false
	}
	return true
}
