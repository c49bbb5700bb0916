package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpovs/sportactive/internal/client/services"
)

func (a *App) enroll(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	reg, err := a.registrations.Enroll(ctx, id)
	if err != nil {
		if isEnrollmentGated(err) {
			fmt.Fprintln(a.out, "Cannot enroll:", err)
		} else {
			fmt.Fprintln(a.out, "Error:", err)
		}
		return
	}
	fmt.Fprintf(a.out, "Enrolled! Registration #%d\n", reg.ID)
}

func isEnrollmentGated(err error) bool {
	for _, gate := range []error{
		services.ErrActivityCancelled,
		services.ErrActivityEnded,
		services.ErrRegistrationClosed,
		services.ErrActivityFull,
		services.ErrAlreadyRegistered,
	} {
		if errors.Is(err, gate) {
			return true
		}
	}
	return false
}

func (a *App) withdraw(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	if err := a.registrations.CancelByActivity(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Withdrawn from activity #%d\n", id)
}

func (a *App) myRegistrations(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	regs, err := a.registrations.Mine(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(regs) == 0 {
		fmt.Fprintln(a.out, "No registrations")
		return
	}
	now := time.Now()
	fmt.Fprintln(a.out, "Your registrations:")
	for _, reg := range regs {
		if reg.Activity != nil {
			a.printActivityRow(reg.Activity, now)
		} else {
			fmt.Fprintf(a.out, "  registration #%d for activity #%d (%s)\n",
				reg.ID, reg.ActivityID, formatTime(reg.CreatedAt))
		}
	}
}
