package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/akarpovs/sportactive/internal/client/models"
)

func (a *App) listActivities(ctx context.Context, args []string) {
	params := models.ListActivitiesParams{Page: 1, Limit: 10}
	if len(args) > 0 {
		page, err := strconv.Atoi(args[0])
		if err != nil || page < 1 {
			fmt.Fprintln(a.out, "Invalid page:", args[0])
			return
		}
		params.Page = page
	}

	res, err := a.activities.List(ctx, params)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	if res.FromCache {
		fmt.Fprintln(a.out, "(offline: showing cached activities)")
	}
	if len(res.Activities) == 0 {
		fmt.Fprintln(a.out, "No activities found")
		return
	}

	now := time.Now()
	fmt.Fprintf(a.out, "Activities (page %d, %d total):\n", params.Page, res.Total)
	for i := range res.Activities {
		a.printActivityRow(&res.Activities[i], now)
	}
}

func (a *App) showActivity(ctx context.Context, args []string) {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	act, err := a.activities.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	now := time.Now()
	fmt.Fprintf(a.out, "#%d %s\n", act.ID, act.Title)
	fmt.Fprintf(a.out, "  %s\n", act.Description)
	fmt.Fprintf(a.out, "  Category:     %s\n", act.Category)
	fmt.Fprintf(a.out, "  Location:     %s\n", act.Location)
	fmt.Fprintf(a.out, "  When:         %s - %s\n", formatTime(act.StartTime), formatTime(act.EndTime))
	fmt.Fprintf(a.out, "  Participants: %d/%d\n", act.CurrentParticipants, act.MaxParticipants)
	fmt.Fprintf(a.out, "  Price:        %.2f\n", act.Price)
	fmt.Fprintf(a.out, "  Status:       %s\n", displayStatusLabel(act.DisplayStatusAt(now)))
	if act.RegistrationOpen(now) {
		fmt.Fprintln(a.out, "  Registration is open")
	}

	if stats, err := a.comments.RatingStats(ctx, id); err == nil && stats.CommentCount > 0 {
		fmt.Fprintf(a.out, "  Rating:       %.1f (%d comments)\n", stats.AverageRating, stats.CommentCount)
	}
}

func (a *App) promptNewActivity() (*models.NewActivity, error) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return nil, err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return nil, err
	}
	category, err := GetSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return nil, err
	}
	location, err := GetSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return nil, err
	}
	startRaw, err := GetSimpleText(a.reader, "Start time (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		return nil, err
	}
	startTime, err := time.ParseInLocation(timeLayout, startRaw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %s", startRaw)
	}
	endRaw, err := GetSimpleText(a.reader, "End time (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		return nil, err
	}
	endTime, err := time.ParseInLocation(timeLayout, endRaw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %s", endRaw)
	}
	maxRaw, err := GetSimpleText(a.reader, "Max participants", a.out)
	if err != nil {
		return nil, err
	}
	maxParticipants, err := strconv.Atoi(maxRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid max participants: %s", maxRaw)
	}
	priceRaw, err := GetSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return nil, err
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %s", priceRaw)
	}

	return &models.NewActivity{
		Title:           title,
		Description:     description,
		Category:        category,
		Location:        location,
		StartTime:       startTime,
		EndTime:         endTime,
		MaxParticipants: maxParticipants,
		Price:           price,
	}, nil
}

func (a *App) createActivity(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	payload, err := a.promptNewActivity()
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	act, err := a.activities.Create(ctx, *payload)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Created activity #%d\n", act.ID)
}

func (a *App) updateActivity(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	payload, err := a.promptNewActivity()
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if _, err := a.activities.Update(ctx, id, *payload); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Updated activity #%d\n", id)
}

func (a *App) deleteActivity(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	if err := a.activities.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted activity #%d\n", id)
}

func (a *App) myActivities(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	list, err := a.activities.MyCreated(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "You have not created any activities")
		return
	}
	now := time.Now()
	fmt.Fprintln(a.out, "Your activities:")
	for i := range list {
		a.printActivityRow(&list[i], now)
	}
}
