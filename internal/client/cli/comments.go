package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/akarpovs/sportactive/internal/client/models"
)

func (a *App) listComments(ctx context.Context, args []string) {
	activityID, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	comments, total, err := a.comments.ForActivity(ctx, activityID, 1, 20)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(comments) == 0 {
		fmt.Fprintln(a.out, "No comments yet")
		return
	}

	fmt.Fprintf(a.out, "Comments (%d total):\n", total)
	for _, c := range comments {
		name := c.Username
		if name == "" {
			name = fmt.Sprintf("user #%d", c.UserID)
		}
		fmt.Fprintf(a.out, "  [%d/5] %s: %s (%s)\n", c.Rating, name, c.Content, formatTime(c.CreatedAt))
	}
}

func (a *App) addComment(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	activityID, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	content, err := GetSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	ratingRaw, err := GetSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	rating, err := strconv.Atoi(ratingRaw)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid rating:", ratingRaw)
		return
	}

	comment, err := a.comments.Create(ctx, models.NewComment{
		ActivityID: activityID,
		Content:    content,
		Rating:     rating,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Comment #%d added\n", comment.ID)
}
