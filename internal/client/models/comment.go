package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/akarpovs/sportactive/internal/common"
)

// Comment is a user comment with a 1..5 rating on an activity.
type Comment struct {
	ID         int64     `json:"id"`
	ActivityID int64     `json:"activityId"`
	UserID     int64     `json:"userId"`
	Username   string    `json:"username,omitempty"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewComment is the comment creation payload.
type NewComment struct {
	ActivityID int64  `json:"activityId"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
}

// Validate checks the payload before it is sent to the backend.
func (n *NewComment) Validate() error {
	var problems []string
	if strings.TrimSpace(n.Content) == "" {
		problems = append(problems, "content is required")
	}
	if n.Rating < 1 || n.Rating > 5 {
		problems = append(problems, "rating must be between 1 and 5")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// RatingStats is the aggregate rating for an activity.
type RatingStats struct {
	ActivityID    int64   `json:"activityId"`
	AverageRating float64 `json:"averageRating"`
	CommentCount  int     `json:"commentCount"`
}
