package models

import "time"

// Registration is a user's enrollment in an activity.
type Registration struct {
	ID         int64     `json:"id"`
	ActivityID int64     `json:"activityId"`
	UserID     int64     `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	Activity   *Activity `json:"activity,omitempty"`
}
