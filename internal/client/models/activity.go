package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/akarpovs/sportactive/internal/common"
)

// ActivityStatus is the authoritative, server-set status flag.
type ActivityStatus string

const (
	ActivityStatusActive    ActivityStatus = "active"
	ActivityStatusCancelled ActivityStatus = "cancelled"
	ActivityStatusCompleted ActivityStatus = "completed"
)

// DisplayStatus is the user-facing status derived from the stored status
// and the activity timestamps. It is computed on every read and never
// stored on the entity.
type DisplayStatus string

const (
	DisplayStatusOpen       DisplayStatus = "open"
	DisplayStatusInProgress DisplayStatus = "in_progress"
	DisplayStatusEnded      DisplayStatus = "ended"
	DisplayStatusCancelled  DisplayStatus = "cancelled"
)

// Activity is a sports activity as returned by the backend.
type Activity struct {
	ID                  int64          `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Category            string         `json:"category"`
	Location            string         `json:"location"`
	Status              ActivityStatus `json:"status"`
	StartTime           time.Time      `json:"startTime"`
	EndTime             time.Time      `json:"endTime"`
	CurrentParticipants int            `json:"currentParticipants"`
	MaxParticipants     int            `json:"maxParticipants"`
	Price               float64        `json:"price"`
	CreatorID           int64          `json:"creatorId,omitempty"`
	CreatedAt           time.Time      `json:"createdAt,omitempty"`
}

// ResolveDisplayStatus maps the stored status flag and timestamps to the
// display status at the given instant. Cancelled and completed are terminal
// regardless of the timestamps; an active activity is open before its start,
// in progress between start and end inclusive, and ended after its end.
//
// Pure and total: no side effects, deterministic for a given now. Callers
// must re-evaluate on every read since now advances.
func ResolveDisplayStatus(status ActivityStatus, startTime, endTime, now time.Time) DisplayStatus {
	if status == ActivityStatusCancelled {
		return DisplayStatusCancelled
	}
	if status == ActivityStatusCompleted {
		return DisplayStatusEnded
	}
	if now.Before(startTime) {
		return DisplayStatusOpen
	}
	if !now.After(endTime) {
		return DisplayStatusInProgress
	}
	return DisplayStatusEnded
}

// DisplayStatusAt resolves the activity's display status at the given instant.
func (a *Activity) DisplayStatusAt(now time.Time) DisplayStatus {
	return ResolveDisplayStatus(a.Status, a.StartTime, a.EndTime, now)
}

// IsFull reports whether the activity has reached its participant capacity.
// Evaluated independently of the display status.
func (a *Activity) IsFull() bool {
	return a.CurrentParticipants >= a.MaxParticipants
}

// RegistrationOpen reports whether the registration action is permitted:
// the display status must be open and there must be capacity left.
func (a *Activity) RegistrationOpen(now time.Time) bool {
	return a.DisplayStatusAt(now) == DisplayStatusOpen && !a.IsFull()
}

// NewActivity is the create/update request payload.
type NewActivity struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	MaxParticipants int       `json:"maxParticipants"`
	Price           float64   `json:"price"`
}

// Validate checks the payload before it is sent to the backend. Field
// problems are collected and returned as a single error wrapping
// common.ErrValidation; nothing is sent to the network when it fails.
func (n *NewActivity) Validate() error {
	var problems []string

	if strings.TrimSpace(n.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(n.Description) == "" {
		problems = append(problems, "description is required")
	}
	if strings.TrimSpace(n.Category) == "" {
		problems = append(problems, "category is required")
	}
	if strings.TrimSpace(n.Location) == "" {
		problems = append(problems, "location is required")
	}
	if n.StartTime.IsZero() {
		problems = append(problems, "start time is required")
	}
	if n.EndTime.IsZero() {
		problems = append(problems, "end time is required")
	} else if !n.StartTime.IsZero() && !n.EndTime.After(n.StartTime) {
		problems = append(problems, "end time must be after start time")
	}
	if n.MaxParticipants < 1 {
		problems = append(problems, "max participants must be at least 1")
	}
	if n.Price < 0 {
		problems = append(problems, "price must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// ListActivitiesParams are the query filters for the activity listing.
type ListActivitiesParams struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Status   string
}
