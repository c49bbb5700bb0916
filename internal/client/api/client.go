// Package api provides the client for the sportactive REST backend.
//
// Every response arrives in the envelope
//
//	{ "success": bool, "data"?: T, "message"?: string, "total"?: int }
//
// On success=false the message is surfaced verbatim via RemoteError.
package api

import (
	"context"
	"fmt"

	"github.com/akarpovs/sportactive/internal/client/models"
)

// Client is the full surface of the backend consumed by this application.
type Client interface {
	Close() error

	// Ping checks server liveness.
	Ping(ctx context.Context) error

	// Users.
	Register(ctx context.Context, user models.NewUser) (*models.UserRecord, error)
	Login(ctx context.Context, creds models.Credentials) (*models.UserRecord, error)
	GetUser(ctx context.Context, id int64) (*models.UserRecord, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.UserRecord, error)

	// Activities.
	ListActivities(ctx context.Context, params models.ListActivitiesParams) ([]models.Activity, int, error)
	GetActivity(ctx context.Context, id int64) (*models.Activity, error)
	CreateActivity(ctx context.Context, activity models.NewActivity) (*models.Activity, error)
	UpdateActivity(ctx context.Context, id int64, activity models.NewActivity) (*models.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error
	MyCreatedActivities(ctx context.Context) ([]models.Activity, error)

	// Registrations.
	CreateRegistration(ctx context.Context, activityID int64) (*models.Registration, error)
	CancelRegistrationByActivity(ctx context.Context, activityID int64) error
	CancelRegistration(ctx context.Context, registrationID int64) error
	MyRegistrations(ctx context.Context) ([]models.Registration, error)
	ActivityRegistrations(ctx context.Context, activityID int64) ([]models.Registration, error)
	CheckRegistration(ctx context.Context, activityID int64) (bool, error)

	// Orders.
	CreateOrder(ctx context.Context, order models.NewOrder) (*models.Order, error)
	MyOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	PayOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	CancelOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	RefundOrder(ctx context.Context, orderNumber string) (*models.Order, error)
	OrderStats(ctx context.Context) (*models.OrderStats, error)

	// Comments.
	CreateComment(ctx context.Context, comment models.NewComment) (*models.Comment, error)
	ActivityComments(ctx context.Context, activityID int64, page, limit int) ([]models.Comment, int, error)
	MyComments(ctx context.Context) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	ActivityRatingStats(ctx context.Context, activityID int64) (*models.RatingStats, error)
}

// RemoteError is an explicit rejection from the backend: the envelope came
// back with success=false and a human-readable message meant to be shown
// to the user verbatim.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server rejected request: %s", e.Message)
}

// TokenSource supplies the bearer token for outbound requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
