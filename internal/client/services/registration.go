package services

import (
	"context"
	"errors"
	"time"

	"github.com/akarpovs/sportactive/internal/client/models"
)

// Enrollment gating errors, raised before any registration request is sent.
var (
	ErrActivityCancelled  = errors.New("activity is cancelled")
	ErrActivityEnded      = errors.New("activity has ended")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrActivityFull       = errors.New("activity is full")
	ErrAlreadyRegistered  = errors.New("already registered for this activity")
)

// RegistrationAPI is the slice of the backend client the registration
// service uses.
type RegistrationAPI interface {
	GetActivity(ctx context.Context, id int64) (*models.Activity, error)
	CreateRegistration(ctx context.Context, activityID int64) (*models.Registration, error)
	CancelRegistrationByActivity(ctx context.Context, activityID int64) error
	CancelRegistration(ctx context.Context, registrationID int64) error
	MyRegistrations(ctx context.Context) ([]models.Registration, error)
	ActivityRegistrations(ctx context.Context, activityID int64) ([]models.Registration, error)
	CheckRegistration(ctx context.Context, activityID int64) (bool, error)
}

type RegistrationService struct {
	api RegistrationAPI
	now func() time.Time
}

func NewRegistrationService(api RegistrationAPI) *RegistrationService {
	return &RegistrationService{api: api, now: time.Now}
}

// Enroll registers the current user for an activity. The display status is
// resolved at the current instant and combined with the independent
// capacity predicate; only an open, non-full activity reaches the backend.
func (s *RegistrationService) Enroll(ctx context.Context, activityID int64) (*models.Registration, error) {
	activity, err := s.api.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch activity.DisplayStatusAt(now) {
	case models.DisplayStatusCancelled:
		return nil, ErrActivityCancelled
	case models.DisplayStatusEnded:
		return nil, ErrActivityEnded
	case models.DisplayStatusInProgress:
		return nil, ErrRegistrationClosed
	}
	if activity.IsFull() {
		return nil, ErrActivityFull
	}

	if registered, err := s.api.CheckRegistration(ctx, activityID); err == nil && registered {
		return nil, ErrAlreadyRegistered
	}

	return s.api.CreateRegistration(ctx, activityID)
}

// CancelByActivity withdraws the current user's registration for an activity.
func (s *RegistrationService) CancelByActivity(ctx context.Context, activityID int64) error {
	return s.api.CancelRegistrationByActivity(ctx, activityID)
}

// Cancel withdraws a registration by its own id.
func (s *RegistrationService) Cancel(ctx context.Context, registrationID int64) error {
	return s.api.CancelRegistration(ctx, registrationID)
}

func (s *RegistrationService) Mine(ctx context.Context) ([]models.Registration, error) {
	return s.api.MyRegistrations(ctx)
}

func (s *RegistrationService) ForActivity(ctx context.Context, activityID int64) ([]models.Registration, error) {
	return s.api.ActivityRegistrations(ctx, activityID)
}

func (s *RegistrationService) IsRegistered(ctx context.Context, activityID int64) (bool, error) {
	return s.api.CheckRegistration(ctx, activityID)
}
