// Package services contains the application services the CLI drives: thin
// coordinators over the API client, the local cache, and the derivation
// rules in models.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpovs/sportactive/internal/client/models"
	"github.com/akarpovs/sportactive/internal/client/repositories/activities"
	"github.com/akarpovs/sportactive/internal/common"
	"github.com/akarpovs/sportactive/internal/logging"
)

// ActivityAPI is the slice of the backend client the activity service uses.
type ActivityAPI interface {
	ListActivities(ctx context.Context, params models.ListActivitiesParams) ([]models.Activity, int, error)
	GetActivity(ctx context.Context, id int64) (*models.Activity, error)
	CreateActivity(ctx context.Context, activity models.NewActivity) (*models.Activity, error)
	UpdateActivity(ctx context.Context, id int64, activity models.NewActivity) (*models.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error
	MyCreatedActivities(ctx context.Context) ([]models.Activity, error)
}

// ListResult is the outcome of a listing: FromCache marks an offline
// fallback served from the local replica.
type ListResult struct {
	Activities []models.Activity
	Total      int
	FromCache  bool
}

type ActivityService struct {
	api    ActivityAPI
	cache  activities.Repository
	logger logging.Logger
}

func NewActivityService(api ActivityAPI, cache activities.Repository, logger logging.Logger) *ActivityService {
	return &ActivityService{api: api, cache: cache, logger: logger}
}

// List fetches activities from the backend. Successful fetches refresh the
// local cache; when the server is unreachable the last cached list is
// served instead.
func (s *ActivityService) List(ctx context.Context, params models.ListActivitiesParams) (*ListResult, error) {
	list, total, err := s.api.ListActivities(ctx, params)
	if err == nil {
		if cacheErr := s.cache.ReplaceAll(ctx, list); cacheErr != nil {
			s.logger.Warn(ctx, "failed to refresh activity cache", "error", cacheErr)
		}
		return &ListResult{Activities: list, Total: total}, nil
	}

	if errors.Is(err, common.ErrUnavailable) {
		cached, cacheErr := s.cache.List(ctx)
		if cacheErr != nil {
			return nil, fmt.Errorf("server unreachable and cache unusable: %w", err)
		}
		s.logger.Info(ctx, "server unreachable, serving cached activities", "count", len(cached))
		return &ListResult{Activities: cached, Total: len(cached), FromCache: true}, nil
	}

	return nil, err
}

// Get fetches one activity, falling back to the cache when offline.
func (s *ActivityService) Get(ctx context.Context, id int64) (*models.Activity, error) {
	a, err := s.api.GetActivity(ctx, id)
	if err == nil {
		return a, nil
	}
	if errors.Is(err, common.ErrUnavailable) {
		if cached, cacheErr := s.cache.Get(ctx, id); cacheErr == nil {
			s.logger.Info(ctx, "server unreachable, serving cached activity", "id", id)
			return cached, nil
		}
	}
	return nil, err
}

// Create validates the payload locally and submits it. Validation problems
// never reach the network.
func (s *ActivityService) Create(ctx context.Context, activity models.NewActivity) (*models.Activity, error) {
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	return s.api.CreateActivity(ctx, activity)
}

func (s *ActivityService) Update(ctx context.Context, id int64, activity models.NewActivity) (*models.Activity, error) {
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	return s.api.UpdateActivity(ctx, id, activity)
}

func (s *ActivityService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteActivity(ctx, id)
}

func (s *ActivityService) MyCreated(ctx context.Context) ([]models.Activity, error) {
	return s.api.MyCreatedActivities(ctx)
}
