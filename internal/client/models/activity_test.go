package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akarpovs/sportactive/internal/common"
)

func TestResolveDisplayStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status ActivityStatus
		start  time.Time
		end    time.Time
		want   DisplayStatus
	}{
		{
			name:   "active before start is open",
			status: ActivityStatusActive,
			start:  now.Add(time.Hour),
			end:    now.Add(2 * time.Hour),
			want:   DisplayStatusOpen,
		},
		{
			name:   "active between start and end is in progress",
			status: ActivityStatusActive,
			start:  now.Add(-time.Hour),
			end:    now.Add(time.Hour),
			want:   DisplayStatusInProgress,
		},
		{
			name:   "active exactly at start is in progress",
			status: ActivityStatusActive,
			start:  now,
			end:    now.Add(time.Hour),
			want:   DisplayStatusInProgress,
		},
		{
			name:   "active exactly at end is in progress",
			status: ActivityStatusActive,
			start:  now.Add(-time.Hour),
			end:    now,
			want:   DisplayStatusInProgress,
		},
		{
			name:   "active after end is ended",
			status: ActivityStatusActive,
			start:  now.Add(-2 * time.Hour),
			end:    now.Add(-time.Hour),
			want:   DisplayStatusEnded,
		},
		{
			name:   "cancelled ignores timestamps",
			status: ActivityStatusCancelled,
			start:  now.Add(time.Hour),
			end:    now.Add(2 * time.Hour),
			want:   DisplayStatusCancelled,
		},
		{
			name:   "cancelled even when in time window",
			status: ActivityStatusCancelled,
			start:  now.Add(-time.Hour),
			end:    now.Add(time.Hour),
			want:   DisplayStatusCancelled,
		},
		{
			name:   "completed ignores timestamps",
			status: ActivityStatusCompleted,
			start:  now.Add(time.Hour),
			end:    now.Add(2 * time.Hour),
			want:   DisplayStatusEnded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDisplayStatus(tt.status, tt.start, tt.end, now)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestActivity_RegistrationOpen(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("in progress disables registration", func(t *testing.T) {
		a := &Activity{
			Status:              ActivityStatusActive,
			StartTime:           now.Add(-time.Hour),
			EndTime:             now.Add(time.Hour),
			CurrentParticipants: 1,
			MaxParticipants:     10,
		}
		require.Equal(t, DisplayStatusInProgress, a.DisplayStatusAt(now))
		require.False(t, a.RegistrationOpen(now))
	})

	t.Run("open but full disables registration", func(t *testing.T) {
		a := &Activity{
			Status:              ActivityStatusActive,
			StartTime:           now.Add(time.Hour),
			EndTime:             now.Add(2 * time.Hour),
			CurrentParticipants: 5,
			MaxParticipants:     5,
		}
		require.Equal(t, DisplayStatusOpen, a.DisplayStatusAt(now))
		require.True(t, a.IsFull())
		require.False(t, a.RegistrationOpen(now))
	})

	t.Run("open with capacity enables registration", func(t *testing.T) {
		a := &Activity{
			Status:              ActivityStatusActive,
			StartTime:           now.Add(time.Hour),
			EndTime:             now.Add(2 * time.Hour),
			CurrentParticipants: 4,
			MaxParticipants:     5,
		}
		require.True(t, a.RegistrationOpen(now))
	})

	t.Run("cancelled disables registration even with capacity", func(t *testing.T) {
		a := &Activity{
			Status:          ActivityStatusCancelled,
			StartTime:       now.Add(time.Hour),
			EndTime:         now.Add(2 * time.Hour),
			MaxParticipants: 5,
		}
		require.False(t, a.RegistrationOpen(now))
	})
}

func TestNewActivity_Validate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	valid := NewActivity{
		Title:           "Morning run",
		Description:     "Easy 5k around the park",
		Category:        "running",
		Location:        "Central Park",
		StartTime:       now.Add(24 * time.Hour),
		EndTime:         now.Add(26 * time.Hour),
		MaxParticipants: 20,
		Price:           0,
	}
	require.NoError(t, valid.Validate())

	t.Run("missing title", func(t *testing.T) {
		a := valid
		a.Title = "  "
		err := a.Validate()
		require.ErrorIs(t, err, common.ErrValidation)
		require.Contains(t, err.Error(), "title")
	})

	t.Run("end before start", func(t *testing.T) {
		a := valid
		a.EndTime = a.StartTime.Add(-time.Minute)
		err := a.Validate()
		require.ErrorIs(t, err, common.ErrValidation)
		require.Contains(t, err.Error(), "end time")
	})

	t.Run("zero participants", func(t *testing.T) {
		a := valid
		a.MaxParticipants = 0
		require.ErrorIs(t, a.Validate(), common.ErrValidation)
	})

	t.Run("negative price", func(t *testing.T) {
		a := valid
		a.Price = -1
		require.ErrorIs(t, a.Validate(), common.ErrValidation)
	})

	t.Run("multiple problems reported together", func(t *testing.T) {
		a := NewActivity{}
		err := a.Validate()
		require.ErrorIs(t, err, common.ErrValidation)
		require.Contains(t, err.Error(), "title")
		require.Contains(t, err.Error(), "description")
		require.Contains(t, err.Error(), "max participants")
	})
}
