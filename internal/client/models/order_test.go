package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderTransitions(t *testing.T) {
	tests := []struct {
		status     OrderStatus
		payable    bool
		cancelable bool
		refundable bool
	}{
		{OrderStatusPending, true, true, false},
		{OrderStatusPaid, false, false, true},
		{OrderStatusCancelled, false, false, false},
		{OrderStatusRefunded, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			o := &Order{Status: tt.status}
			require.Equal(t, tt.payable, o.Payable())
			require.Equal(t, tt.cancelable, o.Cancellable())
			require.Equal(t, tt.refundable, o.Refundable())
		})
	}
}

func TestNewComment_Validate(t *testing.T) {
	valid := NewComment{ActivityID: 1, Content: "great session", Rating: 5}
	require.NoError(t, valid.Validate())

	bad := NewComment{ActivityID: 1, Content: "", Rating: 6}
	err := bad.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "content")
	require.Contains(t, err.Error(), "rating")
}
