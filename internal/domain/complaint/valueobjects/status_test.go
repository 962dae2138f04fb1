package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    ComplaintStatus
		to      ComplaintStatus
		allowed bool
	}{
		{StatusReceived, StatusInProgress, true},
		{StatusReceived, StatusRecommended, true},
		{StatusReceived, StatusCanceled, true},
		{StatusReceived, StatusResolved, false},
		{StatusReceived, StatusClosed, false},

		{StatusInProgress, StatusReceived, true},
		{StatusInProgress, StatusRecommended, true},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusCanceled, true},
		{StatusInProgress, StatusClosed, false},

		{StatusRecommended, StatusReceived, true},
		{StatusRecommended, StatusInProgress, true},
		{StatusRecommended, StatusCanceled, true},
		{StatusRecommended, StatusResolved, false},

		{StatusResolved, StatusInProgress, true},
		{StatusResolved, StatusClosed, true},
		{StatusResolved, StatusCanceled, true},
		{StatusResolved, StatusReceived, false},

		{StatusClosed, StatusInProgress, true},
		{StatusClosed, StatusCanceled, false},
		{StatusClosed, StatusReceived, false},

		{StatusCanceled, StatusReceived, false},
		{StatusCanceled, StatusInProgress, false},
		{StatusCanceled, StatusResolved, false},
	}

	for _, tc := range tests {
		name := tc.from.String() + "->" + tc.to.String()
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestComplaintStatus_Predicates(t *testing.T) {
	assert.True(t, StatusCanceled.IsTerminal())
	assert.False(t, StatusClosed.IsTerminal(), "archived complaints still admit a follow-up")

	assert.True(t, StatusResolved.IsAnswered())
	assert.True(t, StatusClosed.IsAnswered())
	assert.False(t, StatusInProgress.IsAnswered())
	assert.False(t, StatusCanceled.IsAnswered())

	assert.True(t, StatusReceived.IsReceived())
	assert.True(t, StatusRecommended.IsRecommended())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusResolved.IsResolved())
	assert.True(t, StatusClosed.IsClosed())
	assert.True(t, StatusCanceled.IsCanceled())
}

func TestNewComplaintStatus(t *testing.T) {
	s, err := NewComplaintStatus("RECEIVED")
	require.NoError(t, err)
	assert.Equal(t, StatusReceived, s)

	_, err = NewComplaintStatus("received")
	require.Error(t, err)

	_, err = NewComplaintStatus("UNKNOWN")
	require.Error(t, err)
}

func TestRerouteStatus(t *testing.T) {
	assert.True(t, RerouteStatusPending.IsPending())
	assert.False(t, RerouteStatusPending.IsResolved())
	assert.True(t, RerouteStatusApproved.IsResolved())
	assert.True(t, RerouteStatusRejected.IsResolved())

	for _, s := range []RerouteStatus{RerouteStatusPending, RerouteStatusApproved, RerouteStatusRejected} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, RerouteStatus("MAYBE").IsValid())
}
