package complaint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/shared/errors"
)

func newPendingReroute(t *testing.T) *RerouteRequest {
	t.Helper()
	r, err := NewRerouteRequest(1, 2, 5, "wrong jurisdiction", 7)
	require.NoError(t, err)
	return r
}

func TestNewRerouteRequest(t *testing.T) {
	r := newPendingReroute(t)

	assert.Equal(t, uint(1), r.ComplaintID())
	assert.Equal(t, uint(2), r.OriginDeptID())
	assert.Equal(t, uint(5), r.TargetDeptID())
	assert.Equal(t, "wrong jurisdiction", r.Reason())
	assert.Equal(t, vo.RerouteStatusPending, r.Status())
	assert.Equal(t, uint(7), r.RequesterID())
	assert.Nil(t, r.ReviewerID())
	assert.Nil(t, r.CompletedAt())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestNewRerouteRequest_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		complaint uint
		origin    uint
		target    uint
		reason    string
		requester uint
		wantMsg   string
	}{
		{name: "zero complaint", complaint: 0, origin: 2, target: 5, reason: "r", requester: 7, wantMsg: "complaint ID is required"},
		{name: "zero target", complaint: 1, origin: 2, target: 0, reason: "r", requester: 7, wantMsg: "target department ID is required"},
		{name: "target equals origin", complaint: 1, origin: 5, target: 5, reason: "r", requester: 7, wantMsg: "must differ from the origin"},
		{name: "zero requester", complaint: 1, origin: 2, target: 5, reason: "r", requester: 0, wantMsg: "requester ID is required"},
		{name: "empty reason", complaint: 1, origin: 2, target: 5, reason: "", requester: 7, wantMsg: "reason is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRerouteRequest(tc.complaint, tc.origin, tc.target, tc.reason, tc.requester)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestRerouteRequest_Approve(t *testing.T) {
	r := newPendingReroute(t)

	require.NoError(t, r.Approve(9))
	assert.Equal(t, vo.RerouteStatusApproved, r.Status())
	require.NotNil(t, r.ReviewerID())
	assert.Equal(t, uint(9), *r.ReviewerID())
	require.NotNil(t, r.CompletedAt())
}

func TestRerouteRequest_Reject(t *testing.T) {
	r := newPendingReroute(t)

	require.NoError(t, r.Reject(9))
	assert.Equal(t, vo.RerouteStatusRejected, r.Status())
	require.NotNil(t, r.ReviewerID())
	assert.Equal(t, uint(9), *r.ReviewerID())
	require.NotNil(t, r.CompletedAt())
}

func TestRerouteRequest_ResolveTwice(t *testing.T) {
	r := newPendingReroute(t)
	require.NoError(t, r.Approve(9))

	err := r.Reject(10)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
	assert.Equal(t, vo.RerouteStatusApproved, r.Status(), "the first resolution must stand")
	assert.Equal(t, uint(9), *r.ReviewerID())
}

func TestRerouteRequest_Resolve_ZeroReviewer(t *testing.T) {
	r := newPendingReroute(t)
	err := r.Approve(0)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.RerouteStatusPending, r.Status())
}

func TestReconstructRerouteRequest(t *testing.T) {
	now := time.Now().UTC()
	reviewer := uint(9)
	done := now.Add(time.Hour)

	r, err := ReconstructRerouteRequest(3, 1, 2, 5, "reason", vo.RerouteStatusApproved, 7, &reviewer, now, &done)
	require.NoError(t, err)
	assert.Equal(t, uint(3), r.ID())
	assert.Equal(t, vo.RerouteStatusApproved, r.Status())
	assert.Equal(t, &reviewer, r.ReviewerID())
	assert.Equal(t, &done, r.CompletedAt())
}

func TestReconstructRerouteRequest_ZeroID(t *testing.T) {
	now := time.Now().UTC()
	_, err := ReconstructRerouteRequest(0, 1, 2, 5, "reason", vo.RerouteStatusPending, 7, nil, now, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID cannot be zero")
}
