package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
)

func uintPtr(v uint) *uint { return &v }

// testComplaint builds a persisted-style complaint in the given status.
func testComplaint(t *testing.T, id uint, status vo.ComplaintStatus, assigneeID *uint) *complaint.Complaint {
	t.Helper()
	now := time.Now().UTC()
	loc, err := vo.NewLocation("Main St 1", nil, nil)
	require.NoError(t, err)

	dept := uint(2)
	c, err := complaint.ReconstructComplaint(
		id, "C-20250101-0001",
		10,
		"Streetlight broken", "The light on Main St is out",
		loc,
		status,
		assigneeID,
		"",
		&dept,
		nil, nil, nil, nil,
		1,
		now, now, now,
		nil,
	)
	require.NoError(t, err)
	return c
}

func testFollowUp(t *testing.T, id, parentID uint, status vo.ComplaintStatus) *complaint.FollowUp {
	t.Helper()
	now := time.Now().UTC()
	f, err := complaint.ReconstructFollowUp(
		id, parentID,
		"Still broken", "It went out again",
		"", nil,
		status,
		1,
		now, now,
		nil,
	)
	require.NoError(t, err)
	return f
}

func testPendingReroute(t *testing.T, id, complaintID uint) *complaint.RerouteRequest {
	t.Helper()
	now := time.Now().UTC()
	r, err := complaint.ReconstructRerouteRequest(
		id, complaintID,
		2, 5,
		"wrong jurisdiction",
		vo.RerouteStatusPending,
		7, nil,
		now, nil,
	)
	require.NoError(t, err)
	return r
}
