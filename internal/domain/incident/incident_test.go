package incident

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "civicroute/internal/domain/incident/valueobjects"
)

func floatPtr(v float64) *float64 { return &v }

func TestNewIncident(t *testing.T) {
	inc, err := NewIncident("Water main burst on Oak Ave", floatPtr(52.1), floatPtr(5.2))
	require.NoError(t, err)

	assert.Equal(t, "Water main burst on Oak Ave", inc.Title())
	assert.Equal(t, vo.StatusOpen, inc.Status())
	assert.Equal(t, 1, inc.ComplaintCount(), "the seeding complaint counts as the first member")
	assert.Equal(t, 1, inc.Version())
	assert.InDelta(t, 52.1, *inc.CentroidLat(), 1e-9)
	assert.InDelta(t, 5.2, *inc.CentroidLon(), 1e-9)
	assert.False(t, inc.OpenedAt().IsZero())
	require.NotNil(t, inc.LastOccurredAt())
	assert.Nil(t, inc.ClosedAt())
}

func TestNewIncident_EmptyTitle(t *testing.T) {
	inc, err := NewIncident("", nil, nil)
	require.Error(t, err)
	assert.Nil(t, inc)
}

func TestNewIncident_TitleTooLong(t *testing.T) {
	inc, err := NewIncident(strings.Repeat("x", 201), nil, nil)
	require.Error(t, err)
	assert.Nil(t, inc)
}

func TestIncident_SetID(t *testing.T) {
	inc, err := NewIncident("Flooding", nil, nil)
	require.NoError(t, err)

	require.NoError(t, inc.SetID(5))
	assert.Equal(t, uint(5), inc.ID())

	err = inc.SetID(6)
	require.Error(t, err)
}

func TestIncident_UpdateTitle(t *testing.T) {
	inc, err := NewIncident("Flooding", nil, nil)
	require.NoError(t, err)

	require.NoError(t, inc.UpdateTitle("Flooding after storm"))
	assert.Equal(t, "Flooding after storm", inc.Title())
	assert.Equal(t, 2, inc.Version())

	err = inc.UpdateTitle("")
	require.Error(t, err)
}

func TestIncident_RecomputeMembership(t *testing.T) {
	inc, err := NewIncident("Flooding", nil, nil)
	require.NoError(t, err)

	last := time.Now().UTC()
	require.NoError(t, inc.RecomputeMembership(4, &last))
	assert.Equal(t, 4, inc.ComplaintCount())
	assert.Equal(t, &last, inc.LastOccurredAt())
	assert.Equal(t, 2, inc.Version())
}

func TestIncident_RecomputeMembership_NegativeCount(t *testing.T) {
	inc, err := NewIncident("Flooding", nil, nil)
	require.NoError(t, err)

	err = inc.RecomputeMembership(-1, nil)
	require.Error(t, err)
	assert.Equal(t, 1, inc.ComplaintCount())
}

func TestIncident_RecomputeMembership_ReopensClosed(t *testing.T) {
	inc, err := NewIncident("Flooding", nil, nil)
	require.NoError(t, err)
	require.NoError(t, inc.Close())

	last := time.Now().UTC()
	require.NoError(t, inc.RecomputeMembership(2, &last))
	assert.Equal(t, vo.StatusOpen, inc.Status(), "a new member reopens the cluster")
	assert.Nil(t, inc.ClosedAt())
}

func TestIncident_Close(t *testing.T) {
	inc, err := NewIncident("Flooding", nil, nil)
	require.NoError(t, err)

	require.NoError(t, inc.Close())
	assert.Equal(t, vo.StatusClosed, inc.Status())
	require.NotNil(t, inc.ClosedAt())

	err = inc.Close()
	require.Error(t, err)
}

func TestReconstructIncident(t *testing.T) {
	now := time.Now().UTC()
	last := now.Add(time.Hour)

	inc, err := ReconstructIncident(3, "Flooding", vo.StatusInProgress, 7, nil, nil, 4, now, &last, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(3), inc.ID())
	assert.Equal(t, vo.StatusInProgress, inc.Status())
	assert.Equal(t, 7, inc.ComplaintCount())
	assert.Equal(t, 4, inc.Version())
	assert.Equal(t, &last, inc.LastOccurredAt())
}

func TestReconstructIncident_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructIncident(0, "T", vo.StatusOpen, 1, nil, nil, 1, now, nil, nil)
	require.Error(t, err)

	_, err = ReconstructIncident(1, "T", vo.IncidentStatus("weird"), 1, nil, nil, 1, now, nil, nil)
	require.Error(t, err)
}
