package incident

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicroute/internal/application/incident/usecases"
	"civicroute/internal/interfaces/http/handlers/testutil"
	"civicroute/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockLinkIncidentUC struct {
	result *usecases.LinkIncidentResult
	cmd    usecases.LinkIncidentCommand
	err    error
}

func (m *mockLinkIncidentUC) Execute(_ context.Context, cmd usecases.LinkIncidentCommand) (*usecases.LinkIncidentResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetIncidentUC struct {
	result *usecases.IncidentDTO
	err    error
}

func (m *mockGetIncidentUC) Execute(_ context.Context, _ usecases.GetIncidentQuery) (*usecases.IncidentDTO, error) {
	return m.result, m.err
}

type mockListIncidentsUC struct {
	result *usecases.ListIncidentsResult
	query  usecases.ListIncidentsQuery
	err    error
}

func (m *mockListIncidentsUC) Execute(_ context.Context, query usecases.ListIncidentsQuery) (*usecases.ListIncidentsResult, error) {
	m.query = query
	return m.result, m.err
}

type testDeps struct {
	linkIncidentUC  usecases.LinkIncidentExecutor
	getIncidentUC   usecases.GetIncidentExecutor
	listIncidentsUC usecases.ListIncidentsExecutor
}

func newTestIncidentHandler(deps testDeps) *IncidentHandler {
	return NewIncidentHandler(
		deps.linkIncidentUC,
		deps.getIncidentUC,
		deps.listIncidentsUC,
	)
}

// =====================================================================
// TestIncidentHandler_GetIncident
// =====================================================================

func TestIncidentHandler_GetIncident_Success(t *testing.T) {
	mockUC := &mockGetIncidentUC{
		result: &usecases.IncidentDTO{
			ID:             9,
			Title:          "Streetlight outage on Elm Street",
			Status:         "OPEN",
			ComplaintCount: 3,
			OpenedAt:       time.Now().UTC(),
			ComplaintIDs:   []uint{1, 2, 3},
		},
	}
	handler := newTestIncidentHandler(testDeps{getIncidentUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/incidents/9", nil)
	testutil.SetURLParam(c, "id", "9")

	handler.GetIncident(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestIncidentHandler_GetIncident_InvalidID(t *testing.T) {
	handler := newTestIncidentHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/incidents/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetIncident(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIncidentHandler_GetIncident_NotFound(t *testing.T) {
	mockUC := &mockGetIncidentUC{
		err: errors.NewNotFoundError("incident not found"),
	}
	handler := newTestIncidentHandler(testDeps{getIncidentUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/incidents/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetIncident(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestIncidentHandler_ListIncidents
// =====================================================================

func TestIncidentHandler_ListIncidents_Success(t *testing.T) {
	mockUC := &mockListIncidentsUC{
		result: &usecases.ListIncidentsResult{
			Incidents: []usecases.IncidentDTO{
				{ID: 9, Status: "OPEN", ComplaintCount: 3},
			},
			Total:    1,
			Page:     1,
			PageSize: 20,
		},
	}
	handler := newTestIncidentHandler(testDeps{listIncidentsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/incidents", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "OPEN", "min_complaints": "2"})

	handler.ListIncidents(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OPEN", mockUC.query.Status)
	assert.Equal(t, 2, mockUC.query.MinComplaints)
}

func TestIncidentHandler_ListIncidents_InvalidMinComplaints(t *testing.T) {
	handler := newTestIncidentHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/incidents", nil)
	testutil.SetQueryParams(c, map[string]string{"min_complaints": "abc"})

	handler.ListIncidents(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestIncidentHandler_LinkIncident
// =====================================================================

func TestIncidentHandler_LinkIncident_Success(t *testing.T) {
	incidentID := uint(9)
	score := 0.92
	mockUC := &mockLinkIncidentUC{
		result: &usecases.LinkIncidentResult{
			ComplaintID: 1,
			Linked:      true,
			IncidentID:  &incidentID,
			Score:       &score,
		},
	}
	handler := newTestIncidentHandler(testDeps{linkIncidentUC: mockUC})

	reqBody := LinkIncidentRequest{ComplaintID: 1, Embedding: []float64{0.1, 0.2}}
	c, w := testutil.NewTestContext(http.MethodPost, "/incidents/link", reqBody)

	handler.LinkIncident(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.cmd.ComplaintID)
}

func TestIncidentHandler_LinkIncident_OracleDown(t *testing.T) {
	mockUC := &mockLinkIncidentUC{
		err: errors.NewUpstreamUnavailableError("similarity oracle unavailable"),
	}
	handler := newTestIncidentHandler(testDeps{linkIncidentUC: mockUC})

	reqBody := LinkIncidentRequest{ComplaintID: 1, Embedding: []float64{0.1, 0.2}}
	c, w := testutil.NewTestContext(http.MethodPost, "/incidents/link", reqBody)

	handler.LinkIncident(c)

	assert.NotEqual(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestIncidentHandler_LinkIncident_BindError(t *testing.T) {
	handler := newTestIncidentHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/incidents/link", map[string]string{})

	handler.LinkIncident(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
