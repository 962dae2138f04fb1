package incident

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"civicroute/internal/application/incident/usecases"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
	"civicroute/internal/shared/utils"
)

type IncidentHandler struct {
	linkIncidentUC  usecases.LinkIncidentExecutor
	getIncidentUC   usecases.GetIncidentExecutor
	listIncidentsUC usecases.ListIncidentsExecutor
	logger          logger.Interface
}

func NewIncidentHandler(
	linkIncidentUC usecases.LinkIncidentExecutor,
	getIncidentUC usecases.GetIncidentExecutor,
	listIncidentsUC usecases.ListIncidentsExecutor,
) *IncidentHandler {
	return &IncidentHandler{
		linkIncidentUC:  linkIncidentUC,
		getIncidentUC:   getIncidentUC,
		listIncidentsUC: listIncidentsUC,
		logger:          logger.NewLogger(),
	}
}

type LinkIncidentRequest struct {
	ComplaintID uint      `json:"complaint_id" binding:"required"`
	Embedding   []float64 `json:"embedding,omitempty"`
}

// LinkIncident handles POST /incidents/link
//
// Normally linkage runs as part of normalization recording. This endpoint
// re-runs the decision for a single complaint, for operator-triggered retries
// after an oracle outage.
func (h *IncidentHandler) LinkIncident(c *gin.Context) {
	var req LinkIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for link incident", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LinkIncidentCommand{
		ComplaintID: req.ComplaintID,
		Embedding:   req.Embedding,
	}

	result, err := h.linkIncidentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Incident linkage evaluated", result)
}

// GetIncident handles GET /incidents/:id
func (h *IncidentHandler) GetIncident(c *gin.Context) {
	incidentID, err := parseIncidentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetIncidentQuery{
		IncidentID: incidentID,
	}

	result, err := h.getIncidentUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIncidents handles GET /incidents
func (h *IncidentHandler) ListIncidents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	minComplaints := 0
	if raw := c.Query("min_complaints"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid min_complaints"))
			return
		}
		minComplaints = value
	}

	query := usecases.ListIncidentsQuery{
		Status:        c.Query("status"),
		MinComplaints: minComplaints,
		Page:          page,
		PageSize:      pageSize,
	}

	result, err := h.listIncidentsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Incidents, result.Total, result.Page, result.PageSize)
}

func parseIncidentID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid incident ID")
	}
	return uint(id), nil
}
