package complaint

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"civicroute/internal/application/complaint/usecases"
	domain "civicroute/internal/domain/complaint"
	"civicroute/internal/shared/errors"
)

type ReceiveComplaintRequest struct {
	ApplicantID uint     `json:"applicant_id" binding:"required"`
	Title       string   `json:"title" binding:"required,max=200"`
	Body        string   `json:"body" binding:"required,max=5000"`
	AddressText string   `json:"address_text,omitempty" binding:"max=300"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
}

func (r *ReceiveComplaintRequest) ToCommand() usecases.ReceiveComplaintCommand {
	return usecases.ReceiveComplaintCommand{
		ApplicantID: r.ApplicantID,
		Title:       r.Title,
		Body:        r.Body,
		AddressText: r.AddressText,
		Lat:         r.Lat,
		Lon:         r.Lon,
	}
}

type AssignComplaintRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type ReleaseComplaintRequest struct {
	CallerID uint `json:"caller_id" binding:"required"`
}

type SaveDraftAnswerRequest struct {
	Draft string `json:"draft" binding:"max=10000"`
}

type CompleteAnswerRequest struct {
	Answer     string `json:"answer" binding:"required,max=10000"`
	AnsweredBy uint   `json:"answered_by" binding:"required"`
}

type CancelComplaintRequest struct {
	CanceledBy uint `json:"canceled_by"`
}

type CreateFollowUpRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required,max=5000"`
}

type RequestRerouteRequest struct {
	TargetDeptID uint   `json:"target_department_id" binding:"required"`
	Reason       string `json:"reason" binding:"required,max=2000"`
	RequesterID  uint   `json:"requester_id" binding:"required"`
}

type ResolveRerouteRequest struct {
	ReviewerID uint `json:"reviewer_id" binding:"required"`
}

type RoutingCandidateRequest struct {
	DepartmentID uint    `json:"department_id" binding:"required"`
	Score        float64 `json:"score"`
}

type RecordNormalizationRequest struct {
	RecommendedDept uint                      `json:"recommended_department_id" binding:"required"`
	NeutralSummary  string                    `json:"neutral_summary" binding:"max=5000"`
	Topic           string                    `json:"topic" binding:"max=100"`
	Category        string                    `json:"category" binding:"max=100"`
	Keywords        []string                  `json:"keywords,omitempty"`
	RoutingRank     []RoutingCandidateRequest `json:"routing_rank,omitempty"`
	Embedding       []float64                 `json:"embedding" binding:"required"`
}

func (r *RecordNormalizationRequest) ToCommand(complaintID uint) usecases.RecordNormalizationCommand {
	rank := make([]domain.RoutingCandidate, 0, len(r.RoutingRank))
	for _, c := range r.RoutingRank {
		rank = append(rank, domain.RoutingCandidate{DepartmentID: c.DepartmentID, Score: c.Score})
	}

	return usecases.RecordNormalizationCommand{
		ComplaintID:     complaintID,
		RecommendedDept: r.RecommendedDept,
		NeutralSummary:  r.NeutralSummary,
		Topic:           r.Topic,
		Category:        r.Category,
		Keywords:        r.Keywords,
		RoutingRank:     rank,
		Embedding:       r.Embedding,
	}
}

type ListComplaintsRequest struct {
	Page         int
	PageSize     int
	Status       string
	DepartmentID *uint
	AssigneeID   *uint
	ApplicantID  *uint
	IncidentID   *uint
}

func (r *ListComplaintsRequest) ToQuery() usecases.ListComplaintsQuery {
	return usecases.ListComplaintsQuery{
		Status:       r.Status,
		DepartmentID: r.DepartmentID,
		AssigneeID:   r.AssigneeID,
		ApplicantID:  r.ApplicantID,
		IncidentID:   r.IncidentID,
		Page:         r.Page,
		PageSize:     r.PageSize,
	}
}

func parseListComplaintsRequest(c *gin.Context) (*ListComplaintsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListComplaintsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}

	var err error
	if req.DepartmentID, err = parseOptionalUint(c, "department_id"); err != nil {
		return nil, err
	}
	if req.AssigneeID, err = parseOptionalUint(c, "assignee_id"); err != nil {
		return nil, err
	}
	if req.ApplicantID, err = parseOptionalUint(c, "applicant_id"); err != nil {
		return nil, err
	}
	if req.IncidentID, err = parseOptionalUint(c, "incident_id"); err != nil {
		return nil, err
	}

	return req, nil
}

func parseOptionalUint(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name)
	}

	id := uint(value)
	return &id, nil
}

func parseComplaintID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid complaint ID")
	}
	return uint(id), nil
}

func parseRerouteID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid reroute request ID")
	}
	return uint(id), nil
}
