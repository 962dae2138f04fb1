package dto

import (
	"time"

	"civicroute/internal/domain/complaint"
)

type ComplaintDTO struct {
	ID                    uint        `json:"id"`
	Number                string      `json:"number"`
	ApplicantID           uint        `json:"applicant_id"`
	Title                 string      `json:"title"`
	Body                  string      `json:"body"`
	AddressText           string      `json:"address_text"`
	Lat                   *float64    `json:"lat"`
	Lon                   *float64    `json:"lon"`
	Status                string      `json:"status"`
	AssigneeID            *uint       `json:"assignee_id"`
	Answer                string      `json:"answer"`
	CurrentDepartmentID   *uint       `json:"current_department_id"`
	AIPredictedDepartment *uint       `json:"ai_predicted_department_id"`
	IncidentID            *uint       `json:"incident_id"`
	IncidentLinkScore     *float64    `json:"incident_link_score"`
	IncidentLinkedAt      *time.Time  `json:"incident_linked_at"`
	ReceivedAt            time.Time   `json:"received_at"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
	ClosedAt              *time.Time  `json:"closed_at"`
	FollowUps             []FollowUpDTO `json:"follow_ups,omitempty"`
}

type FollowUpDTO struct {
	ID         uint       `json:"id"`
	ParentID   uint       `json:"parent_id"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	Answer     string     `json:"answer"`
	AssigneeID *uint      `json:"assignee_id"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ClosedAt   *time.Time `json:"closed_at"`
}

type RerouteRequestDTO struct {
	ID           uint       `json:"id"`
	ComplaintID  uint       `json:"complaint_id"`
	OriginDeptID uint       `json:"origin_department_id"`
	TargetDeptID uint       `json:"target_department_id"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	RequesterID  uint       `json:"requester_id"`
	ReviewerID   *uint      `json:"reviewer_id"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type ComplaintListItemDTO struct {
	ID           uint   `json:"id"`
	Number       string `json:"number"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	AssigneeID   *uint  `json:"assignee_id"`
	DepartmentID *uint  `json:"department_id"`
	IncidentID   *uint  `json:"incident_id"`
	ReceivedAt   string `json:"received_at"`
	UpdatedAt    string `json:"updated_at"`
}

func ToComplaintDTO(c *complaint.Complaint, followUps []*complaint.FollowUp) *ComplaintDTO {
	if c == nil {
		return nil
	}

	fuDTOs := make([]FollowUpDTO, 0, len(followUps))
	for _, f := range followUps {
		fuDTOs = append(fuDTOs, *ToFollowUpDTO(f))
	}

	loc := c.Location()
	return &ComplaintDTO{
		ID:                    c.ID(),
		Number:                c.Number(),
		ApplicantID:           c.ApplicantID(),
		Title:                 c.Title(),
		Body:                  c.Body(),
		AddressText:           loc.AddressText(),
		Lat:                   loc.Lat(),
		Lon:                   loc.Lon(),
		Status:                c.Status().String(),
		AssigneeID:            c.AssigneeID(),
		Answer:                c.Answer(),
		CurrentDepartmentID:   c.CurrentDepartmentID(),
		AIPredictedDepartment: c.AIPredictedDepartmentID(),
		IncidentID:            c.IncidentID(),
		IncidentLinkScore:     c.IncidentLinkScore(),
		IncidentLinkedAt:      c.IncidentLinkedAt(),
		ReceivedAt:            c.ReceivedAt(),
		CreatedAt:             c.CreatedAt(),
		UpdatedAt:             c.UpdatedAt(),
		ClosedAt:              c.ClosedAt(),
		FollowUps:             fuDTOs,
	}
}

func ToFollowUpDTO(f *complaint.FollowUp) *FollowUpDTO {
	if f == nil {
		return nil
	}
	return &FollowUpDTO{
		ID:         f.ID(),
		ParentID:   f.ParentID(),
		Title:      f.Title(),
		Body:       f.Body(),
		Answer:     f.Answer(),
		AssigneeID: f.AssigneeID(),
		Status:     f.Status().String(),
		CreatedAt:  f.CreatedAt(),
		ClosedAt:   f.ClosedAt(),
	}
}

func ToRerouteRequestDTO(r *complaint.RerouteRequest) *RerouteRequestDTO {
	if r == nil {
		return nil
	}
	return &RerouteRequestDTO{
		ID:           r.ID(),
		ComplaintID:  r.ComplaintID(),
		OriginDeptID: r.OriginDeptID(),
		TargetDeptID: r.TargetDeptID(),
		Reason:       r.Reason(),
		Status:       r.Status().String(),
		RequesterID:  r.RequesterID(),
		ReviewerID:   r.ReviewerID(),
		CreatedAt:    r.CreatedAt(),
		CompletedAt:  r.CompletedAt(),
	}
}

func ToComplaintListItemDTO(c *complaint.Complaint) *ComplaintListItemDTO {
	if c == nil {
		return nil
	}
	return &ComplaintListItemDTO{
		ID:           c.ID(),
		Number:       c.Number(),
		Title:        c.Title(),
		Status:       c.Status().String(),
		AssigneeID:   c.AssigneeID(),
		DepartmentID: c.CurrentDepartmentID(),
		IncidentID:   c.IncidentID(),
		ReceivedAt:   c.ReceivedAt().Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt().Format(time.RFC3339),
	}
}
