package complaint

import (
	"context"

	vo "civicroute/internal/domain/complaint/valueobjects"
)

// Repository persists complaint aggregates. Update applies an optimistic
// version check: a lost race surfaces as an invalid state error, never a
// silent overwrite.
type Repository interface {
	Save(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	GetByNumber(ctx context.Context, number string) (*Complaint, error)
	List(ctx context.Context, filter Filter) ([]*Complaint, int64, error)
	ListByIncidentID(ctx context.Context, incidentID uint) ([]*Complaint, error)
}

// Filter narrows complaint listings.
type Filter struct {
	Status       *vo.ComplaintStatus
	DepartmentID *uint
	AssigneeID   *uint
	ApplicantID  *uint
	IncidentID   *uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

// FollowUpRepository persists follow-up inquiries. FindNewestByParentID
// returns (nil, nil) when the parent has no follow-ups.
type FollowUpRepository interface {
	Save(ctx context.Context, f *FollowUp) error
	Update(ctx context.Context, f *FollowUp) error
	GetByID(ctx context.Context, id uint) (*FollowUp, error)
	FindNewestByParentID(ctx context.Context, parentID uint) (*FollowUp, error)
	ListByParentID(ctx context.Context, parentID uint) ([]*FollowUp, error)
}

// RerouteRepository persists reroute requests. GetPendingByComplaintID
// returns (nil, nil) when no pending request exists.
type RerouteRepository interface {
	Save(ctx context.Context, r *RerouteRequest) error
	Update(ctx context.Context, r *RerouteRequest) error
	GetByID(ctx context.Context, id uint) (*RerouteRequest, error)
	GetPendingByComplaintID(ctx context.Context, complaintID uint) (*RerouteRequest, error)
	ListByComplaintID(ctx context.Context, complaintID uint) ([]*RerouteRequest, error)
}
