package complaint

import (
	"fmt"
	"time"

	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/shared/errors"
)

// RerouteRequest is one pending-or-resolved proposal to move a complaint to a
// different department. Resolution happens exactly once; a resolved request is
// immutable.
type RerouteRequest struct {
	id           uint
	complaintID  uint
	originDeptID uint
	targetDeptID uint
	reason       string
	status       vo.RerouteStatus
	requesterID  uint
	reviewerID   *uint
	createdAt    time.Time
	completedAt  *time.Time
}

// NewRerouteRequest creates a PENDING request. The at-most-one-pending rule is
// enforced by the use case and the store, not here.
func NewRerouteRequest(
	complaintID uint,
	originDeptID uint,
	targetDeptID uint,
	reason string,
	requesterID uint,
) (*RerouteRequest, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if targetDeptID == 0 {
		return nil, fmt.Errorf("target department ID is required")
	}
	if originDeptID == targetDeptID {
		return nil, fmt.Errorf("target department must differ from the origin")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("request reason is required")
	}

	return &RerouteRequest{
		complaintID:  complaintID,
		originDeptID: originDeptID,
		targetDeptID: targetDeptID,
		reason:       reason,
		status:       vo.RerouteStatusPending,
		requesterID:  requesterID,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructRerouteRequest rebuilds a request from persistence.
func ReconstructRerouteRequest(
	id uint,
	complaintID uint,
	originDeptID uint,
	targetDeptID uint,
	reason string,
	status vo.RerouteStatus,
	requesterID uint,
	reviewerID *uint,
	createdAt time.Time,
	completedAt *time.Time,
) (*RerouteRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("reroute request ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid reroute status: %s", status)
	}

	return &RerouteRequest{
		id:           id,
		complaintID:  complaintID,
		originDeptID: originDeptID,
		targetDeptID: targetDeptID,
		reason:       reason,
		status:       status,
		requesterID:  requesterID,
		reviewerID:   reviewerID,
		createdAt:    createdAt,
		completedAt:  completedAt,
	}, nil
}

func (r *RerouteRequest) ID() uint                 { return r.id }
func (r *RerouteRequest) ComplaintID() uint        { return r.complaintID }
func (r *RerouteRequest) OriginDeptID() uint       { return r.originDeptID }
func (r *RerouteRequest) TargetDeptID() uint       { return r.targetDeptID }
func (r *RerouteRequest) Reason() string           { return r.reason }
func (r *RerouteRequest) Status() vo.RerouteStatus { return r.status }
func (r *RerouteRequest) RequesterID() uint        { return r.requesterID }
func (r *RerouteRequest) ReviewerID() *uint        { return r.reviewerID }
func (r *RerouteRequest) CreatedAt() time.Time     { return r.createdAt }
func (r *RerouteRequest) CompletedAt() *time.Time  { return r.completedAt }

func (r *RerouteRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reroute request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reroute request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Approve resolves the request in favor of the hand-off.
func (r *RerouteRequest) Approve(reviewerID uint) error {
	return r.resolve(vo.RerouteStatusApproved, reviewerID)
}

// Reject resolves the request against the hand-off.
func (r *RerouteRequest) Reject(reviewerID uint) error {
	return r.resolve(vo.RerouteStatusRejected, reviewerID)
}

func (r *RerouteRequest) resolve(newStatus vo.RerouteStatus, reviewerID uint) error {
	if reviewerID == 0 {
		return errors.NewValidationError("reviewer ID is required")
	}
	if !r.status.IsPending() {
		return errors.NewInvalidStateError("reroute request has already been resolved")
	}

	now := time.Now()
	r.status = newStatus
	r.reviewerID = &reviewerID
	r.completedAt = &now
	return nil
}
