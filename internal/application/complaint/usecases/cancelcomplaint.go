package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type CancelComplaintCommand struct {
	ComplaintID uint
	CanceledBy  uint
}

type CancelComplaintResult struct {
	ComplaintID uint   `json:"complaint_id"`
	Status      string `json:"status"`
}

// CancelComplaintUseCase withdraws a complaint on the citizen's request.
// Canceling an already-canceled complaint succeeds without a write.
type CancelComplaintUseCase struct {
	complaintRepo   complaint.Repository
	rerouteRepo     complaint.RerouteRepository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewCancelComplaintUseCase(
	complaintRepo complaint.Repository,
	rerouteRepo complaint.RerouteRepository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CancelComplaintUseCase {
	return &CancelComplaintUseCase{
		complaintRepo:   complaintRepo,
		rerouteRepo:     rerouteRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CancelComplaintUseCase) Execute(
	ctx context.Context,
	cmd CancelComplaintCommand,
) (*CancelComplaintResult, error) {
	uc.logger.Infow("executing cancel complaint use case",
		"complaint_id", cmd.ComplaintID,
		"canceled_by", cmd.CanceledBy)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	if c.Status().IsCanceled() {
		uc.logger.Infow("complaint already canceled", "complaint_id", c.ID())
		return &CancelComplaintResult{ComplaintID: c.ID(), Status: c.Status().String()}, nil
	}

	wasRecommended := c.Status().IsRecommended()

	if err := c.Cancel(); err != nil {
		uc.logger.Warnw("complaint cannot be canceled",
			"complaint_id", cmd.ComplaintID,
			"status", c.Status().String(),
			"error", err)
		return nil, err
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err)
		return nil, err
	}

	// A pending reroute dies with the complaint.
	if wasRecommended {
		uc.rejectPendingReroute(ctx, c.ID(), cmd.CanceledBy)
	}

	if uc.eventDispatcher != nil {
		if err := uc.eventDispatcher.Publish(complaint.NewComplaintCanceledEvent(c.ID())); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("complaint canceled", "complaint_id", c.ID())

	return &CancelComplaintResult{
		ComplaintID: c.ID(),
		Status:      c.Status().String(),
	}, nil
}

func (uc *CancelComplaintUseCase) rejectPendingReroute(ctx context.Context, complaintID, canceledBy uint) {
	pending, err := uc.rerouteRepo.GetPendingByComplaintID(ctx, complaintID)
	if err != nil || pending == nil {
		return
	}
	reviewer := canceledBy
	if reviewer == 0 {
		reviewer = pending.RequesterID()
	}
	if err := pending.Reject(reviewer); err != nil {
		return
	}
	if err := uc.rerouteRepo.Update(ctx, pending); err != nil {
		uc.logger.Warnw("failed to close pending reroute of canceled complaint",
			"complaint_id", complaintID,
			"request_id", pending.ID(),
			"error", err)
	}
}
