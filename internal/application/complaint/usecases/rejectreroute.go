package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type RejectRerouteCommand struct {
	RequestID  uint
	ReviewerID uint
}

type RejectRerouteResult struct {
	RequestID       uint   `json:"request_id"`
	ComplaintID     uint   `json:"complaint_id"`
	ComplaintStatus string `json:"complaint_status"`
}

// RejectRerouteUseCase resolves a pending reroute against the hand-off. The
// complaint stays with its original department; an assigned complaint resumes
// IN_PROGRESS under the same caseworker.
type RejectRerouteUseCase struct {
	complaintRepo   complaint.Repository
	rerouteRepo     complaint.RerouteRepository
	txManager       Transactor
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewRejectRerouteUseCase(
	complaintRepo complaint.Repository,
	rerouteRepo complaint.RerouteRepository,
	txManager Transactor,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *RejectRerouteUseCase {
	return &RejectRerouteUseCase{
		complaintRepo:   complaintRepo,
		rerouteRepo:     rerouteRepo,
		txManager:       txManager,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *RejectRerouteUseCase) Execute(
	ctx context.Context,
	cmd RejectRerouteCommand,
) (*RejectRerouteResult, error) {
	uc.logger.Infow("executing reject reroute use case",
		"request_id", cmd.RequestID,
		"reviewer_id", cmd.ReviewerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid reject reroute command", "error", err)
		return nil, err
	}

	request, err := uc.rerouteRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to find reroute request", "error", err, "request_id", cmd.RequestID)
		return nil, errors.NewNotFoundError("reroute request not found")
	}

	if err := request.Reject(cmd.ReviewerID); err != nil {
		uc.logger.Warnw("reroute request cannot be rejected",
			"request_id", cmd.RequestID,
			"status", request.Status().String(),
			"error", err)
		return nil, err
	}

	c, err := uc.complaintRepo.GetByID(ctx, request.ComplaintID())
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", request.ComplaintID())
		return nil, errors.NewNotFoundError("complaint not found")
	}

	if err := c.ReturnFromReroute(); err != nil {
		uc.logger.Warnw("complaint cannot return from reroute",
			"complaint_id", c.ID(),
			"status", c.Status().String(),
			"error", err)
		return nil, err
	}

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.rerouteRepo.Update(txCtx, request); err != nil {
			return err
		}
		return uc.complaintRepo.Update(txCtx, c)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to apply reroute rejection", "error", txErr)
		return nil, txErr
	}

	if uc.eventDispatcher != nil {
		event := complaint.NewRerouteResolvedEvent(c.ID(), request.ID(), false, cmd.ReviewerID)
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("reroute rejected",
		"request_id", request.ID(),
		"complaint_id", c.ID())

	return &RejectRerouteResult{
		RequestID:       request.ID(),
		ComplaintID:     c.ID(),
		ComplaintStatus: c.Status().String(),
	}, nil
}

func (uc *RejectRerouteUseCase) validateCommand(cmd RejectRerouteCommand) error {
	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}
	if cmd.ReviewerID == 0 {
		return errors.NewValidationError("reviewer ID is required")
	}
	return nil
}
