package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type ApproveRerouteCommand struct {
	RequestID  uint
	ReviewerID uint
}

type ApproveRerouteResult struct {
	RequestID       uint   `json:"request_id"`
	ComplaintID     uint   `json:"complaint_id"`
	NewDepartmentID uint   `json:"new_department_id"`
	ComplaintStatus string `json:"complaint_status"`
}

// ApproveRerouteUseCase resolves a pending reroute in favor of the hand-off:
// the complaint moves to the target department, loses its assignee and
// re-enters the queue. Approval and the complaint move commit together.
type ApproveRerouteUseCase struct {
	complaintRepo   complaint.Repository
	rerouteRepo     complaint.RerouteRepository
	txManager       Transactor
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewApproveRerouteUseCase(
	complaintRepo complaint.Repository,
	rerouteRepo complaint.RerouteRepository,
	txManager Transactor,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *ApproveRerouteUseCase {
	return &ApproveRerouteUseCase{
		complaintRepo:   complaintRepo,
		rerouteRepo:     rerouteRepo,
		txManager:       txManager,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *ApproveRerouteUseCase) Execute(
	ctx context.Context,
	cmd ApproveRerouteCommand,
) (*ApproveRerouteResult, error) {
	uc.logger.Infow("executing approve reroute use case",
		"request_id", cmd.RequestID,
		"reviewer_id", cmd.ReviewerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid approve reroute command", "error", err)
		return nil, err
	}

	request, err := uc.rerouteRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to find reroute request", "error", err, "request_id", cmd.RequestID)
		return nil, errors.NewNotFoundError("reroute request not found")
	}

	if err := request.Approve(cmd.ReviewerID); err != nil {
		uc.logger.Warnw("reroute request cannot be approved",
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

	if err := c.RerouteTo(request.TargetDeptID()); err != nil {
		uc.logger.Warnw("complaint cannot be rerouted",
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
		uc.logger.Errorw("failed to apply reroute approval", "error", txErr)
		return nil, txErr
	}

	if uc.eventDispatcher != nil {
		event := complaint.NewRerouteResolvedEvent(c.ID(), request.ID(), true, cmd.ReviewerID)
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("reroute approved",
		"request_id", request.ID(),
		"complaint_id", c.ID(),
		"new_department_id", request.TargetDeptID())

	return &ApproveRerouteResult{
		RequestID:       request.ID(),
		ComplaintID:     c.ID(),
		NewDepartmentID: request.TargetDeptID(),
		ComplaintStatus: c.Status().String(),
	}, nil
}

func (uc *ApproveRerouteUseCase) validateCommand(cmd ApproveRerouteCommand) error {
	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}
	if cmd.ReviewerID == 0 {
		return errors.NewValidationError("reviewer ID is required")
	}
	return nil
}
