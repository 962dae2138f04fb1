package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/department"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type RequestRerouteCommand struct {
	ComplaintID  uint
	TargetDeptID uint
	Reason       string
	RequesterID  uint
}

type RequestRerouteResult struct {
	RequestID       uint   `json:"request_id"`
	ComplaintID     uint   `json:"complaint_id"`
	TargetDeptID    uint   `json:"target_department_id"`
	ComplaintStatus string `json:"complaint_status"`
}

// RequestRerouteUseCase opens a reroute proposal and freezes the complaint at
// RECOMMENDED. At most one pending request may exist per complaint: a second
// request hits either the pending lookup or the optimistic version check on
// the status flip, both of which surface as a conflict.
type RequestRerouteUseCase struct {
	complaintRepo   complaint.Repository
	rerouteRepo     complaint.RerouteRepository
	departmentRepo  department.Repository
	txManager       Transactor
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewRequestRerouteUseCase(
	complaintRepo complaint.Repository,
	rerouteRepo complaint.RerouteRepository,
	departmentRepo department.Repository,
	txManager Transactor,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *RequestRerouteUseCase {
	return &RequestRerouteUseCase{
		complaintRepo:   complaintRepo,
		rerouteRepo:     rerouteRepo,
		departmentRepo:  departmentRepo,
		txManager:       txManager,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *RequestRerouteUseCase) Execute(
	ctx context.Context,
	cmd RequestRerouteCommand,
) (*RequestRerouteResult, error) {
	uc.logger.Infow("executing request reroute use case",
		"complaint_id", cmd.ComplaintID,
		"target_department_id", cmd.TargetDeptID,
		"requester_id", cmd.RequesterID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid request reroute command", "error", err)
		return nil, err
	}

	target, err := uc.departmentRepo.GetByID(ctx, cmd.TargetDeptID)
	if err != nil {
		uc.logger.Errorw("failed to find target department", "error", err, "department_id", cmd.TargetDeptID)
		return nil, errors.NewNotFoundError("target department not found")
	}
	if !target.IsActive() {
		return nil, errors.NewValidationError("target department is not active")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	pending, err := uc.rerouteRepo.GetPendingByComplaintID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to look up pending reroute", "error", err)
		return nil, errors.NewInternalError("failed to look up pending reroute")
	}
	if pending != nil {
		return nil, errors.NewConflictError("a reroute request is already pending for this complaint")
	}

	var originDeptID uint
	if c.CurrentDepartmentID() != nil {
		originDeptID = *c.CurrentDepartmentID()
	}

	request, err := complaint.NewRerouteRequest(c.ID(), originDeptID, cmd.TargetDeptID, cmd.Reason, cmd.RequesterID)
	if err != nil {
		uc.logger.Errorw("invalid reroute request", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := c.MarkRecommended(); err != nil {
		uc.logger.Warnw("complaint cannot enter reroute",
			"complaint_id", c.ID(),
			"status", c.Status().String(),
			"error", err)
		return nil, err
	}

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// The versioned status flip is the race decider: a concurrent
		// request lost here reports a conflict, not a double freeze.
		if err := uc.complaintRepo.Update(txCtx, c); err != nil {
			return err
		}
		return uc.rerouteRepo.Save(txCtx, request)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to save reroute request", "error", txErr)
		return nil, txErr
	}

	if uc.eventDispatcher != nil {
		event := complaint.NewRerouteRequestedEvent(
			c.ID(), request.ID(), originDeptID, cmd.TargetDeptID, cmd.RequesterID)
		if err := uc.eventDispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("reroute requested",
		"complaint_id", c.ID(),
		"request_id", request.ID())

	return &RequestRerouteResult{
		RequestID:       request.ID(),
		ComplaintID:     c.ID(),
		TargetDeptID:    cmd.TargetDeptID,
		ComplaintStatus: c.Status().String(),
	}, nil
}

func (uc *RequestRerouteUseCase) validateCommand(cmd RequestRerouteCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.TargetDeptID == 0 {
		return errors.NewValidationError("target department ID is required")
	}
	if len(cmd.Reason) == 0 {
		return errors.NewValidationError("reason is required")
	}
	if cmd.RequesterID == 0 {
		return errors.NewValidationError("requester ID is required")
	}
	return nil
}
