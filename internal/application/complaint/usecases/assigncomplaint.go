package usecases

import (
	"context"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/domain/shared/events"
	"civicroute/internal/shared/errors"
	"civicroute/internal/shared/logger"
)

type AssignComplaintCommand struct {
	ComplaintID uint
	AssigneeID  uint
}

type AssignComplaintResult struct {
	ComplaintID uint   `json:"complaint_id"`
	AssigneeID  uint   `json:"assignee_id"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updated_at"`
}

type AssignComplaintUseCase struct {
	complaintRepo   complaint.Repository
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewAssignComplaintUseCase(
	complaintRepo complaint.Repository,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{
		complaintRepo:   complaintRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *AssignComplaintUseCase) Execute(
	ctx context.Context,
	cmd AssignComplaintCommand,
) (*AssignComplaintResult, error) {
	uc.logger.Infow("executing assign complaint use case",
		"complaint_id", cmd.ComplaintID,
		"assignee_id", cmd.AssigneeID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign complaint command", "error", err)
		return nil, err
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to find complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, errors.NewNotFoundError("complaint not found")
	}

	if err := c.Assign(cmd.AssigneeID); err != nil {
		uc.logger.Warnw("complaint cannot be assigned",
			"complaint_id", cmd.ComplaintID,
			"status", c.Status().String(),
			"error", err)
		return nil, err
	}

	// The version check in Update is what decides a two-caseworker race.
	// The loser sees no matching row; by then the complaint is already
	// assigned, so the outcome is an invalid state, not a retryable conflict.
	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("assignment lost a concurrent race",
				"complaint_id", c.ID(),
				"assignee_id", cmd.AssigneeID)
			return nil, errors.NewInvalidStateError("complaint was assigned by another caseworker")
		}
		uc.logger.Errorw("failed to update complaint", "error", err)
		return nil, err
	}

	if uc.eventDispatcher != nil {
		if err := uc.eventDispatcher.Publish(complaint.NewComplaintAssignedEvent(c.ID(), cmd.AssigneeID)); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("complaint assigned",
		"complaint_id", c.ID(),
		"assignee_id", cmd.AssigneeID)

	return &AssignComplaintResult{
		ComplaintID: c.ID(),
		AssigneeID:  cmd.AssigneeID,
		Status:      c.Status().String(),
		UpdatedAt:   c.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (uc *AssignComplaintUseCase) validateCommand(cmd AssignComplaintCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}
	return nil
}
