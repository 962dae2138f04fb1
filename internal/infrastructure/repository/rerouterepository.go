package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"civicroute/internal/domain/complaint"
	vo "civicroute/internal/domain/complaint/valueobjects"
	"civicroute/internal/infrastructure/persistence/mappers"
	"civicroute/internal/infrastructure/persistence/models"
	db "civicroute/internal/shared/db"
	"civicroute/internal/shared/errors"
)

type RerouteRepository struct {
	db     *gorm.DB
	mapper mappers.RerouteMapper
}

func NewRerouteRepository(db *gorm.DB) *RerouteRepository {
	return &RerouteRepository{
		db:     db,
		mapper: mappers.NewRerouteMapper(),
	}
}

func (r *RerouteRepository) Save(ctx context.Context, req *complaint.RerouteRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reroute request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *RerouteRepository) Update(ctx context.Context, req *complaint.RerouteRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	// Resolving a pending request is one-shot: the status guard keeps two
	// reviewers from both winning.
	result := tx.
		Model(&models.RerouteRequestModel{}).
		Where("id = ? AND status = ?", model.ID, vo.RerouteStatusPending.String()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update reroute request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewInvalidStateError("reroute request has already been resolved")
	}

	return nil
}

func (r *RerouteRepository) GetByID(ctx context.Context, id uint) (*complaint.RerouteRequest, error) {
	var model models.RerouteRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("reroute request not found")
		}
		return nil, fmt.Errorf("failed to find reroute request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetPendingByComplaintID returns the pending request for a complaint, or
// (nil, nil) when none exists.
func (r *RerouteRepository) GetPendingByComplaintID(ctx context.Context, complaintID uint) (*complaint.RerouteRequest, error) {
	var model models.RerouteRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ? AND status = ?", complaintID, vo.RerouteStatusPending.String()).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending reroute request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RerouteRepository) ListByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.RerouteRequest, error) {
	var requestModels []models.RerouteRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("id ASC").
		Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reroute requests: %w", err)
	}

	requests := make([]*complaint.RerouteRequest, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}

	return requests, nil
}
