package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/infrastructure/persistence/mappers"
	"civicroute/internal/infrastructure/persistence/models"
	db "civicroute/internal/shared/db"
	"civicroute/internal/shared/errors"
)

type FollowUpRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{
		db:     db,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *FollowUpRepository) Save(ctx context.Context, f *complaint.FollowUp) error {
	model := r.mapper.FollowUpToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save follow-up: %w", err)
	}

	if err := f.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *FollowUpRepository) Update(ctx context.Context, f *complaint.FollowUp) error {
	model := r.mapper.FollowUpToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FollowUpModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update follow-up: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("follow-up was modified by another request")
	}

	return nil
}

func (r *FollowUpRepository) GetByID(ctx context.Context, id uint) (*complaint.FollowUp, error) {
	var model models.FollowUpModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("follow-up not found")
		}
		return nil, fmt.Errorf("failed to find follow-up: %w", err)
	}

	return r.mapper.FollowUpToDomain(&model)
}

// FindNewestByParentID returns the most recently created follow-up for the
// parent, or (nil, nil) when the parent has none.
func (r *FollowUpRepository) FindNewestByParentID(ctx context.Context, parentID uint) (*complaint.FollowUp, error) {
	var model models.FollowUpModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("parent_id = ?", parentID).
		Order("id DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find newest follow-up: %w", err)
	}

	return r.mapper.FollowUpToDomain(&model)
}

func (r *FollowUpRepository) ListByParentID(ctx context.Context, parentID uint) ([]*complaint.FollowUp, error) {
	var followUpModels []models.FollowUpModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&followUpModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}

	followUps := make([]*complaint.FollowUp, len(followUpModels))
	for i, model := range followUpModels {
		f, err := r.mapper.FollowUpToDomain(&model)
		if err != nil {
			return nil, err
		}
		followUps[i] = f
	}

	return followUps, nil
}
