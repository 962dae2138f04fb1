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

type NormalizationRepository struct {
	db     *gorm.DB
	mapper mappers.NormalizationMapper
}

func NewNormalizationRepository(db *gorm.DB) *NormalizationRepository {
	return &NormalizationRepository{
		db:     db,
		mapper: mappers.NewNormalizationMapper(),
	}
}

func (r *NormalizationRepository) Save(ctx context.Context, n *complaint.Normalization) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save normalization: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *NormalizationRepository) GetCurrentByComplaintID(ctx context.Context, complaintID uint) (*complaint.Normalization, error) {
	var model models.NormalizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ? AND is_current = ?", complaintID, true).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no current normalization for complaint")
		}
		return nil, fmt.Errorf("failed to find current normalization: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// MarkSuperseded flips all prior current rows for the complaint. Zero rows is
// fine: the first normalization has nothing to supersede.
func (r *NormalizationRepository) MarkSuperseded(ctx context.Context, complaintID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NormalizationModel{}).
		Where("complaint_id = ? AND is_current = ?", complaintID, true).
		Update("is_current", false)

	if result.Error != nil {
		return fmt.Errorf("failed to mark normalizations superseded: %w", result.Error)
	}

	return nil
}
