package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"civicroute/internal/domain/incident"
	"civicroute/internal/infrastructure/persistence/mappers"
	"civicroute/internal/infrastructure/persistence/models"
	db "civicroute/internal/shared/db"
	"civicroute/internal/shared/errors"
)

type IncidentRepository struct {
	db     *gorm.DB
	mapper mappers.IncidentMapper
}

func NewIncidentRepository(db *gorm.DB) *IncidentRepository {
	return &IncidentRepository{
		db:     db,
		mapper: mappers.NewIncidentMapper(),
	}
}

func (r *IncidentRepository) Save(ctx context.Context, i *incident.Incident) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save incident: %w", err)
	}

	if err := i.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *IncidentRepository) Update(ctx context.Context, i *incident.Incident) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IncidentModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update incident: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("incident was modified by another request")
	}

	return nil
}

func (r *IncidentRepository) GetByID(ctx context.Context, id uint) (*incident.Incident, error) {
	var model models.IncidentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("incident not found")
		}
		return nil, fmt.Errorf("failed to find incident: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IncidentRepository) List(
	ctx context.Context,
	filter incident.Filter,
) ([]*incident.Incident, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.IncidentModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	query = query.Order("opened_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var incidentModels []models.IncidentModel
	if err := query.Find(&incidentModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}

	incidents := make([]*incident.Incident, len(incidentModels))
	for i, model := range incidentModels {
		inc, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		incidents[i] = inc
	}

	return incidents, total, nil
}

func (r *IncidentRepository) ListMajor(ctx context.Context, minComplaints int) ([]*incident.Incident, error) {
	var incidentModels []models.IncidentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_count >= ?", minComplaints).
		Order("complaint_count DESC").
		Find(&incidentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list major incidents: %w", err)
	}

	incidents := make([]*incident.Incident, len(incidentModels))
	for i, model := range incidentModels {
		inc, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		incidents[i] = inc
	}

	return incidents, nil
}
