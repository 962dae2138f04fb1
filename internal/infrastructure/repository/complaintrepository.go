package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"civicroute/internal/domain/complaint"
	"civicroute/internal/infrastructure/persistence/mappers"
	"civicroute/internal/infrastructure/persistence/models"
	db "civicroute/internal/shared/db"
	"civicroute/internal/shared/errors"
)

// allowedComplaintOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedComplaintOrderByFields = map[string]bool{
	"id":           true,
	"number":       true,
	"title":        true,
	"status":       true,
	"applicant_id": true,
	"assignee_id":  true,
	"received_at":  true,
	"created_at":   true,
	"updated_at":   true,
}

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     db,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save complaint: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update persists the aggregate with an optimistic version check. The domain
// entity has already bumped its version, so the row must still hold the
// previous one. Zero rows affected means a concurrent writer won.
func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so cleared pointer columns (assignee on reroute approval)
	// are written as NULL instead of being skipped as zero values.
	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("complaint was modified by another request")
	}

	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) GetByNumber(ctx context.Context, number string) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) List(
	ctx context.Context,
	filter complaint.Filter,
) ([]*complaint.Complaint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ComplaintModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.DepartmentID != nil {
		query = query.Where("current_department_id = ?", *filter.DepartmentID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.ApplicantID != nil {
		query = query.Where("applicant_id = ?", *filter.ApplicantID)
	}
	if filter.IncidentID != nil {
		query = query.Where("incident_id = ?", *filter.IncidentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedComplaintOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("received_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var complaintModels []models.ComplaintModel
	if err := query.Find(&complaintModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, len(complaintModels))
	for i, model := range complaintModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		complaints[i] = c
	}

	return complaints, total, nil
}

func (r *ComplaintRepository) ListByIncidentID(ctx context.Context, incidentID uint) ([]*complaint.Complaint, error) {
	var complaintModels []models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("incident_id = ?", incidentID).
		Order("id ASC").
		Find(&complaintModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints by incident: %w", err)
	}

	complaints := make([]*complaint.Complaint, len(complaintModels))
	for i, model := range complaintModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		complaints[i] = c
	}

	return complaints, nil
}
