package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"civicroute/internal/domain/department"
	"civicroute/internal/infrastructure/persistence/mappers"
	"civicroute/internal/infrastructure/persistence/models"
	db "civicroute/internal/shared/db"
	"civicroute/internal/shared/errors"
)

type DepartmentRepository struct {
	db     *gorm.DB
	mapper mappers.DepartmentMapper
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db:     db,
		mapper: mappers.NewDepartmentMapper(),
	}
}

func (r *DepartmentRepository) Save(ctx context.Context, d *department.Department) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save department: %w", err)
	}

	if err := d.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DepartmentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update department: %w", result.Error)
	}

	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*department.Department, error) {
	var model models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("department not found")
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*department.Department, error) {
	var model models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("department not found")
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DepartmentRepository) ListActive(ctx context.Context) ([]*department.Department, error) {
	var departmentModels []models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("active = ?", true).
		Order("name ASC").
		Find(&departmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]*department.Department, len(departmentModels))
	for i, model := range departmentModels {
		d, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		departments[i] = d
	}

	return departments, nil
}
