package mappers

import (
	"civicroute/internal/domain/department"
	"civicroute/internal/infrastructure/persistence/models"
)

// DepartmentMapper handles the conversion between Department domain entities
// and persistence models.
type DepartmentMapper interface {
	ToModel(d *department.Department) *models.DepartmentModel
	ToDomain(model *models.DepartmentModel) (*department.Department, error)
}

type DepartmentMapperImpl struct{}

func NewDepartmentMapper() DepartmentMapper {
	return &DepartmentMapperImpl{}
}

func (m *DepartmentMapperImpl) ToModel(d *department.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:        d.ID(),
		Name:      d.Name(),
		Code:      d.Code(),
		Active:    d.IsActive(),
		CreatedAt: d.CreatedAt().UnixMilli(),
		UpdatedAt: d.UpdatedAt().UnixMilli(),
	}
}

func (m *DepartmentMapperImpl) ToDomain(model *models.DepartmentModel) (*department.Department, error) {
	return department.ReconstructDepartment(
		model.ID,
		model.Name,
		model.Code,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
