package migration

import (
	"civicroute/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ComplaintModel{},
		&models.FollowUpModel{},
		&models.RerouteRequestModel{},
		&models.NormalizationModel{},
		&models.IncidentModel{},
		&models.DepartmentModel{},
	}
}
