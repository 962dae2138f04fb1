package models

type IncidentModel struct {
	ID             uint   `gorm:"primaryKey"`
	Title          string `gorm:"size:200;not null"`
	Status         string `gorm:"size:20;not null;index"`
	ComplaintCount int    `gorm:"not null;default:1;index"`
	CentroidLat    *float64
	CentroidLon    *float64
	Version        int   `gorm:"not null;default:1"`
	OpenedAt       int64 `gorm:"not null"`
	LastOccurredAt *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt       *int64
}

func (IncidentModel) TableName() string {
	return "incidents"
}
