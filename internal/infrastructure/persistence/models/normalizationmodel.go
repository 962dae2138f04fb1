package models

import (
	"gorm.io/datatypes"
)

type NormalizationModel struct {
	ID              uint   `gorm:"primaryKey"`
	ComplaintID     uint   `gorm:"not null;index:idx_normalizations_complaint_current"`
	RecommendedDept uint   `gorm:"not null"`
	NeutralSummary  string `gorm:"type:text"`
	Topic           string `gorm:"size:100"`
	Category        string `gorm:"size:100"`
	Keywords        datatypes.JSON
	RoutingRank     datatypes.JSON
	Embedding       datatypes.JSON
	IsCurrent       bool  `gorm:"not null;default:true;index:idx_normalizations_complaint_current"`
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
}

func (NormalizationModel) TableName() string {
	return "complaint_normalizations"
}
