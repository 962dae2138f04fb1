package models

type RerouteRequestModel struct {
	ID           uint   `gorm:"primaryKey"`
	ComplaintID  uint   `gorm:"not null;index"`
	OriginDeptID uint   `gorm:"not null"`
	TargetDeptID uint   `gorm:"not null;index"`
	Reason       string `gorm:"type:text;not null"`
	Status       string `gorm:"size:20;not null;index"`
	RequesterID  uint   `gorm:"not null"`
	ReviewerID   *uint
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	CompletedAt  *int64
}

func (RerouteRequestModel) TableName() string {
	return "reroute_requests"
}
