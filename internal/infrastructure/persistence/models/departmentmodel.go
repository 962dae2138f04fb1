package models

type DepartmentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	Code      string `gorm:"uniqueIndex;size:20;not null"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
