package models

type ComplaintModel struct {
	ID                  uint   `gorm:"primaryKey"`
	Number              string `gorm:"uniqueIndex;size:50;not null"`
	ApplicantID         uint   `gorm:"not null;index"`
	Title               string `gorm:"size:200;not null"`
	Body                string `gorm:"type:text;not null"`
	AddressText         string `gorm:"size:300"`
	Lat                 *float64
	Lon                 *float64
	Status              string `gorm:"size:20;not null;index"`
	AssigneeID          *uint  `gorm:"index"`
	Answer              string `gorm:"type:text"`
	CurrentDepartmentID *uint  `gorm:"index"`
	AIPredictedDeptID   *uint
	IncidentID          *uint `gorm:"index"`
	IncidentLinkScore   *float64
	IncidentLinkedAt    *int64
	Version             int   `gorm:"not null;default:1"`
	ReceivedAt          int64 `gorm:"not null;index"`
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt            *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ComplaintModel) TableName() string {
	return "complaints"
}

type FollowUpModel struct {
	ID         uint   `gorm:"primaryKey"`
	ParentID   uint   `gorm:"not null;index"`
	Title      string `gorm:"size:200;not null"`
	Body       string `gorm:"type:text;not null"`
	Answer     string `gorm:"type:text"`
	AssigneeID *uint  `gorm:"index"`
	Status     string `gorm:"size:20;not null;index"`
	Version    int    `gorm:"not null;default:1"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt   *int64
}

func (FollowUpModel) TableName() string {
	return "complaint_follow_ups"
}
