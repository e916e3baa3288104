package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`

	Action  string  `gorm:"size:50;not null;index" json:"action"`
	Details *string `gorm:"type:text" json:"details"`

	UserID              uint   `gorm:"not null;index" json:"userId"`
	User                User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	UserLoginIdentifier string `gorm:"size:50;not null" json:"userLoginIdentifier"`

	TargetResourceID   *uint   `json:"targetResourceId"`
	TargetResourceType *string `gorm:"size:50" json:"targetResourceType"`
}
