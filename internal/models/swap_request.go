package models

import "time"

type SwapRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeIDOut string `gorm:"size:50;not null" json:"employeeIdOut"`
	EmployeeIDIn  string `gorm:"size:50;not null" json:"employeeIdIn"`

	// Calendar dates, stored as midnight UTC.
	SwapDate    time.Time `gorm:"not null;index" json:"swapDate"`
	PaybackDate time.Time `gorm:"not null" json:"paybackDate"`

	EmployeeFunction string  `gorm:"size:20;not null" json:"employeeFunction"`
	GroupOut         string  `gorm:"size:20;not null" json:"groupOut"`
	GroupIn          string  `gorm:"size:20;not null" json:"groupIn"`
	EventType        string  `gorm:"size:20;not null" json:"eventType"`
	Status           string  `gorm:"size:20;not null;default:'AGENDADO';index" json:"status"`
	Observation      *string `gorm:"type:text" json:"observation"`

	SubmittedByID uint `gorm:"not null;index" json:"submittedById"`
	SubmittedBy   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	IsMirror         bool         `gorm:"not null;default:false" json:"isMirror"`
	RelatedRequestID *uint        `gorm:"uniqueIndex" json:"relatedRequestId"`
	RelatedRequest   *SwapRequest `gorm:"foreignKey:RelatedRequestID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
