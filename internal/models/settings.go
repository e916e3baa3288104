package models

import "time"

// SettingsID is the primary key of the only settings row.
const SettingsID uint = 1

type Settings struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	SubmissionStartDay string `gorm:"size:10;not null" json:"submissionStartDay"`
	SubmissionEndDay   string `gorm:"size:10;not null" json:"submissionEndDay"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
