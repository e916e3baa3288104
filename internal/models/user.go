package models

import "time"

type User struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:100;not null" json:"name"`
	LoginIdentifier string `gorm:"size:50;uniqueIndex;not null" json:"loginIdentifier"`
	PasswordHash    string `gorm:"size:255;not null" json:"-"`
	Role            string `gorm:"size:20;not null;default:'ENCARREGADO'" json:"role"`
	Active          bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
