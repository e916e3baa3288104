package dto

import (
	"time"

	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

// UserDTO is every public field of a user. The password hash never
// leaves the server.
type UserDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	LoginIdentifier string    `json:"loginIdentifier"`
	Role            string    `json:"role"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromUser(u *models.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Name:            u.Name,
		LoginIdentifier: u.LoginIdentifier,
		Role:            u.Role,
		Active:          u.Active,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func FromUsers(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}
