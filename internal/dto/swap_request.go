package dto

import (
	"time"

	"github.com/BruksfildServices01/escala-trocas/internal/domain/swaprequest"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

type SwapRequestDTO struct {
	ID               uint      `json:"id"`
	EmployeeIDOut    string    `json:"employeeIdOut"`
	EmployeeIDIn     string    `json:"employeeIdIn"`
	SwapDate         string    `json:"swapDate"`
	PaybackDate      string    `json:"paybackDate"`
	EmployeeFunction string    `json:"employeeFunction"`
	GroupOut         string    `json:"groupOut"`
	GroupIn          string    `json:"groupIn"`
	EventType        string    `json:"eventType"`
	Status           string    `json:"status"`
	Observation      *string   `json:"observation"`
	SubmittedByID    uint      `json:"submittedById"`
	IsMirror         bool      `json:"isMirror"`
	RelatedRequestID *uint     `json:"relatedRequestId"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromSwapRequest(r *models.SwapRequest) SwapRequestDTO {
	return SwapRequestDTO{
		ID:               r.ID,
		EmployeeIDOut:    r.EmployeeIDOut,
		EmployeeIDIn:     r.EmployeeIDIn,
		SwapDate:         swaprequest.FormatDate(r.SwapDate),
		PaybackDate:      swaprequest.FormatDate(r.PaybackDate),
		EmployeeFunction: r.EmployeeFunction,
		GroupOut:         r.GroupOut,
		GroupIn:          r.GroupIn,
		EventType:        r.EventType,
		Status:           r.Status,
		Observation:      r.Observation,
		SubmittedByID:    r.SubmittedByID,
		IsMirror:         r.IsMirror,
		RelatedRequestID: r.RelatedRequestID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromSwapRequests(rows []models.SwapRequest) []SwapRequestDTO {
	out := make([]SwapRequestDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromSwapRequest(&rows[i]))
	}
	return out
}
