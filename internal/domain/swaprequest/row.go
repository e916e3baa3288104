package swaprequest

import "github.com/BruksfildServices01/escala-trocas/internal/models"

// ToModel builds the row to persist. Status and submitter never come from
// the client.
func (v *Validated) ToModel(submittedByID uint) *models.SwapRequest {
	return &models.SwapRequest{
		EmployeeIDOut:    v.EmployeeIDOut,
		EmployeeIDIn:     v.EmployeeIDIn,
		SwapDate:         v.SwapDate,
		PaybackDate:      v.PaybackDate,
		EmployeeFunction: string(v.EmployeeFunction),
		GroupOut:         string(v.GroupOut),
		GroupIn:          string(v.GroupIn),
		EventType:        string(v.EventType),
		Status:           string(InitialStatus()),
		SubmittedByID:    submittedByID,
	}
}
