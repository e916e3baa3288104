package swaprequest

import "github.com/BruksfildServices01/escala-trocas/internal/models"

// MirrorOf builds the reciprocal row of a TROCA: the employee coming in on
// the swap date goes out on the payback date.
func MirrorOf(req *models.SwapRequest) *models.SwapRequest {
	return &models.SwapRequest{
		EmployeeIDOut:    req.EmployeeIDIn,
		EmployeeIDIn:     req.EmployeeIDOut,
		SwapDate:         req.PaybackDate,
		PaybackDate:      req.SwapDate,
		EmployeeFunction: req.EmployeeFunction,
		GroupOut:         req.GroupIn,
		GroupIn:          req.GroupOut,
		EventType:        req.EventType,
		Status:           req.Status,
		Observation:      req.Observation,
		SubmittedByID:    req.SubmittedByID,
		IsMirror:         true,
	}
}

func NeedsMirror(eventType EventType) bool {
	return eventType == EventTroca
}
