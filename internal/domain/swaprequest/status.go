package swaprequest

import "github.com/BruksfildServices01/escala-trocas/internal/httperr"

// ===============================
// Swap Request Status
// ===============================

type Status string

const (
	StatusAgendado     Status = "AGENDADO"
	StatusNaoRealizada Status = "NAO_REALIZADA"
	StatusRealizado    Status = "REALIZADO"
)

var AllStatuses = []Status{StatusAgendado, StatusNaoRealizada, StatusRealizado}

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusRealizado || s == StatusNaoRealizada
}

// InitialStatus is the only status a new request can have.
func InitialStatus() Status {
	return StatusAgendado
}

// CanTransition only lets a scheduled request be closed once.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if from != StatusAgendado || !to.Terminal() {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}
