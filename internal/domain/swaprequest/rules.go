package swaprequest

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
)

const dateLayout = "2006-01-02"

// ParseDate accepts "YYYY-MM-DD" or RFC3339 and returns the calendar date
// as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// IsWeekend reports whether t falls on Saturday or Sunday in UTC.
func IsWeekend(t time.Time) bool {
	wd := t.UTC().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SameISOWeek compares ISO-8601 year and week together, so late December
// and early January dates never collide on week number alone.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.UTC().ISOWeek()
	by, bw := b.UTC().ISOWeek()
	return ay == by && aw == bw
}

func DeriveEventType(swapDate, paybackDate time.Time) EventType {
	if SameISOWeek(swapDate, paybackDate) {
		return EventTroca
	}
	return EventSubstituicao
}

// Candidate is a swap request as submitted by a supervisor.
type Candidate struct {
	EmployeeIDOut    string
	EmployeeIDIn     string
	SwapDate         string
	PaybackDate      string
	EmployeeFunction string
	GroupOut         string
	GroupIn          string
}

// Validated is a Candidate that passed every rule, with its derived type.
type Validated struct {
	EmployeeIDOut    string
	EmployeeIDIn     string
	SwapDate         time.Time
	PaybackDate      time.Time
	EmployeeFunction EmployeeFunction
	GroupOut         ReliefGroup
	GroupIn          ReliefGroup
	EventType        EventType
}

// Validate checks c against the request rules and reports every violation
// at once. today is the current calendar date (midnight UTC); dates before
// it are rejected.
func Validate(c Candidate, today time.Time) (*Validated, error) {
	ve := httperr.NewValidation()

	out := &Validated{
		EmployeeIDOut:    strings.TrimSpace(c.EmployeeIDOut),
		EmployeeIDIn:     strings.TrimSpace(c.EmployeeIDIn),
		EmployeeFunction: EmployeeFunction(strings.TrimSpace(c.EmployeeFunction)),
		GroupOut:         ReliefGroup(strings.TrimSpace(c.GroupOut)),
		GroupIn:          ReliefGroup(strings.TrimSpace(c.GroupIn)),
	}

	if out.EmployeeIDOut == "" {
		ve.Add("employeeIdOut", "Matrícula de saída é obrigatória.")
	}
	if out.EmployeeIDIn == "" {
		ve.Add("employeeIdIn", "Matrícula de entrada é obrigatória.")
	}
	if out.EmployeeIDOut != "" && out.EmployeeIDOut == out.EmployeeIDIn {
		ve.Add("employeeIdIn", "Matrícula de entrada deve ser diferente da matrícula de saída.")
	}

	if !out.EmployeeFunction.Valid() {
		ve.Add("employeeFunction", "Função inválida.")
	}

	groupsOK := true
	if !out.GroupOut.Valid() {
		ve.Add("groupOut", "Grupo de saída inválido.")
		groupsOK = false
	}
	if !out.GroupIn.Valid() {
		ve.Add("groupIn", "Grupo de entrada inválido.")
		groupsOK = false
	}
	if groupsOK && out.GroupOut == out.GroupIn {
		ve.Add("groupIn", "Os grupos de saída e entrada não podem ser iguais.")
	}

	swapOK, paybackOK := false, false
	if d, ok := validateDate(ve, "swapDate", c.SwapDate, today); ok {
		out.SwapDate = d
		swapOK = true
	}
	if d, ok := validateDate(ve, "paybackDate", c.PaybackDate, today); ok {
		out.PaybackDate = d
		paybackOK = true
	}
	if swapOK && paybackOK && out.SwapDate.Equal(out.PaybackDate) {
		ve.Add("paybackDate", "Data de pagamento deve ser diferente da data da troca.")
	}

	if err := ve.Err(); err != nil {
		return nil, err
	}

	out.EventType = DeriveEventType(out.SwapDate, out.PaybackDate)
	return out, nil
}

func validateDate(ve *httperr.ValidationError, field, raw string, today time.Time) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		ve.Add(field, "Data obrigatória.")
		return time.Time{}, false
	}

	d, err := ParseDate(raw)
	if err != nil {
		ve.Add(field, "Data inválida.")
		return time.Time{}, false
	}

	ok := true
	if !IsWeekend(d) {
		ve.Add(field, "A data deve cair em um sábado ou domingo.")
		ok = false
	}
	if d.Before(today) {
		ve.Add(field, "A data não pode estar no passado.")
		ok = false
	}
	return d, ok
}
