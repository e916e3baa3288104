package dto

import (
	"github.com/BruksfildServices01/escala-trocas/internal/auth"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/swaprequest"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
)

// SchemaDTO publishes the enums and rules the server validates against,
// so form validation on clients uses the same values.
type SchemaDTO struct {
	EmployeeFunctions []swaprequest.EmployeeFunction `json:"employeeFunctions"`
	ReliefGroups      []swaprequest.ReliefGroup      `json:"reliefGroups"`
	EventTypes        []swaprequest.EventType        `json:"eventTypes"`
	Statuses          []swaprequest.Status           `json:"statuses"`
	Roles             []user.Role                    `json:"roles"`
	Weekdays          []settings.Weekday             `json:"weekdays"`
	Rules             SchemaRules                    `json:"rules"`
}

type SchemaRules struct {
	DateFormat           string `json:"dateFormat"`
	WeekendOnly          bool   `json:"weekendOnly"`
	WeekendEvaluatedIn   string `json:"weekendEvaluatedIn"`
	DistinctGroups       bool   `json:"distinctGroups"`
	DistinctEmployees    bool   `json:"distinctEmployees"`
	DistinctDates        bool   `json:"distinctDates"`
	NoPastDates          bool   `json:"noPastDates"`
	TrocaWhenSameISOWeek bool   `json:"trocaWhenSameIsoWeek"`
	MinPasswordLength    int    `json:"minPasswordLength"`
	Timezone             string `json:"timezone"`
}

func NewSchema(tz string) SchemaDTO {
	return SchemaDTO{
		EmployeeFunctions: swaprequest.AllEmployeeFunctions,
		ReliefGroups:      swaprequest.AllReliefGroups,
		EventTypes:        swaprequest.AllEventTypes,
		Statuses:          swaprequest.AllStatuses,
		Roles:             user.AllRoles,
		Weekdays:          settings.AllWeekdays,
		Rules: SchemaRules{
			DateFormat:           "YYYY-MM-DD",
			WeekendOnly:          true,
			WeekendEvaluatedIn:   "UTC",
			DistinctGroups:       true,
			DistinctEmployees:    true,
			DistinctDates:        true,
			NoPastDates:          true,
			TrocaWhenSameISOWeek: true,
			MinPasswordLength:    auth.MinPasswordLength,
			Timezone:             tz,
		},
	}
}
