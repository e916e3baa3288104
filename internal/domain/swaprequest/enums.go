package swaprequest

type EmployeeFunction string

const (
	FunctionMotorista EmployeeFunction = "MOTORISTA"
	FunctionCobrador  EmployeeFunction = "COBRADOR"
)

var AllEmployeeFunctions = []EmployeeFunction{FunctionMotorista, FunctionCobrador}

func (f EmployeeFunction) Valid() bool {
	for _, v := range AllEmployeeFunctions {
		if f == v {
			return true
		}
	}
	return false
}

// ReliefGroup is the crew rotation category an employee belongs to.
type ReliefGroup string

const (
	GroupG1          ReliefGroup = "G1"
	GroupG2          ReliefGroup = "G2"
	GroupFixoDomingo ReliefGroup = "FIXO_DOMINGO"
	GroupSabDomingo  ReliefGroup = "SAB_DOMINGO"
	GroupFixoSabado  ReliefGroup = "FIXO_SABADO"
)

var AllReliefGroups = []ReliefGroup{
	GroupG1,
	GroupG2,
	GroupFixoDomingo,
	GroupSabDomingo,
	GroupFixoSabado,
}

func (g ReliefGroup) Valid() bool {
	for _, v := range AllReliefGroups {
		if g == v {
			return true
		}
	}
	return false
}

type EventType string

const (
	EventTroca        EventType = "TROCA"
	EventSubstituicao EventType = "SUBSTITUICAO"
)

var AllEventTypes = []EventType{EventTroca, EventSubstituicao}

func (e EventType) Valid() bool {
	return e == EventTroca || e == EventSubstituicao
}
