package settings

import "time"

type Weekday string

const (
	Domingo Weekday = "DOMINGO"
	Segunda Weekday = "SEGUNDA"
	Terca   Weekday = "TERCA"
	Quarta  Weekday = "QUARTA"
	Quinta  Weekday = "QUINTA"
	Sexta   Weekday = "SEXTA"
	Sabado  Weekday = "SABADO"
)

// AllWeekdays is indexed by time.Weekday.
var AllWeekdays = []Weekday{Domingo, Segunda, Terca, Quarta, Quinta, Sexta, Sabado}

func (w Weekday) Valid() bool {
	_, ok := w.index()
	return ok
}

func (w Weekday) Time() time.Weekday {
	i, _ := w.index()
	return time.Weekday(i)
}

func FromTime(d time.Weekday) Weekday {
	return AllWeekdays[int(d)%7]
}

func (w Weekday) index() (int, bool) {
	for i, v := range AllWeekdays {
		if v == w {
			return i, true
		}
	}
	return 0, false
}
