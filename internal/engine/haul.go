package engine

import "time"

// HaulEvent is one commemorative milestone derived from a reference date,
// annotated with the Weton of the day it falls on.
type HaulEvent struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Weton       Weton     `json:"weton"`
	Description string    `json:"description"`
}

// haulOffset describes one fixed commemorative offset. Day offsets are
// event-inclusive: day 1 is the reference date itself, so "3 Hari" is
// reference + 2 days. Year offsets use calendar-year addition, a documented
// simplification versus a strict Javanese Mendak reckoning (see DESIGN.md).
type haulOffset struct {
	title       string
	days        int
	years       int
	description string
}

var haulOffsets = []haulOffset{
	{"3 Hari", 2, 0, "Peringatan tiga hari (telung dina)"},
	{"7 Hari", 6, 0, "Peringatan tujuh hari (mitung dina)"},
	{"40 Hari", 39, 0, "Peringatan empat puluh hari (matangpuluh)"},
	{"100 Hari", 99, 0, "Peringatan seratus hari (nyatus)"},
	{"Mendak 1", 0, 1, "Peringatan satu tahun (mendak pisan)"},
	{"Mendak 2", 0, 2, "Peringatan dua tahun (mendak pindo)"},
	{"1000 Hari (Nyewu)", 999, 0, "Peringatan seribu hari (nyewu)"},
}

// CalculateHaul generates the fixed sequence of seven commemorative dates
// from a reference date, each with its Weton.
func CalculateHaul(referenceDate time.Time) []HaulEvent {
	ref := Midnight(referenceDate)

	events := make([]HaulEvent, 0, len(haulOffsets))
	for _, off := range haulOffsets {
		date := ref.AddDate(off.years, 0, off.days)
		events = append(events, HaulEvent{
			Title:       off.title,
			Date:        date,
			Weton:       CalculateWeton(date),
			Description: off.description,
		})
	}
	return events
}
