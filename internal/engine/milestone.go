package engine

import (
	"math"
	"sort"
	"time"
)

// MilestoneType identifies the unit a threshold is expressed in.
type MilestoneType string

const (
	MilestoneDays    MilestoneType = "days"
	MilestoneHours   MilestoneType = "hours"
	MilestoneMinutes MilestoneType = "minutes"
	MilestoneSeconds MilestoneType = "seconds"
)

// Milestone is one evaluated threshold from the fixed catalog.
// Percentage is always clamped to [0,100]; a reached milestone has
// DaysUntil 0 and Date set to the historical moment it was crossed.
type Milestone struct {
	Type        MilestoneType `json:"type"`
	Target      int64         `json:"target"`
	Reached     bool          `json:"reached"`
	Date        time.Time     `json:"date"`
	DaysUntil   int           `json:"daysUntil"`
	Percentage  float64       `json:"percentage"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
}

// YearProgress describes how far the current calendar year has advanced.
type YearProgress struct {
	Percentage    float64 `json:"percentage"`
	DaysElapsed   int     `json:"daysElapsed"`
	DaysRemaining int     `json:"daysRemaining"`
	DaysInYear    int     `json:"daysInYear"`
}

// MilestoneReport is the full scanner output: every catalog entry evaluated,
// the year progress, and the three soonest not-yet-reached entries.
type MilestoneReport struct {
	Milestones []Milestone  `json:"milestones"`
	Year       YearProgress `json:"yearProgress"`
	Upcoming   []Milestone  `json:"upcoming"`
}

type thresholdEntry struct {
	typ         MilestoneType
	target      int64
	label       string
	description string
}

// thresholdCatalog is the fixed set of large-number thresholds.
var thresholdCatalog = []thresholdEntry{
	{MilestoneDays, 1_000, "1.000 Hari", "Seribu hari pertama kehidupan"},
	{MilestoneDays, 5_000, "5.000 Hari", "Lima ribu hari hidup"},
	{MilestoneDays, 10_000, "10.000 Hari", "Sepuluh ribu hari hidup"},
	{MilestoneDays, 15_000, "15.000 Hari", "Lima belas ribu hari hidup"},
	{MilestoneDays, 20_000, "20.000 Hari", "Dua puluh ribu hari hidup"},
	{MilestoneDays, 25_000, "25.000 Hari", "Dua puluh lima ribu hari hidup"},
	{MilestoneDays, 30_000, "30.000 Hari", "Tiga puluh ribu hari hidup"},
	{MilestoneHours, 100_000, "100.000 Jam", "Seratus ribu jam hidup"},
	{MilestoneHours, 250_000, "250.000 Jam", "Seperempat juta jam hidup"},
	{MilestoneHours, 500_000, "500.000 Jam", "Setengah juta jam hidup"},
	{MilestoneMinutes, 1_000_000, "1 Juta Menit", "Satu juta menit hidup"},
	{MilestoneMinutes, 10_000_000, "10 Juta Menit", "Sepuluh juta menit hidup"},
	{MilestoneMinutes, 25_000_000, "25 Juta Menit", "Dua puluh lima juta menit hidup"},
	{MilestoneSeconds, 1_000_000_000, "1 Miliar Detik", "Satu miliar detik hidup"},
	{MilestoneSeconds, 2_000_000_000, "2 Miliar Detik", "Dua miliar detik hidup"},
	{MilestoneSeconds, 3_000_000_000, "3 Miliar Detik", "Tiga miliar detik hidup"},
}

const upcomingLimit = 3

var unitDurations = map[MilestoneType]time.Duration{
	MilestoneDays:    hoursPerDay * time.Hour,
	MilestoneHours:   time.Hour,
	MilestoneMinutes: time.Minute,
	MilestoneSeconds: time.Second,
}

// ScanMilestones evaluates the threshold catalog against the current totals
// of an AgeBreakdown and computes the calendar-year progress.
func ScanMilestones(b AgeBreakdown, now time.Time) MilestoneReport {
	report := MilestoneReport{
		Milestones: make([]Milestone, 0, len(thresholdCatalog)),
		Year:       yearProgress(now),
	}

	totals := map[MilestoneType]int64{
		MilestoneDays:    b.TotalDays,
		MilestoneHours:   b.TotalHours,
		MilestoneMinutes: b.TotalMinutes,
		MilestoneSeconds: b.TotalSeconds,
	}

	for _, entry := range thresholdCatalog {
		report.Milestones = append(report.Milestones,
			evaluateThreshold(entry, totals[entry.typ], now))
	}

	report.Upcoming = soonestUpcoming(report.Milestones)
	return report
}

func evaluateThreshold(entry thresholdEntry, current int64, now time.Time) Milestone {
	m := Milestone{
		Type:        entry.typ,
		Target:      entry.target,
		Label:       entry.label,
		Description: entry.description,
		Reached:     current >= entry.target,
	}

	unit := unitDurations[entry.typ]
	remaining := time.Duration(entry.target-current) * unit

	m.Percentage = math.Min(float64(current)/float64(entry.target)*100, 100)

	if m.Reached {
		// Historical crossing moment: project backwards from now.
		m.Date = now.Add(remaining)
		return m
	}

	m.Date = now.Add(remaining)
	m.DaysUntil = int(math.Ceil(float64(remaining.Milliseconds()) / msPerDay))
	return m
}

func soonestUpcoming(all []Milestone) []Milestone {
	var pending []Milestone
	for _, m := range all {
		if !m.Reached {
			pending = append(pending, m)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DaysUntil < pending[j].DaysUntil
	})
	if len(pending) > upcomingLimit {
		pending = pending[:upcomingLimit]
	}
	return pending
}

// yearProgress measures elapsed days in the current calendar year against its
// actual length (365 or 366).
func yearProgress(now time.Time) YearProgress {
	daysInYear := 365
	if IsLeapYear(now.Year()) {
		daysInYear = 366
	}
	elapsed := now.YearDay()
	return YearProgress{
		Percentage:    float64(elapsed) / float64(daysInYear) * 100,
		DaysElapsed:   elapsed,
		DaysRemaining: daysInYear - elapsed,
		DaysInYear:    daysInYear,
	}
}
