package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/wetonku/go-weton/internal/config"
)

// AgeDescription extends an AgeBreakdown with formatted strings, the
// life-expectancy percentage and the named milestone lists.
type AgeDescription struct {
	Short  string `json:"short"`  // "34 tahun"
	Medium string `json:"medium"` // "34 tahun 2 bulan"
	Long   string `json:"long"`   // "34 tahun 2 bulan 5 hari"
	Exact  string `json:"exact"`  // full decomposition with hour remainder
	Human  string `json:"human"`  // joined form, leading zero units omitted

	// LifePercentage is clamped to 100 for display; LifePercentageExact
	// keeps the unclamped value.
	LifePercentage      float64 `json:"lifePercentage"`
	LifePercentageExact float64 `json:"lifePercentageExact"`

	Passed   []NamedMilestone `json:"passed"`
	Upcoming []NamedMilestone `json:"upcoming"`
}

// NamedMilestone is a named age landmark, either year-based ("Legal Adult")
// or day-based ("10.000 Hari").
type NamedMilestone struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
}

type yearMilestone struct {
	age   int
	label string
}

// yearMilestones are the named whole-year landmarks.
var yearMilestones = []yearMilestone{
	{1, "Ulang Tahun Pertama"},
	{5, "Lima Tahun"},
	{10, "Satu Dekade"},
	{13, "Remaja"},
	{17, "Tujuh Belas"},
	{18, "Legal Adult"},
	{21, "Dua Puluh Satu"},
	{25, "Quarter Century"},
	{30, "Tiga Dekade"},
	{40, "Empat Dekade"},
	{50, "Setengah Abad"},
	{60, "Enam Dekade"},
	{65, "Usia Pensiun"},
	{70, "Tujuh Dekade"},
	{75, "Tiga Perempat Abad"},
	{80, "Delapan Dekade"},
	{90, "Sembilan Dekade"},
	{100, "Satu Abad"},
}

// dayMilestones are the named day-count landmarks.
var dayMilestones = []int64{1_000, 5_000, 10_000, 15_000, 20_000, 25_000, 30_000}

const (
	passedLimit        = 5
	upcomingNamedLimit = 3
	yearLookaheadYears = 5
	dayLookaheadDays   = 365
)

// DescribeAge derives the human-readable extension of an AgeBreakdown.
func DescribeAge(b AgeBreakdown, birth, now time.Time) AgeDescription {
	expectancyDays := config.LifeExpectancyYears * config.DaysPerYear
	exactPct := float64(b.TotalDays) / expectancyDays * 100

	d := AgeDescription{
		Short:  fmt.Sprintf("%d tahun", b.Years),
		Medium: fmt.Sprintf("%d tahun %d bulan", b.Years, b.Months),
		Long:   fmt.Sprintf("%d tahun %d bulan %d hari", b.Years, b.Months, b.Days),
		Exact: fmt.Sprintf("%d tahun %d bulan %d hari %d jam", b.Years, b.Months, b.Days,
			b.TotalHours%hoursPerDay),
		Human:               humanAge(b),
		LifePercentage:      math.Min(exactPct, 100),
		LifePercentageExact: exactPct,
	}

	d.Passed, d.Upcoming = namedMilestones(b, Midnight(birth), Midnight(now))
	return d
}

// humanAge joins the non-zero leading units with ", " and a final " dan ".
// "0 tahun 0 bulan 12 hari" reads "12 hari"; "1 tahun 0 bulan 3 hari" keeps
// the zero month because only leading zero units are omitted.
func humanAge(b AgeBreakdown) string {
	parts := []string{
		fmt.Sprintf("%d tahun", b.Years),
		fmt.Sprintf("%d bulan", b.Months),
		fmt.Sprintf("%d hari", b.Days),
	}
	values := []int{b.Years, b.Months, b.Days}

	start := 0
	for start < len(values)-1 && values[start] == 0 {
		start++
	}
	parts = parts[start:]

	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " dan " + parts[len(parts)-1]
}

// namedMilestones partitions the catalogs into the last 5 passed and the next
// 3 upcoming landmarks. Year landmarks look ahead 5 years, day landmarks 365
// days.
func namedMilestones(b AgeBreakdown, birth, today time.Time) (passed, upcoming []NamedMilestone) {
	var all []NamedMilestone
	for _, ym := range yearMilestones {
		all = append(all, NamedMilestone{
			Label: ym.label,
			Date:  birth.AddDate(ym.age, 0, 0),
		})
	}
	for _, days := range dayMilestones {
		all = append(all, NamedMilestone{
			Label: fmt.Sprintf("%s Hari", formatThousands(days)),
			Date:  birth.AddDate(0, 0, int(days)),
		})
	}

	yearHorizon := today.AddDate(yearLookaheadYears, 0, 0)
	dayHorizon := today.AddDate(0, 0, dayLookaheadDays)

	for _, m := range all {
		switch {
		case !m.Date.After(today):
			passed = append(passed, m)
		case strings.HasSuffix(m.Label, "Hari") && !m.Date.After(dayHorizon),
			!strings.HasSuffix(m.Label, "Hari") && !m.Date.After(yearHorizon):
			upcoming = append(upcoming, m)
		}
	}

	sortByDate(passed)
	sortByDate(upcoming)

	if len(passed) > passedLimit {
		passed = passed[len(passed)-passedLimit:]
	}
	if len(upcoming) > upcomingNamedLimit {
		upcoming = upcoming[:upcomingNamedLimit]
	}
	return passed, upcoming
}

func sortByDate(ms []NamedMilestone) {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Date.Before(ms[j].Date) })
}

// formatThousands renders an integer with Indonesian thousands separators.
func formatThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
		if len(s) > lead {
			sb.WriteString(".")
		}
	}
	for i := lead; i < len(s); i += 3 {
		sb.WriteString(s[i : i+3])
		if i+3 < len(s) {
			sb.WriteString(".")
		}
	}
	return sb.String()
}
