package engine

import (
	"time"

	"github.com/wetonku/go-weton/internal/config"
)

// Weton is the Javanese calendrical identity of a date: the 7-day week name,
// the 5-day pasaran market day, and their combined Neptu value.
type Weton struct {
	Day     string `json:"day"`
	Pasaran string `json:"pasaran"`
	Neptu   int    `json:"neptu"`
}

// PasaranCycle is the fixed 5-day market cycle, in anchor order.
var PasaranCycle = [config.PasaranCycleDays]string{"Legi", "Pahing", "Pon", "Wage", "Kliwon"}

// dayNames maps time.Weekday to the Indonesian weekday name.
var dayNames = [daysPerWeek]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// Neptu value tables. Fixed by tradition, not derivable.
var (
	dayNeptu = map[time.Weekday]int{
		time.Sunday:    5,
		time.Monday:    4,
		time.Tuesday:   3,
		time.Wednesday: 7,
		time.Thursday:  8,
		time.Friday:    6,
		time.Saturday:  9,
	}

	pasaranNeptu = map[string]int{
		"Legi":   5,
		"Pahing": 9,
		"Pon":    7,
		"Wage":   4,
		"Kliwon": 8,
	}
)

// CalculateWeton derives the Weton of any Gregorian date.
//
// The pasaran is a pure function of the day offset from the anchor
// (1900-01-01, a Monday Pahing). EuclidMod keeps the index in [0,5) for
// dates before the anchor as well.
func CalculateWeton(date time.Time) Weton {
	d := Midnight(date)
	diff := DaysBetween(config.WetonAnchor, d)

	pasaran := PasaranCycle[EuclidMod(1+diff, config.PasaranCycleDays)]
	day := dayNames[d.Weekday()]

	return Weton{
		Day:     day,
		Pasaran: pasaran,
		Neptu:   dayNeptu[d.Weekday()] + pasaranNeptu[pasaran],
	}
}

// ZodiacResult is the Western zodiac identity of a date.
type ZodiacResult struct {
	Sign      string `json:"sign"`
	Element   string `json:"element"`
	DateRange string `json:"dateRange"`
}

// zodiacRange is one (month, day) boundary range with its fixed element.
// Capricorn wraps the year boundary and is handled by the final fallback.
type zodiacRange struct {
	sign       string
	element    string
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
	dateRange  string
}

var zodiacRanges = []zodiacRange{
	{"Aquarius", "Air", time.January, 20, time.February, 18, "20 Januari - 18 Februari"},
	{"Pisces", "Water", time.February, 19, time.March, 20, "19 Februari - 20 Maret"},
	{"Aries", "Fire", time.March, 21, time.April, 19, "21 Maret - 19 April"},
	{"Taurus", "Earth", time.April, 20, time.May, 20, "20 April - 20 Mei"},
	{"Gemini", "Air", time.May, 21, time.June, 20, "21 Mei - 20 Juni"},
	{"Cancer", "Water", time.June, 21, time.July, 22, "21 Juni - 22 Juli"},
	{"Leo", "Fire", time.July, 23, time.August, 22, "23 Juli - 22 Agustus"},
	{"Virgo", "Earth", time.August, 23, time.September, 22, "23 Agustus - 22 September"},
	{"Libra", "Air", time.September, 23, time.October, 22, "23 September - 22 Oktober"},
	{"Scorpio", "Water", time.October, 23, time.November, 21, "23 Oktober - 21 November"},
	{"Sagittarius", "Fire", time.November, 22, time.December, 21, "22 November - 21 Desember"},
}

var capricorn = ZodiacResult{
	Sign:      "Capricorn",
	Element:   "Earth",
	DateRange: "22 Desember - 19 Januari",
}

// CalculateZodiac maps a date onto the 12 fixed zodiac ranges. The ranges
// partition the whole year; any date not inside a listed range falls in the
// year-wrapping Capricorn window (Dec 22 - Jan 19).
func CalculateZodiac(date time.Time) ZodiacResult {
	m, d := date.Month(), date.Day()
	for _, r := range zodiacRanges {
		afterStart := m > r.startMonth || (m == r.startMonth && d >= r.startDay)
		beforeEnd := m < r.endMonth || (m == r.endMonth && d <= r.endDay)
		if afterStart && beforeEnd {
			return ZodiacResult{Sign: r.sign, Element: r.element, DateRange: r.dateRange}
		}
	}
	return capricorn
}

// ShioResult is the Chinese zodiac identity of a birth year.
type ShioResult struct {
	Animal       string `json:"animal"`
	YinYang      string `json:"yinYang"`
	FixedElement string `json:"fixedElement"`
}

// shioAnimals is ordered so that year mod 12 indexes directly: 1900 → Rat.
var shioAnimals = [monthsPerYear]string{
	"Monkey", "Rooster", "Dog", "Pig", "Rat", "Ox",
	"Tiger", "Rabbit", "Dragon", "Snake", "Horse", "Goat",
}

// shioElements pairs the last decimal digit of the year: {0,1} Gold,
// {2,3} Water, {4,5} Wood, {6,7} Fire, {8,9} Earth.
var shioElements = [5]string{"Gold", "Water", "Wood", "Fire", "Earth"}

const (
	shioYang = "Yang"
	shioYin  = "Yin"
)

// CalculateShio derives the Chinese zodiac animal, polarity and fixed element
// of a date's year. The Gregorian year is used as-is; the Lunar New Year
// offset is out of scope, matching the rest of the identity engine.
func CalculateShio(date time.Time) ShioResult {
	year := date.Year()
	idx := EuclidMod(year, monthsPerYear)

	yinYang := shioYin
	if idx%2 == 0 {
		yinYang = shioYang
	}

	return ShioResult{
		Animal:       shioAnimals[idx],
		YinYang:      yinYang,
		FixedElement: shioElements[EuclidMod(year, 10)/2],
	}
}
