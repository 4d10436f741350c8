// Package export serializes engine results to iCalendar feeds: the synced
// contact birthday calendar, commemorative (haul) schedules, and personal
// next-birthday calendars.
package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/wetonku/go-weton/internal/config"
	"github.com/wetonku/go-weton/internal/engine"
)

// SummaryFormatter renders a localized event summary for a contact birthday.
// Injected by the caller so localization never leaks into this layer.
type SummaryFormatter func(name string, age int, yearKnown bool) string

// newCalendar builds a calendar shell with the standard headers.
func newCalendar(now time.Time) (*ical.Calendar, *ical.Prop) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint for subscribing clients.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Event dates are local calendar dates; only the stamp is UTC.
	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	return cal, dtStamp
}

// encode renders the calendar, falling back to the valid empty stub when no
// events were added so feed consumers never see a broken VCALENDAR.
func encode(cal *ical.Calendar) ([]byte, error) {
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyCount, len(cal.Children),
	)
	return buf.Bytes(), nil
}

// ContactCalendar renders the synced contact list as a birthday calendar.
// For each contact it emits events for the previous, current and next year,
// so calendar clients can scroll either way without an immediate resync.
// Events before a contact's birth are skipped. The contact's Weton goes into
// the event description.
func ContactCalendar(contacts []engine.ContactEntry, now time.Time, reminderTrigger string, format SummaryFormatter) ([]byte, error) {
	cal, dtStamp := newCalendar(now)
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()

	for _, c := range contacts {
		for _, y := range targetYears {
			if c.YearKnown && y < c.DateOfBirth.Year() {
				continue
			}

			event := ical.NewEvent()
			event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, c.UID, y, config.ICalDomain))

			age := 0
			if c.YearKnown {
				age = y - c.DateOfBirth.Year()
			}

			summary := fmt.Sprintf(config.FallbackSummary, c.Name)
			if format != nil {
				summary = format(c.Name, age, c.YearKnown && age >= 0)
			}
			event.Props.SetText(config.PropSummary, summary)

			if c.YearKnown {
				w := c.Weton
				event.Props.SetText(config.PropDescription,
					fmt.Sprintf("Weton: %s %s (Neptu %d)", w.Day, w.Pasaran, w.Neptu))
			}

			eventDate := time.Date(y, c.DateOfBirth.Month(), c.DateOfBirth.Day(), 0, 0, 0, 0, loc)
			dtStart := ical.NewProp(config.PropDTStart)
			dtStart.SetDate(eventDate)
			event.Props.Set(dtStart)
			event.Props.Set(dtStamp)

			if reminderTrigger != "" {
				addAlarm(event, reminderTrigger, summary)
			}

			cal.Children = append(cal.Children, event.Component)
		}
	}

	return encode(cal)
}

// HaulCalendar renders a commemorative event sequence as an all-day calendar.
// Each event carries the Weton of its date in the description.
func HaulCalendar(events []engine.HaulEvent, now time.Time) ([]byte, error) {
	cal, dtStamp := newCalendar(now)

	for i, e := range events {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, haulUID(e), i, config.ICalDomain))
		event.Props.SetText(config.PropSummary, e.Title)
		event.Props.SetText(config.PropDescription,
			fmt.Sprintf("%s - %s %s (Neptu %d)", e.Description, e.Weton.Day, e.Weton.Pasaran, e.Weton.Neptu))

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(e.Date)
		event.Props.Set(dtStart)
		event.Props.Set(dtStamp)

		cal.Children = append(cal.Children, event.Component)
	}

	return encode(cal)
}

// BirthdayCalendar renders the next `years` birthdays of a single birth date,
// each annotated with the age turned and the Weton of the day it falls on.
func BirthdayCalendar(birth, now time.Time, years int, reminderTrigger string) ([]byte, error) {
	cal, dtStamp := newCalendar(now)

	b, err := engine.CalculateAge(birth, now)
	if err != nil {
		return nil, err
	}

	next := b.NextBirthday
	for i := 0; i < years; i++ {
		// Each anniversary is re-derived from the birth date so the leap-day
		// normalization applies per target year, not cumulatively.
		eventDate := time.Date(next.Year()+i, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
		w := engine.CalculateWeton(eventDate)

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatUID, birthdayUID(birth), eventDate.Year(), config.ICalDomain))
		event.Props.SetText(config.PropSummary,
			fmt.Sprintf(config.FallbackSummaryAge, birth.Format(config.DateFormatFullDash), b.NextAge+i))
		event.Props.SetText(config.PropDescription,
			fmt.Sprintf("Weton: %s %s (Neptu %d)", w.Day, w.Pasaran, w.Neptu))

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(eventDate)
		event.Props.Set(dtStart)
		event.Props.Set(dtStamp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, "Birthday")
		}

		cal.Children = append(cal.Children, event.Component)
	}

	return encode(cal)
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid a "VALUE=TEXT" param.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

func haulUID(e engine.HaulEvent) string {
	input := fmt.Sprintf(config.FormatHashInput, e.Title, e.Date.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

func birthdayUID(birth time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, "birthday", birth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
