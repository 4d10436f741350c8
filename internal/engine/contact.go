package engine

import "time"

// ContactEntry is a contact parsed from a vCard source, annotated with the
// calendrical identity facts the calendar feed and the API render.
type ContactEntry struct {
	// UID is a deterministic hash identifier, stable across resyncs.
	UID string `json:"uid"`

	// Name is the display name (Formatted Name, falling back to Structured Name).
	Name string `json:"name"`

	// DateOfBirth is the parsed BDAY value.
	DateOfBirth time.Time `json:"dateOfBirth"`

	// YearKnown is false for year-less vCard dates (--MM-DD); age and Weton
	// are unreliable without a year and are zeroed in that case.
	YearKnown bool `json:"yearKnown"`

	// Weton is the Javanese identity of the birth date. Only meaningful when
	// YearKnown is true.
	Weton Weton `json:"weton"`

	// NextOccurrence is the contact's birthday in the current or next year.
	// Primary sort key of the contact list.
	NextOccurrence time.Time `json:"nextOccurrence"`

	// AgeNext is the age the contact turns at NextOccurrence (0 when the year
	// is unknown).
	AgeNext int `json:"ageNext"`
}
