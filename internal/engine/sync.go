package engine

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/wetonku/go-weton/internal/config"
)

// SyncConfig contains the parameters of one contact synchronization.
type SyncConfig struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string // Absolute path to the .vcf file
	WebURL    string // CardDAV or WebDAV URL
	WebUser   string // HTTP Basic Auth Username
	WebPass   string // HTTP Basic Auth Password
}

// Generator runs the contact sync pipeline: acquire a vCard stream, parse it,
// and annotate every contact with its Weton and next birthday.
type Generator struct {
	Clock   Clock         // Interface for time mocking.
	Fetcher SourceFetcher // Interface for network abstraction.
}

// RunSync executes the fetching and parsing pipeline. It returns the contact
// list sorted by next occurrence and the count of birthdays falling today.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) ([]ContactEntry, int, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	reader, err := g.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		return nil, 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	// Best effort close; errors closing a read-only stream are rarely actionable.
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	contacts, today, err := g.parseContacts(ctx, reader)
	if err == nil {
		log.Debug("Sync finished", config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return contacts, today, err
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// parseContacts decodes the vCard stream contact by contact. Malformed cards
// and unparseable dates are skipped with a log entry so one bad record never
// poisons the feed.
func (g *Generator) parseContacts(ctx context.Context, r io.Reader) ([]ContactEntry, int, error) {
	// Birthdays are defined by the person's local calendar date, so "today"
	// is evaluated in local time, not UTC.
	now := g.Clock.Now()

	decoder := vcard.NewDecoder(r)
	stats := struct{ processed, withBday, today int }{0, 0, 0}
	var contacts []ContactEntry

	for {
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseVCardDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}
		stats.withBday++

		// Name strategy: FN (Formatted) > N (Structured) > Fallback.
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		entry := ContactEntry{
			UID:         contactUID(name, birthDate),
			Name:        name,
			DateOfBirth: birthDate,
			YearKnown:   yearKnown,
		}
		if yearKnown {
			entry.Weton = CalculateWeton(birthDate)
		}
		entry.NextOccurrence, entry.AgeNext = nextOccurrence(now, birthDate, yearKnown)

		if sameCalendarDay(entry.NextOccurrence, now) {
			stats.today++
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyDOB, birthDate.Format(config.DateFormatFullDash))
		}

		contacts = append(contacts, entry)
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].NextOccurrence.Before(contacts[j].NextOccurrence)
	})

	slog.Info(config.MsgSyncSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.processed),
			slog.Int(config.LogKeyFound, stats.withBday),
			slog.Int(config.LogKeyToday, stats.today),
		),
	)
	return contacts, stats.today, nil
}

// contactUID derives a deterministic identifier so calendar clients see
// stable event UIDs across refreshes.
func contactUID(name string, birthDate time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// nextOccurrence determines the contact's upcoming birthday relative to now.
// A birthday happening today still counts as the next occurrence so it
// surfaces in the "today" list. Feb 29 normalizes to March 1 in non-leap
// years via time.Date, matching the age calculator's policy.
func nextOccurrence(now, birthDate time.Time, yearKnown bool) (time.Time, int) {
	loc := now.Location()
	candidate := time.Date(now.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	}

	ageNext := 0
	if yearKnown {
		ageNext = candidate.Year() - birthDate.Year()
	}
	return candidate, ageNext
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// parseVCardDate handles the BDAY formats encountered in the wild, including
// the year-less truncated forms.
func parseVCardDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated dates (year unknown). The fallback year must be leap so
	// --02-29 stays parseable.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safeDate := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return safeDate, false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
