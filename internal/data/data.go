// Package data ships the hand-maintained reference tables as embedded JSON
// assets: the national holiday table, the age-indexed achievement facts and
// the product-release timeline. Tables are data, not code, so yearly updates
// never touch calculation logic.
package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/wetonku/go-weton/internal/config"
)

//go:embed holidays.json agefacts.json releases.json
var assetFS embed.FS

// Holiday is a single entry of the static holiday table.
type Holiday struct {
	Date     time.Time
	Name     string
	National bool
}

// AgeFact is an age-indexed "famous achievement" trivia entry.
type AgeFact struct {
	Age    int    `json:"age"`
	Person string `json:"person"`
	Fact   string `json:"fact"`
}

// ProductRelease is one entry of the product-release timeline used by the
// generations-survived estimate.
type ProductRelease struct {
	Date time.Time
	Name string
}

type holidayRecord struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	National bool   `json:"national"`
}

type releaseRecord struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

var (
	loadOnce sync.Once
	loadErr  error

	holidays []Holiday
	ageFacts []AgeFact
	releases []ProductRelease
)

// load parses every embedded asset exactly once. A malformed asset is a build
// defect, not a runtime condition, so the first error is cached and returned
// on every subsequent call.
func load() error {
	loadOnce.Do(func() {
		var records []holidayRecord
		if loadErr = unmarshalAsset("holidays.json", &records); loadErr != nil {
			return
		}
		for _, rec := range records {
			d, err := time.Parse(config.DateFormatFullDash, rec.Date)
			if err != nil {
				loadErr = fmt.Errorf("%s: %q: %w", config.ErrHolidayTable, rec.Name, err)
				return
			}
			holidays = append(holidays, Holiday{Date: d, Name: rec.Name, National: rec.National})
		}

		if loadErr = unmarshalAsset("agefacts.json", &ageFacts); loadErr != nil {
			return
		}

		var rels []releaseRecord
		if loadErr = unmarshalAsset("releases.json", &rels); loadErr != nil {
			return
		}
		for _, rec := range rels {
			d, err := time.Parse(config.DateFormatFullDash, rec.Date)
			if err != nil {
				loadErr = fmt.Errorf("%s: %q: %w", config.ErrDataAsset, rec.Name, err)
				return
			}
			releases = append(releases, ProductRelease{Date: d, Name: rec.Name})
		}
	})
	return loadErr
}

func unmarshalAsset(name string, v any) error {
	raw, err := assetFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", config.ErrDataAsset, name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %s: %w", config.ErrDataAsset, name, err)
	}
	return nil
}

// Holidays returns the full holiday table in chronological order.
func Holidays() ([]Holiday, error) {
	if err := load(); err != nil {
		return nil, err
	}
	return holidays, nil
}

// AgeFacts returns every age-indexed trivia entry.
func AgeFacts() ([]AgeFact, error) {
	if err := load(); err != nil {
		return nil, err
	}
	return ageFacts, nil
}

// FactsForAge returns the facts matching an exact age in years.
// An empty result is a normal outcome, not an error.
func FactsForAge(age int) ([]AgeFact, error) {
	facts, err := AgeFacts()
	if err != nil {
		return nil, err
	}
	var out []AgeFact
	for _, f := range facts {
		if f.Age == age {
			out = append(out, f)
		}
	}
	return out, nil
}

// ProductReleases returns the release timeline in chronological order.
func ProductReleases() ([]ProductRelease, error) {
	if err := load(); err != nil {
		return nil, err
	}
	return releases, nil
}
