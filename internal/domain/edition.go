package domain

import "time"

// Edition is a locale variant of the site. The time zone drives display
// date formatting; the ID feeds edition-specific URLs and tracking codes.
type Edition struct {
	ID          string
	DisplayName string
	TimeZone    string
}

var (
	EditionUK            = Edition{ID: "uk", DisplayName: "UK edition", TimeZone: "Europe/London"}
	EditionUS            = Edition{ID: "us", DisplayName: "US edition", TimeZone: "America/New_York"}
	EditionAU            = Edition{ID: "au", DisplayName: "Australia edition", TimeZone: "Australia/Sydney"}
	EditionInternational = Edition{ID: "international", DisplayName: "International edition", TimeZone: "Europe/London"}
)

var editions = map[string]Edition{
	EditionUK.ID:            EditionUK,
	EditionUS.ID:            EditionUS,
	EditionAU.ID:            EditionAU,
	EditionInternational.ID: EditionInternational,
}

// EditionByID resolves an edition id, falling back to the UK edition for
// anything unrecognized.
func EditionByID(id string) Edition {
	if e, ok := editions[id]; ok {
		return e
	}
	return EditionUK
}

// Location returns the edition's time zone, or UTC if the zone database
// does not know it.
func (e Edition) Location() *time.Location {
	loc, err := time.LoadLocation(e.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RequestContext carries the per-request values the assembly pipeline
// depends on. It is built once per request and never mutated.
type RequestContext struct {
	Edition Edition
}
