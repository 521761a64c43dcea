package journey

import (
	"sync"
	"time"
)

// DefaultZone is used when a record has no timezone or an unknown one.
const DefaultZone = "UTC"

// ZoneResolver looks up IANA timezone names.
// Resolve reports false when the name is not a known zone.
type ZoneResolver interface {
	Resolve(name string) (*time.Location, bool)
}

// systemZones resolves names against the Go timezone database.
// Lookups are cached since exports usually share a handful of zones.
type systemZones struct {
	mu    sync.Mutex
	cache map[string]*time.Location
}

// SystemZones returns a resolver backed by time.LoadLocation.
// Binaries should import time/tzdata so resolution does not depend on the host.
func SystemZones() ZoneResolver {
	return &systemZones{cache: make(map[string]*time.Location)}
}

func (z *systemZones) Resolve(name string) (*time.Location, bool) {
	z.mu.Lock()
	defer z.mu.Unlock()

	if loc, ok := z.cache[name]; ok {
		return loc, loc != nil
	}
	// "Local" is host-dependent and not an IANA name.
	loc, err := time.LoadLocation(name)
	if err != nil || name == "Local" {
		z.cache[name] = nil
		return nil, false
	}
	z.cache[name] = loc
	return loc, true
}

// StaticZones is a fixed name-to-location table, mainly for tests.
type StaticZones map[string]*time.Location

// Resolve implements ZoneResolver.
func (z StaticZones) Resolve(name string) (*time.Location, bool) {
	loc, ok := z[name]
	return loc, ok && loc != nil
}

// ResolveZone returns the location for the record's timezone.
// Empty names resolve to UTC. Unknown names also resolve to UTC, with
// fellBack set so the caller can warn.
func ResolveZone(r Record, zones ZoneResolver) (loc *time.Location, fellBack bool) {
	if r.Timezone == "" || r.Timezone == DefaultZone {
		return time.UTC, false
	}
	if zones != nil {
		if loc, ok := zones.Resolve(r.Timezone); ok {
			return loc, false
		}
	}
	return time.UTC, true
}

// JournalTime is the entry time, localized to the record's timezone.
func JournalTime(r Record, zones ZoneResolver) time.Time {
	loc, _ := ResolveZone(r, zones)
	return time.UnixMilli(r.DateJournal).In(loc)
}

// ModifiedTime is the last-edit time, localized to the record's timezone.
func ModifiedTime(r Record, zones ZoneResolver) time.Time {
	loc, _ := ResolveZone(r, zones)
	return time.UnixMilli(r.DateModified).In(loc)
}
