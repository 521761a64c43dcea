package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/journey2md/internal/journey"
)

// Ext is the extension of every generated file.
const Ext = ".md"

// PathFor returns the slash-separated path of the file for an entry at t:
//
//	YYYY/MM/DD/YYYY-MM-DD-HH-MM-SS-ffffff-ZONE.md
//
// ZONE is the abbreviation in effect at t, not the IANA name.
func PathFor(t time.Time) string {
	day := t.Format("2006/01/02")
	name := fmt.Sprintf("%s-%06d-%s%s",
		t.Format("2006-01-02-15-04-05"),
		t.Nanosecond()/int(time.Microsecond),
		zoneSegment(t),
		Ext)
	return day + "/" + name
}

// RelPath returns the destination of a record relative to the target root.
func RelPath(r journey.Record, zones journey.ZoneResolver) string {
	return PathFor(journey.JournalTime(r, zones))
}

// zoneSegment returns the zone abbreviation restricted to [A-Za-z0-9+-].
// Zones without an abbreviation use their numeric offset.
func zoneSegment(t time.Time) string {
	abbr, _ := t.Zone()
	if abbr == "" {
		return t.Format("-0700")
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '+', r == '-':
			return r
		default:
			return '_'
		}
	}, abbr)
}
