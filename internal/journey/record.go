// Package journey provides the record model for entries exported from the Journey diary app.
package journey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// Required timestamp fields. Every other field may be absent.
const (
	FieldDateJournal  = "date_journal"
	FieldDateModified = "date_modified"
)

// Record is a single Journey entry. Records are values and are never mutated
// after construction.
type Record struct {
	ID           string         `json:"id"`
	DateJournal  int64          `json:"date_journal"`
	DateModified int64          `json:"date_modified"`
	Timezone     string         `json:"timezone"`
	Text         string         `json:"text"`
	PreviewText  string         `json:"preview_text"`
	Mood         int            `json:"mood"`
	Lat          float64        `json:"lat"`
	Lon          float64        `json:"lon"`
	Address      string         `json:"address"`
	Label        string         `json:"label"`
	Folder       string         `json:"folder"`
	Sentiment    float64        `json:"sentiment"`
	Favourite    bool           `json:"favourite"`
	MusicTitle   string         `json:"music_title"`
	MusicArtist  string         `json:"music_artist"`
	Photos       []string       `json:"photos"`
	Weather      map[string]any `json:"weather"`
	Tags         []string       `json:"tags"`
	Type         string         `json:"type"`
}

// MalformedRecordError is returned when a source record cannot be turned into a Record.
// Field is empty when the record as a whole is unreadable.
type MalformedRecordError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return "malformed record: " + e.Reason
	}
	return fmt.Sprintf("malformed record: %s %s", e.Field, e.Reason)
}

// FromJSON decodes one exported record file.
func FromJSON(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return Record{}, &MalformedRecordError{Reason: "invalid JSON: " + err.Error()}
	}
	if fields == nil {
		return Record{}, &MalformedRecordError{Reason: "expected a JSON object"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Record{}, &MalformedRecordError{Reason: "trailing data after JSON object"}
	}
	return FromFields(fields)
}

// FromFields builds a Record from a decoded field mapping.
// date_journal and date_modified must be integer-valued; everything else
// falls back to its zero value when missing or of the wrong type.
func FromFields(fields map[string]any) (Record, error) {
	journal, err := requireMillis(fields, FieldDateJournal)
	if err != nil {
		return Record{}, err
	}
	modified, err := requireMillis(fields, FieldDateModified)
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:           stringField(fields, "id"),
		DateJournal:  journal,
		DateModified: modified,
		Timezone:     stringField(fields, "timezone"),
		Text:         stringField(fields, "text"),
		PreviewText:  stringField(fields, "preview_text"),
		Mood:         int(intField(fields, "mood")),
		Lat:          floatField(fields, "lat"),
		Lon:          floatField(fields, "lon"),
		Address:      stringField(fields, "address"),
		Label:        stringField(fields, "label"),
		Folder:       stringField(fields, "folder"),
		Sentiment:    floatField(fields, "sentiment"),
		Favourite:    boolField(fields, "favourite"),
		MusicTitle:   stringField(fields, "music_title"),
		MusicArtist:  stringField(fields, "music_artist"),
		Photos:       stringsField(fields, "photos"),
		Weather:      mapField(fields, "weather"),
		Tags:         stringsField(fields, "tags"),
		Type:         stringField(fields, "type"),
	}, nil
}

// requireMillis extracts a required epoch-millisecond field.
func requireMillis(fields map[string]any, key string) (int64, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return 0, &MalformedRecordError{Field: key, Reason: "is missing"}
	}
	n, ok := asInt(raw)
	if !ok {
		return 0, &MalformedRecordError{Field: key, Reason: fmt.Sprintf("is not an integer: %v", raw)}
	}
	return n, nil
}

// asInt accepts JSON numbers and Go integers with no fractional part.
func asInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(v)
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func intField(fields map[string]any, key string) int64 {
	n, _ := asInt(fields[key])
	return n
}

func floatField(fields map[string]any, key string) float64 {
	f, _ := asFloat(fields[key])
	return f
}

func boolField(fields map[string]any, key string) bool {
	b, _ := fields[key].(bool)
	return b
}

// stringsField keeps the string elements of an array field, in order.
func stringsField(fields map[string]any, key string) []string {
	switch v := fields[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func mapField(fields map[string]any, key string) map[string]any {
	m, ok := fields[key].(map[string]any)
	if !ok {
		return nil
	}
	out, _ := plainValue(m).(map[string]any)
	return out
}

// plainValue replaces json.Number with int64 or float64 throughout a decoded value.
func plainValue(raw any) any {
	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = plainValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}
