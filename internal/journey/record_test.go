package journey

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const fullRecordJSON = `{
  "id": "1688458530500-3f7c2a1b9e",
  "date_journal": 1688458530500,
  "date_modified": 1688462130000,
  "timezone": "Europe/London",
  "text": "Fireworks over the river.",
  "preview_text": "Fireworks",
  "mood": 2,
  "lat": 51.5072,
  "lon": -0.1276,
  "address": "London, UK",
  "label": "",
  "folder": "",
  "sentiment": 0.8,
  "favourite": true,
  "music_title": "Firework",
  "music_artist": "Katy Perry",
  "photos": ["a.jpg", "b.jpg"],
  "weather": {"degree_c": 21.5, "description": "Clear", "id": 800, "icon": "01d", "place": "London"},
  "tags": ["summer", "holiday"],
  "type": "html"
}`

func TestFromJSON_FullRecord(t *testing.T) {
	r, err := FromJSON([]byte(fullRecordJSON))
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	if r.ID != "1688458530500-3f7c2a1b9e" {
		t.Errorf("ID = %q", r.ID)
	}
	if r.DateJournal != 1688458530500 {
		t.Errorf("DateJournal = %d", r.DateJournal)
	}
	if r.DateModified != 1688462130000 {
		t.Errorf("DateModified = %d", r.DateModified)
	}
	if r.Timezone != "Europe/London" {
		t.Errorf("Timezone = %q", r.Timezone)
	}
	if r.Mood != 2 || !r.Favourite || r.Sentiment != 0.8 {
		t.Errorf("Mood/Favourite/Sentiment = %d/%v/%v", r.Mood, r.Favourite, r.Sentiment)
	}
	if r.Lat != 51.5072 || r.Lon != -0.1276 {
		t.Errorf("Lat/Lon = %v/%v", r.Lat, r.Lon)
	}
	if strings.Join(r.Photos, ",") != "a.jpg,b.jpg" {
		t.Errorf("Photos = %v", r.Photos)
	}
	if strings.Join(r.Tags, ",") != "summer,holiday" {
		t.Errorf("Tags = %v", r.Tags)
	}
	if r.Weather["degree_c"] != 21.5 {
		t.Errorf("Weather[degree_c] = %#v, want float64 21.5", r.Weather["degree_c"])
	}
	if r.Weather["id"] != int64(800) {
		t.Errorf("Weather[id] = %#v, want int64 800", r.Weather["id"])
	}
	if r.Type != "html" || r.Text != "Fireworks over the river." {
		t.Errorf("Type/Text = %q/%q", r.Type, r.Text)
	}
}

func TestFromFields_Defaults(t *testing.T) {
	r, err := FromFields(map[string]any{
		"date_journal":  json.Number("1000"),
		"date_modified": json.Number("2000"),
	})
	if err != nil {
		t.Fatalf("FromFields() error = %v", err)
	}

	if r.ID != "" || r.Timezone != "" || r.Text != "" || r.Type != "" {
		t.Errorf("string fields should default to empty: %+v", r)
	}
	if r.Mood != 0 || r.Lat != 0 || r.Lon != 0 || r.Favourite {
		t.Errorf("numeric fields should default to zero: %+v", r)
	}
	if r.Photos != nil || r.Tags != nil || r.Weather != nil {
		t.Errorf("collections should default to nil: %+v", r)
	}
}

func TestFromFields_WrongTypedOptionalFields(t *testing.T) {
	r, err := FromFields(map[string]any{
		"date_journal":  float64(1000),
		"date_modified": 2000,
		"text":          42,
		"tags":          []any{"ok", 7, "also"},
		"weather":       "sunny",
		"favourite":     "yes",
	})
	if err != nil {
		t.Fatalf("FromFields() error = %v", err)
	}
	if r.Text != "" {
		t.Errorf("Text = %q, want empty", r.Text)
	}
	if strings.Join(r.Tags, ",") != "ok,also" {
		t.Errorf("Tags = %v, want [ok also]", r.Tags)
	}
	if r.Weather != nil || r.Favourite {
		t.Errorf("Weather/Favourite should default: %v/%v", r.Weather, r.Favourite)
	}
}

func TestFromFields_RequiredTimestamps(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]any
		wantField string
		wantErr   bool
	}{
		{
			name:      "missing date_journal",
			fields:    map[string]any{"date_modified": json.Number("1")},
			wantField: FieldDateJournal,
			wantErr:   true,
		},
		{
			name:      "missing date_modified",
			fields:    map[string]any{"date_journal": json.Number("1")},
			wantField: FieldDateModified,
			wantErr:   true,
		},
		{
			name:      "null date_journal",
			fields:    map[string]any{"date_journal": nil, "date_modified": json.Number("1")},
			wantField: FieldDateJournal,
			wantErr:   true,
		},
		{
			name:      "string date_journal",
			fields:    map[string]any{"date_journal": "1688458530500", "date_modified": json.Number("1")},
			wantField: FieldDateJournal,
			wantErr:   true,
		},
		{
			name:      "fractional date_modified",
			fields:    map[string]any{"date_journal": json.Number("1"), "date_modified": json.Number("1.5")},
			wantField: FieldDateModified,
			wantErr:   true,
		},
		{
			name:   "integral float accepted",
			fields: map[string]any{"date_journal": json.Number("1688458530500.0"), "date_modified": float64(1)},
		},
		{
			name:   "negative epoch accepted",
			fields: map[string]any{"date_journal": json.Number("-1000"), "date_modified": json.Number("0")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFields(tt.fields)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("FromFields() unexpected error = %v", err)
				}
				return
			}

			var malformed *MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("FromFields() error = %v, want *MalformedRecordError", err)
			}
			if malformed.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", malformed.Field, tt.wantField)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Error() = %q should name %q", err.Error(), tt.wantField)
			}
		})
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json"},
		{"empty", ""},
		{"array", "[1, 2]"},
		{"null", "null"},
		{"trailing garbage", `{"date_journal":1,"date_modified":1} garbage`},
		{"second object", `{"date_journal":1,"date_modified":1}{"date_journal":2,"date_modified":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tt.data))
			var malformed *MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("FromJSON(%q) error = %v, want *MalformedRecordError", tt.data, err)
			}
			if malformed.Field != "" {
				t.Errorf("Field = %q, want empty", malformed.Field)
			}
		})
	}
}

func TestFromJSON_TrailingWhitespace(t *testing.T) {
	r, err := FromJSON([]byte("{\"date_journal\":1,\"date_modified\":2}\n\n"))
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if r.DateJournal != 1 || r.DateModified != 2 {
		t.Errorf("DateJournal/DateModified = %d/%d, want 1/2", r.DateJournal, r.DateModified)
	}
}
