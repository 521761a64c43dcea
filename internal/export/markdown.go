package export

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/journey2md/internal/journey"
)

// RenderOptions controls the file body.
type RenderOptions struct {
	// FrontMatter prefixes the text with a YAML block of entry metadata.
	FrontMatter bool
}

// Output is a destination path and the content to write there.
type Output struct {
	Path         string `json:"path"`
	Content      string `json:"content"`
	ZoneFallback bool   `json:"zone_fallback,omitempty"`
}

// Map computes the destination and content for a record.
// It has no side effects and cannot fail for a constructed Record.
func Map(r journey.Record, zones journey.ZoneResolver, opts RenderOptions) Output {
	_, fellBack := journey.ResolveZone(r, zones)
	return Output{
		Path:         RelPath(r, zones),
		Content:      Render(r, zones, opts),
		ZoneFallback: fellBack,
	}
}

// Render returns the file body for a record. Without front matter this is
// the entry text, verbatim.
func Render(r journey.Record, zones journey.ZoneResolver, opts RenderOptions) string {
	if !opts.FrontMatter {
		return r.Text
	}

	var builder strings.Builder
	writeFrontmatter(&builder, r, zones)
	builder.WriteString(r.Text)
	return builder.String()
}

// frontmatter is the YAML metadata block. Field order is output order.
type frontmatter struct {
	ID        string         `yaml:"id,omitempty"`
	Date      string         `yaml:"date"`
	Modified  string         `yaml:"modified"`
	Timezone  string         `yaml:"timezone,omitempty"`
	Type      string         `yaml:"type,omitempty"`
	Tags      []string       `yaml:"tags,omitempty"`
	Mood      int            `yaml:"mood,omitempty"`
	Sentiment float64        `yaml:"sentiment,omitempty"`
	Favourite bool           `yaml:"favourite,omitempty"`
	Label     string         `yaml:"label,omitempty"`
	Folder    string         `yaml:"folder,omitempty"`
	Address   string         `yaml:"address,omitempty"`
	Location  *location      `yaml:"location,omitempty"`
	Music     *music         `yaml:"music,omitempty"`
	Weather   map[string]any `yaml:"weather,omitempty"`
	Photos    []string       `yaml:"photos,omitempty"`
}

type location struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

type music struct {
	Title  string `yaml:"title,omitempty"`
	Artist string `yaml:"artist,omitempty"`
}

// writeFrontmatter writes the YAML frontmatter section.
func writeFrontmatter(builder *strings.Builder, r journey.Record, zones journey.ZoneResolver) {
	meta := frontmatter{
		ID:        r.ID,
		Date:      journey.JournalTime(r, zones).Format(time.RFC3339Nano),
		Modified:  journey.ModifiedTime(r, zones).Format(time.RFC3339Nano),
		Timezone:  r.Timezone,
		Type:      r.Type,
		Tags:      r.Tags,
		Mood:      r.Mood,
		Sentiment: r.Sentiment,
		Favourite: r.Favourite,
		Label:     r.Label,
		Folder:    r.Folder,
		Address:   r.Address,
		Weather:   r.Weather,
		Photos:    r.Photos,
	}
	if r.Lat != 0 || r.Lon != 0 {
		meta.Location = &location{Lat: r.Lat, Lon: r.Lon}
	}
	if r.MusicTitle != "" || r.MusicArtist != "" {
		meta.Music = &music{Title: r.MusicTitle, Artist: r.MusicArtist}
	}

	// Marshal only fails on unsupported types; every field here is plain data.
	data, _ := yaml.Marshal(meta)

	builder.WriteString("---\n")
	builder.Write(data)
	builder.WriteString("---\n\n")
}
