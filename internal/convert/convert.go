// Package convert runs a Journey export directory through the Markdown mapper.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gorewood/journey2md/internal/export"
	"github.com/gorewood/journey2md/internal/journey"
	"github.com/gorewood/journey2md/internal/output"
)

// SourcePattern matches exported entry files inside the source directory.
const SourcePattern = "*.json"

// Writer stores mapped entries. *export.Writer is the filesystem implementation.
type Writer interface {
	Write(relPath, content string) error
	Abs(relPath string) string
}

// Converter turns each source record into one Markdown file.
type Converter struct {
	Zones  journey.ZoneResolver
	Writer Writer
	Render export.RenderOptions
	Logger *slog.Logger
	// DryRun maps every record but writes nothing.
	DryRun bool
}

// Result summarizes a conversion run.
type Result struct {
	Total         int          `json:"total"`
	Converted     int          `json:"converted"`
	Skipped       int          `json:"skipped"`
	ZoneFallbacks int          `json:"zone_fallbacks"`
	DryRun        bool         `json:"dry_run,omitempty"`
	Files         []FileResult `json:"files"`
	Failures      []Failure    `json:"failures,omitempty"`
	Conflicts     []string     `json:"conflicts,omitempty"`
}

// FileResult pairs a source file with its destination.
type FileResult struct {
	Source string `json:"source"`
	Path   string `json:"path"`
}

// Failure is a source file that could not be converted.
type Failure struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// Sources lists the record files in dir in name order.
// Only file names are matched against SourcePattern, so dir itself may
// contain glob metacharacters.
func Sources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var sources []string
	for _, entry := range entries {
		if matched, _ := filepath.Match(SourcePattern, entry.Name()); !matched {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
			sources = append(sources, path)
		}
	}
	return sources, nil
}

// Run converts every record in sourceDir.
// Unreadable or malformed records and existing destinations are recorded in
// the result and skipped. Any other write failure stops the run: permission
// and disk-full errors come from the target, not the record, and would
// repeat for every remaining entry.
func (c *Converter) Run(ctx context.Context, sourceDir string) (*Result, error) {
	sources, err := Sources(sourceDir)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to list source files", err)
	}

	result := &Result{DryRun: c.DryRun, Files: []FileResult{}}
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("conversion interrupted: %w", err)
		}
		if err := c.convertOne(source, result); err != nil {
			return result, err
		}
	}

	c.logger().Info("conversion finished",
		"total", result.Total,
		"converted", result.Converted,
		"skipped", result.Skipped)
	return result, nil
}

// convertOne handles a single source file. It only returns an error when the
// whole run should stop.
func (c *Converter) convertOne(source string, result *Result) error {
	log := c.logger().With("source", source)
	result.Total++

	data, err := os.ReadFile(source)
	if err != nil {
		c.skip(result, log, source, fmt.Errorf("reading record: %w", err))
		return nil
	}

	record, err := journey.FromJSON(data)
	if err != nil {
		c.skip(result, log, source, err)
		return nil
	}

	out := export.Map(record, c.Zones, c.Render)
	if out.ZoneFallback {
		result.ZoneFallbacks++
		log.Warn("timezone not recognized, using UTC", "timezone", record.Timezone)
	}

	if !c.DryRun {
		if err := c.Writer.Write(out.Path, out.Content); err != nil {
			if output.IsConflict(err) {
				result.Skipped++
				result.Conflicts = append(result.Conflicts, c.Writer.Abs(out.Path))
				log.Info("destination exists, skipping", "path", out.Path)
				return nil
			}
			return err
		}
	}

	result.Converted++
	result.Files = append(result.Files, FileResult{Source: source, Path: c.Writer.Abs(out.Path)})
	log.Debug("converted entry", "path", out.Path)
	return nil
}

func (c *Converter) skip(result *Result, log *slog.Logger, source string, err error) {
	result.Skipped++
	result.Failures = append(result.Failures, Failure{Source: source, Reason: err.Error()})

	var malformed *journey.MalformedRecordError
	if errors.As(err, &malformed) {
		log.Info("skipping malformed record", "field", malformed.Field, "reason", malformed.Reason)
		return
	}
	log.Info("skipping unreadable record", "error", err)
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Messages for a missing source or target directory.
const (
	MsgSourceNotDir = "Journey source needs to be a directory"
	MsgTargetNotDir = "The target needs to be an existing directory"
)

// CheckDirs verifies both directories exist before any conversion starts.
func CheckDirs(source, target string) error {
	if !isDir(source) {
		return output.NewUserError(MsgSourceNotDir)
	}
	if !isDir(target) {
		return output.NewUserError(MsgTargetNotDir)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
