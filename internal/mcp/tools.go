package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/journey2md/internal/convert"
	"github.com/gorewood/journey2md/internal/export"
	"github.com/gorewood/journey2md/internal/journey"
)

// --- entry_path tool ---

// EntryPathInput is the input for the entry_path tool.
type EntryPathInput struct {
	Record      map[string]any `json:"record"                 jsonschema:"a Journey entry object with date_journal, date_modified, timezone, text, ..."`
	Target      string         `json:"target,omitempty"       jsonschema:"target directory; when set the absolute path is returned too"`
	FrontMatter bool           `json:"front_matter,omitempty" jsonschema:"prefix the content with YAML metadata"`
}

// EntryPathOutput is the output for the entry_path tool.
type EntryPathOutput struct {
	Path         string `json:"path"                    jsonschema:"destination relative to the target directory"`
	AbsPath      string `json:"abs_path,omitempty"      jsonschema:"destination joined to the target directory"`
	Content      string `json:"content"                 jsonschema:"file content"`
	JournalTime  string `json:"journal_time"            jsonschema:"localized entry time (RFC 3339)"`
	ZoneFallback bool   `json:"zone_fallback,omitempty" jsonschema:"true when the timezone was not recognized and UTC was used"`
}

func handleEntryPath(zones journey.ZoneResolver) mcp.ToolHandlerFor[EntryPathInput, EntryPathOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in EntryPathInput) (*mcp.CallToolResult, EntryPathOutput, error) {
		if in.Record == nil {
			return nil, EntryPathOutput{}, errors.New("record is required")
		}
		record, err := journey.FromFields(in.Record)
		if err != nil {
			return nil, EntryPathOutput{}, err
		}

		mapped := export.Map(record, zones, export.RenderOptions{FrontMatter: in.FrontMatter})
		out := EntryPathOutput{
			Path:         mapped.Path,
			Content:      mapped.Content,
			JournalTime:  journey.JournalTime(record, zones).Format(time.RFC3339Nano),
			ZoneFallback: mapped.ZoneFallback,
		}
		if in.Target != "" {
			out.AbsPath = export.NewWriter(in.Target, false).Abs(mapped.Path)
		}
		return nil, out, nil
	}
}

// --- convert tool ---

// ConvertInput is the input for the convert tool.
type ConvertInput struct {
	Source      string `json:"source"                 jsonschema:"directory containing the unzipped Journey export"`
	Target      string `json:"target"                 jsonschema:"existing directory to write Markdown files into"`
	DryRun      bool   `json:"dry_run,omitempty"      jsonschema:"compute destinations without writing"`
	Force       bool   `json:"force,omitempty"        jsonschema:"overwrite files that already exist"`
	FrontMatter bool   `json:"front_matter,omitempty" jsonschema:"prefix each file with YAML metadata"`
}

func handleConvert(zones journey.ZoneResolver, logger *slog.Logger) mcp.ToolHandlerFor[ConvertInput, convert.Result] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ConvertInput) (*mcp.CallToolResult, convert.Result, error) {
		if err := convert.CheckDirs(in.Source, in.Target); err != nil {
			return nil, convert.Result{}, err
		}

		converter := &convert.Converter{
			Zones:  zones,
			Writer: export.NewWriter(in.Target, in.Force),
			Render: export.RenderOptions{FrontMatter: in.FrontMatter},
			Logger: logger,
			DryRun: in.DryRun,
		}
		result, err := converter.Run(ctx, in.Source)
		if err != nil {
			return nil, convert.Result{}, fmt.Errorf("converting %s: %w", in.Source, err)
		}
		return nil, *result, nil
	}
}
