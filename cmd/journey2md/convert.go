package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/journey2md/internal/convert"
	"github.com/gorewood/journey2md/internal/export"
	"github.com/gorewood/journey2md/internal/output"
)

// convertOptions holds the root command flags.
type convertOptions struct {
	dryRun      bool
	force       bool
	frontMatter bool
	color       string
}

// runConvert executes the conversion of source into target.
func runConvert(cmd *cobra.Command, a *app, opts convertOptions, source, target string) error {
	stdout := cmd.OutOrStdout()
	printer := output.NewPrinter(stdout, isJSONMode(cmd), output.ResolveColorMode(opts.color, output.IsTTY(stdout))).
		WithStderr(cmd.ErrOrStderr())

	if !output.ValidColorMode(opts.color) {
		err := output.NewUserError("--color must be one of: " + strings.Join(output.ColorModes, ", "))
		printer.Error(err)
		return err
	}

	if err := convert.CheckDirs(source, target); err != nil {
		printer.Error(err)
		return err
	}

	converter := &convert.Converter{
		Zones:  a.zones,
		Writer: export.NewWriter(target, opts.force),
		Render: export.RenderOptions{FrontMatter: opts.frontMatter},
		Logger: a.logger,
		DryRun: opts.dryRun,
	}

	result, err := converter.Run(cmd.Context(), source)
	if err != nil {
		printer.Error(err)
		return err
	}

	return writeConvertOutput(printer, result)
}

// writeConvertOutput prints the result as JSON or as one path per line
// followed by warnings and a summary.
func writeConvertOutput(printer *output.Printer, result *convert.Result) error {
	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	for _, file := range result.Files {
		printer.Path(file.Path)
	}
	for _, failure := range result.Failures {
		printer.Warn("skipped %s: %s", failure.Source, failure.Reason)
	}
	for _, conflict := range result.Conflicts {
		printer.Warn("not overwriting %s (use --force)", conflict)
	}

	if printer.IsTTY() {
		writeSummary(printer, result)
	}
	return nil
}

// writeSummary writes the totals section for interactive use.
func writeSummary(printer *output.Printer, result *convert.Result) {
	title := "Converted"
	if result.DryRun {
		title = "Dry run"
	}
	printer.Section(title)
	printer.KeyValue("Entries", strconv.Itoa(result.Total))
	printer.KeyValue("Written", strconv.Itoa(result.Converted))
	if result.Skipped > 0 {
		printer.KeyValue("Skipped", fmt.Sprintf("%d (%d unreadable, %d existing)",
			result.Skipped, len(result.Failures), len(result.Conflicts)))
	}
	if result.ZoneFallbacks > 0 {
		printer.KeyValue("UTC fallback", strconv.Itoa(result.ZoneFallbacks))
	}
}
