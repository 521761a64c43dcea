// Package main provides the entry point for the journey2md CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // timezone names must resolve the same on every host

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/journey2md/internal/config"
	"github.com/gorewood/journey2md/internal/envfile"
	"github.com/gorewood/journey2md/internal/journey"
	"github.com/gorewood/journey2md/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the per-process state shared by commands.
type app struct {
	zones    journey.ZoneResolver
	logger   *slog.Logger
	closeLog func() error
}

func newApp() *app {
	return &app{
		zones:    journey.SystemZones(),
		logger:   slog.New(slog.DiscardHandler),
		closeLog: func() error { return nil },
	}
}

// setup loads env files and configures logging.
// Environment variables always take precedence over file values.
func (a *app) setup() {
	_ = envfile.LoadAll(config.EnvFiles()...)
	a.logger, a.closeLog = config.SetupLogger(config.Load())
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(newApp())
	err := fang.Execute(ctx, cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command: journey2md <source> <target>.
func newRootCmd(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "journey2md <journey-export-dir> <target-dir>",
		Short: "Convert a Journey export into a daily-note Markdown collection",
		Long: `journey2md converts an unzipped Journey diary export into Markdown files.

Each *.json entry in the export directory becomes one file below the target
directory, named after the entry's local time and timezone:

  <target>/YYYY/MM/DD/YYYY-MM-DD-HH-MM-SS-ffffff-TZ.md

Entries that cannot be read are reported and skipped. Existing files are
never overwritten unless --force is given.`,
		Example: `  journey2md ~/Downloads/journey-export ~/notes/daily
  journey2md --dry-run ./export ./vault
  journey2md --front-matter --json ./export ./vault`,
		Version:       buildVersion(),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.setup()
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, opts, args[0], args[1])
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print destination paths without writing files")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite Markdown files that already exist")
	cmd.Flags().BoolVar(&opts.frontMatter, "front-matter", false, "Prefix each file with YAML metadata")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd(a))
	return cmd
}
