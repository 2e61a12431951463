// Package cli implements the cftime command line tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/geoclim/cftime-go/cftime"
)

// RootOptions holds the global flags shared by all subcommands.
type RootOptions struct {
	Units    string
	Calendar string
	Verbose  bool

	Logger *slog.Logger
}

// NewRootCommand creates the root command for the cftime CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cftime",
		Short: "Convert CF time coordinates between numbers and datetimes",
		Long: `cftime converts netCDF/CF time coordinate values between numeric offsets
and calendar datetimes, honoring the CF units and calendar attributes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			// Logs go to stderr so piped output stays clean.
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Units, "units", "u", "", `units string, e.g. "days since 1970-01-01"`)
	cmd.PersistentFlags().StringVarP(&opts.Calendar, "calendar", "c", "standard", "CF calendar name")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))

	return cmd
}

// parseUnits resolves the global calendar and units flags.
func (o *RootOptions) parseUnits() (cftime.Units, error) {
	cal, err := cftime.ParseCalendar(o.Calendar)
	if err != nil {
		return cftime.Units{}, err
	}
	return cftime.ParseUnits(o.Units, cal)
}
