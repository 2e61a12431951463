package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geoclim/cftime-go/cftime"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Parse the units string and show its parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, cmd)
		},
	}
}

func runInspect(opts *RootOptions, cmd *cobra.Command) error {
	units, err := opts.parseUnits()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "unit:      %s\n", units.Unit)
	fmt.Fprintf(out, "calendar:  %s\n", units.Calendar)
	if units.Calendar == cftime.CalendarNone {
		fmt.Fprintf(out, "reference: (elapsed time only)\n")
		return nil
	}
	fmt.Fprintf(out, "reference: %s\n", units.Reference)
	return nil
}
