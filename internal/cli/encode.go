package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/geoclim/cftime-go/cftime"
)

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		kind   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "encode <datetime>...",
		Short: "Encode datetimes into numeric offsets",
		Long: `Encode datetimes of the form "YYYY-MM-DD" or "YYYY-MM-DDTHH:MM:SS"
into numeric offsets of the selected units, one per line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, kind, strict, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "float64", "offset type (int32|int64|float32|float64)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of truncating fractional integer offsets")

	return cmd
}

func runEncode(opts *RootOptions, kind string, strict bool, args []string, cmd *cobra.Command) error {
	units, err := opts.parseUnits()
	if err != nil {
		return err
	}
	k, err := cftime.ParseNumericKind(kind)
	if err != nil {
		return err
	}
	opts.Logger.Debug("encoding datetimes",
		"units", opts.Units, "calendar", units.Calendar.String(), "kind", k.String(), "count", len(args))

	values := make([]cftime.DateTime, len(args))
	for i, arg := range args {
		values[i], err = cftime.ParseDateTime(arg, units.Calendar)
		if err != nil {
			return fmt.Errorf("datetime %q: %w", arg, err)
		}
	}

	var encodeOpts []cftime.EncodeOption
	if strict {
		encodeOpts = append(encodeOpts, cftime.WithStrictCast())
	}

	out := cmd.OutOrStdout()
	switch k {
	case cftime.KindInt32:
		return printEncoded(out, values, units, formatInt32, encodeOpts)
	case cftime.KindInt64:
		return printEncoded(out, values, units, formatInt64, encodeOpts)
	case cftime.KindFloat32:
		return printEncoded(out, values, units, formatFloat32, encodeOpts)
	default:
		return printEncoded(out, values, units, formatFloat64, encodeOpts)
	}
}

func printEncoded[N cftime.Numeric](out io.Writer, values []cftime.DateTime, units cftime.Units, format func(N) string, opts []cftime.EncodeOption) error {
	offsets, err := cftime.Encode[N](values, units, opts...)
	if err != nil {
		return err
	}
	for _, n := range offsets {
		fmt.Fprintln(out, format(n))
	}
	return nil
}

func formatInt32(n int32) string { return strconv.FormatInt(int64(n), 10) }

func formatInt64(n int64) string { return strconv.FormatInt(n, 10) }

func formatFloat32(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

func formatFloat64(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
