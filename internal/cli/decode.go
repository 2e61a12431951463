package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/geoclim/cftime-go/cftime"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "decode <offset>...",
		Short: "Decode numeric offsets into datetimes",
		Long: `Decode numeric offsets into datetimes of the selected calendar,
one per line. The offsets are read as the type given by --kind.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, kind, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "float64", "offset type (int32|int64|float32|float64)")

	return cmd
}

func runDecode(opts *RootOptions, kind string, args []string, cmd *cobra.Command) error {
	units, err := opts.parseUnits()
	if err != nil {
		return err
	}
	k, err := cftime.ParseNumericKind(kind)
	if err != nil {
		return err
	}
	opts.Logger.Debug("decoding offsets",
		"units", opts.Units, "calendar", units.Calendar.String(), "kind", k.String(), "count", len(args))

	var values []cftime.DateTime
	switch k {
	case cftime.KindInt32:
		values, err = decodeArgs(args, units, parseInt32)
	case cftime.KindInt64:
		values, err = decodeArgs(args, units, parseInt64)
	case cftime.KindFloat32:
		values, err = decodeArgs(args, units, parseFloat32)
	default:
		values, err = decodeArgs(args, units, parseFloat64)
	}
	if err != nil {
		return err
	}

	for _, v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func decodeArgs[N cftime.Numeric](args []string, units cftime.Units, parse func(string) (N, error)) ([]cftime.DateTime, error) {
	offsets := make([]N, len(args))
	for i, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, fmt.Errorf("offset %q: %w", arg, err)
		}
		offsets[i] = v
	}
	return cftime.Decode(offsets, units)
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int32(n), err
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
