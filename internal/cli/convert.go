package cli

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
	"github.com/spf13/cobra"

	"github.com/SebastiaanKlippert/go-jdn"
	"github.com/SebastiaanKlippert/go-jdn/internal/logger"
)

// BCE dates start with '-', put them after "--" so they are not read as flags.
func convertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert DATE...",
		Short: "Describe calendar dates given as [+|-]YYYY-MM-DD",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args, func(arg string) (jdn.ConversionResult, error) {
				d, err := jdn.ParseIso(arg, opts.cal)
				if err != nil {
					return jdn.ConversionResult{}, err
				}
				return jdn.Convert(d, opts.cal)
			})
		},
	}
}

func describeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe JDN...",
		Short: "Describe Julian Day Numbers in every calendar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args, func(arg string) (jdn.ConversionResult, error) {
				j, err := jdn.ParseJDN(arg)
				if err != nil {
					return jdn.ConversionResult{}, err
				}
				return jdn.DescribeJDN(j)
			})
		},
	}
}

func todayCmd(opts *options) *cobra.Command {
	var utc bool
	c := &cobra.Command{
		Use:   "today",
		Short: "Describe the current date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if utc {
				now = now.UTC()
			}
			j, err := jdn.FromTime(now)
			if err != nil {
				return err
			}
			res, err := jdn.DescribeJDN(j)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, []jdn.ConversionResult{res})
		},
	}
	c.Flags().BoolVar(&utc, "utc", false, "use the UTC date instead of the local one")
	return c
}

// runBatch converts every argument, prints the ones that succeeded and
// returns all failures together.
func runBatch(cmd *cobra.Command, opts *options, args []string, conv func(string) (jdn.ConversionResult, error)) error {
	log := logger.L()
	errs := &errors.M{}
	results := make([]jdn.ConversionResult, 0, len(args))
	for _, arg := range args {
		res, err := conv(arg)
		if err != nil {
			log.Warn("convert.failed", "arg", arg, "err", err)
			errs.Append(fmt.Errorf("%s: %w", arg, err))
			continue
		}
		log.Debug("convert.ok", "arg", arg, "jdn", res.JDN.String())
		results = append(results, res)
	}
	if len(results) > 0 {
		if err := render(cmd.OutOrStdout(), opts.output, results); err != nil {
			errs.Append(err)
		}
	}
	return errs.Err()
}
