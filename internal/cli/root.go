// Package cli implements the jdn command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SebastiaanKlippert/go-jdn"
	"github.com/SebastiaanKlippert/go-jdn/internal/config"
	"github.com/SebastiaanKlippert/go-jdn/internal/logger"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the settings shared by every subcommand after the config file
// and flags have been merged.
type options struct {
	configPath string
	calendar   string
	output     string
	debug      bool

	cal jdn.Calendar
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "jdn",
		Short:        "Convert between Julian Day Numbers and Gregorian/Julian dates",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger.Setup(logger.Config{Out: cmd.ErrOrStderr(), Debug: opts.debug})
			return opts.resolve(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file (default $"+config.EnvVar+")")
	pf.StringVarP(&opts.calendar, "calendar", "c", "", "calendar of DATE arguments: gregorian, julian or proleptic-gregorian")
	pf.StringVarP(&opts.output, "output", "o", "", "output format: text, json or yaml")
	pf.BoolVar(&opts.debug, "debug", false, "verbose logging to stderr")

	cmd.AddCommand(convertCmd(opts), describeCmd(opts), todayCmd(opts))
	return cmd
}

// resolve loads the config file and lets explicitly set flags override it.
func (o *options) resolve(cmd *cobra.Command) error {
	path := config.Path(o.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("calendar") {
		o.calendar = cfg.Calendar
	}
	if !flags.Changed("output") {
		o.output = cfg.Output
	}
	if err := config.ValidateOutput(o.output); err != nil {
		return err
	}
	o.cal, err = jdn.ParseCalendar(o.calendar)
	if err != nil {
		return err
	}
	logger.L().Debug("config.resolved", "path", path, "calendar", o.cal.String(), "output", o.output)
	return nil
}
