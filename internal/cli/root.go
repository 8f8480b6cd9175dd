package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cpusched/config"
	"cpusched/internal/logging"
)

var errMissingArguments = errors.New("missing arguments")

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagOutput    string
	flagVerbose   bool

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "Simulate FCFS and round-robin CPU scheduling",
		Long:  "cpusched runs a deterministic scheduling simulation over a fixed set of CPU bursts and reports the average wait time.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.GetSchedulerConfig(flagConfig)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("log-level") {
				flagLogLevel = cfg.LogLevel
			}
			if !flags.Changed("log-format") {
				flagLogFormat = cfg.LogFormat
			}
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(flagLogLevel), flagLogFormat, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errMissingArguments
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addPersistentFlags(root.PersistentFlags())

	root.AddCommand(
		newFcfsCmd(),
		newRrCmd(),
		newAllCmd(),
		newServeCmd(),
	)

	return root
}

func addPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml if present)")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")
	flags.StringVarP(&flagOutput, "output", "o", outputText, "Report format (text, json, yaml)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Print the per-process table")
}

// minimumArgs is cobra.MinimumNArgs with the usage error callers expect.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return errMissingArguments
		}
		return nil
	}
}
