// Package main provides the typkat CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/typkat/pkg/config"
	"github.com/Sumatoshi-tech/typkat/pkg/convert"
	"github.com/Sumatoshi-tech/typkat/pkg/observability"
	"github.com/Sumatoshi-tech/typkat/pkg/version"
)

// exitCodeValidationFailure is the exit code for documents that fail schema
// validation or differ from their expected tree.
const exitCodeValidationFailure = 2

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// app is the state shared by every subcommand once the root has loaded its
// configuration.
type app struct {
	cfgFile   string
	verbose   bool
	cfg       *config.Config
	logger    *slog.Logger
	providers observability.Providers
	metrics   *observability.ConversionMetrics
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}

		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	state := &app{}

	rootCmd := &cobra.Command{
		Use:           "typkat",
		Short:         "Convert typeset math content trees to KaTeX parse trees",
		Long:          `typkat converts math content trees into KaTeX parse-node trees serialised as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return state.shutdown(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.cfgFile, "config", "", "config file (default is ./typkat.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(convertCmd(state))
	rootCmd.AddCommand(validateCmd(state))
	rootCmd.AddCommand(diffCmd(state))
	rootCmd.AddCommand(symbolsCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(completionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	level, err := observability.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	if a.verbose {
		level = slog.LevelDebug
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceName = cfg.Telemetry.ServiceName
	obsCfg.ServiceVersion = version.Resolved()
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.LogLevel = level
	obsCfg.LogJSON = cfg.Logging.JSON
	obsCfg.LogOutput = cmd.ErrOrStderr()

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	metrics, err := observability.NewConversionMetrics(providers.Meter)
	if err != nil {
		return errors.Join(err, providers.Shutdown(context.Background()))
	}

	a.cfg = cfg
	a.logger = providers.Logger
	a.providers = providers
	a.metrics = metrics

	return nil
}

func (a *app) shutdown(ctx context.Context) error {
	if a.providers.Shutdown == nil {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return a.providers.Shutdown(ctx)
}

// converter builds a converter seeded from the loaded styles. recorder may be
// nil, in which case the telemetry meter receives the observations.
func (a *app) converter(recorder convert.Recorder) (*convert.Converter, error) {
	styles, err := a.cfg.Styles.Styles()
	if err != nil {
		return nil, err
	}

	if recorder == nil {
		recorder = a.metrics
	}

	return convert.New(
		convert.WithLogger(a.logger),
		convert.WithStyles(styles),
		convert.WithTracer(a.providers.Tracer),
		convert.WithMetrics(recorder),
	), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
