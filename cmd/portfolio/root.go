package main

import (
	"context"
	"io"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/builderportfolio/portfolio-system/internal/console"
	"github.com/builderportfolio/portfolio-system/internal/core/identity"
	"github.com/builderportfolio/portfolio-system/internal/core/service"
	"github.com/builderportfolio/portfolio-system/internal/infrastructure/memory"
	"github.com/builderportfolio/portfolio-system/internal/metrics"
	"github.com/builderportfolio/portfolio-system/internal/pkg/config"
	"github.com/builderportfolio/portfolio-system/pkg/logger"
)

// overrides holds flag values; only flags set on the command line replace
// the environment configuration.
type overrides struct {
	logLevel    string
	pretty      bool
	strictRoles bool
	metricsFile string
}

func (o *overrides) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.logLevel, "log-level", "info", "minimum log level: trace, debug, info, warn, error")
	fs.BoolVar(&o.pretty, "pretty", true, "human-readable logs when stderr is a terminal")
	fs.BoolVar(&o.strictRoles, "strict-roles", false, "reject registration role selectors other than 1 and 2")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "write a Prometheus text dump to this path on exit")
}

func (o *overrides) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if fs.Changed("pretty") {
		cfg.LogPretty = o.pretty
	}
	if fs.Changed("strict-roles") {
		cfg.StrictRoles = o.strictRoles
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	return cfg.Validate()
}

func newRootCmd() *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Track construction projects for project managers and builders",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := o.apply(cmd.Flags(), cfg); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	o.register(cmd.Flags())
	return cmd
}

// run wires the store, services and shell, and serves one console session.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty && isTerminal(errOut),
		Output: errOut,
		Env:    cfg.Env,
	})

	reg := prometheus.NewRegistry()
	opts := []service.Option{
		service.WithMetrics(metrics.New(reg)),
		service.WithStrictRoles(cfg.StrictRoles),
	}

	store := memory.NewStore()
	ids := identity.NewRegistry()
	accounts := service.NewAccountService(store, ids, log, opts...)
	projects := service.NewProjectService(store, ids, log, opts...)

	log.Info().Bool("strict_roles", cfg.StrictRoles).Msg("portfolio console starting")
	err := console.NewShell(accounts, projects, in, out, log).Run(ctx)

	stats := store.Stats()
	log.Info().
		Int("users", stats.Users).
		Int("projects", stats.Projects).
		Msg("portfolio console stopped")

	if cfg.MetricsFile != "" {
		if werr := metrics.WriteFile(cfg.MetricsFile, reg); werr != nil {
			log.Error().Err(werr).Str("path", cfg.MetricsFile).Msg("failed to write metrics")
			if err == nil {
				err = werr
			}
		}
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
