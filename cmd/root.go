package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	service "github.com/okian/hardcard/internal/app"
	"github.com/okian/hardcard/internal/config"
	"github.com/okian/hardcard/internal/domain/expression"
	"github.com/okian/hardcard/internal/domain/matching"
	"github.com/okian/hardcard/pkg/logger"
	"github.com/okian/hardcard/pkg/metrics"
)

// Output formats.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// cli carries state shared by every subcommand.
type cli struct {
	configPath string
	format     string
	logFormat  string
	logLevel   string

	cfg *config.Config
	svc *service.Service
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "hardcard",
		Short: "Bind template layers to Hard Card variables",
		Long: `hardcard analyzes motion graphics project documents, recommends
expressions that bind layers to the Hard Card variable store, and writes
them back into the document.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.svc != nil {
				c.svc.Stop()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML config file (overrides "+config.EnvConfigFile+")")
	pf.StringVarP(&c.format, "format", "o", formatYAML, "output format: yaml or json")
	pf.StringVar(&c.logFormat, "log-format", string(logger.FormatText), "log format: text or json")
	pf.StringVar(&c.logLevel, "log-level", "", "log level override: debug, info, warn, error")

	root.AddCommand(
		newAnalyzeCmd(c),
		newApplyCmd(c),
		newFindCmd(c),
		newRemoveCmd(c),
		newVarsCmd(c),
		newValidateCmd(c),
		newServeCmd(c),
	)
	return root
}

// setup initializes logging, loads configuration and starts the service.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if c.format != formatYAML && c.format != formatJSON {
		return fmt.Errorf("unknown output format %q", c.format)
	}
	if err := logger.Init(
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithFormat(logger.Format(c.logFormat)),
	); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	c.log = logger.Get()

	if c.configPath != "" {
		if err := os.Setenv(config.EnvConfigFile, c.configPath); err != nil {
			return fmt.Errorf("set config path: %w", err)
		}
	}
	ctx := cmd.Context()
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.LogLevel
	if c.logLevel != "" {
		level = c.logLevel
	}
	if err := logger.SetLevelString(level); err != nil {
		c.log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", level), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	metrics.Configure(
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithSubsystem(cfg.MetricsSubsystem),
		metrics.WithMetricPrefix(cfg.MetricsPrefix),
		metrics.WithHistogramBuckets(cfg.MetricsBuckets),
		metrics.WithCustomLabels(cfg.MetricsLabels),
	)

	mode, err := matching.ParsePatternMode(cfg.PatternMode)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	scale, err := expression.ParseScaleMode(cfg.ImageScaleMode)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	c.svc = service.New(
		service.WithLogger(c.log),
		service.WithStoreComposition(cfg.StoreComposition),
		service.WithNamespace(cfg.Namespace),
		service.WithPatternMode(mode),
		service.WithCaseSensitive(cfg.CaseSensitive),
		service.WithLogoBounds(cfg.LogoMaxWidth, cfg.LogoMaxHeight),
		service.WithImageScaleMode(scale),
		service.WithMinConfidence(cfg.MinConfidence),
		service.WithWorkers(cfg.Workers),
	)
	return c.svc.Start(ctx)
}

// print writes v to w in the selected output format.
func (c *cli) print(w io.Writer, v any) error {
	if c.format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// minConfidence resolves a flag value, negative meaning the configured default.
func (c *cli) minConfidence(flag float64) float64 {
	if flag < 0 {
		return c.svc.MinConfidence()
	}
	return flag
}
