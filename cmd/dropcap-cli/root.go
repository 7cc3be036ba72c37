package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	dropcap "github.com/goliatone/go-dropcap"
	"github.com/goliatone/go-dropcap/pkg/host"
	dropcapmodule "github.com/goliatone/go-dropcap/pkg/modules/dropcap"
)

var (
	cfgFile      string
	logLevel     string
	templatesDir string
)

var rootCmd = &cobra.Command{
	Use:   "dropcap-cli",
	Short: "Inspect and render the Drop Cap Text content module",
	Long: `dropcap-cli exposes the Drop Cap Text module outside a page builder.

Examples:
  dropcap-cli fields --format yaml
  dropcap-cli transitions
  dropcap-cli render --letter A --body "<p>Once upon a time</p>"
  dropcap-cli render --attrs instance.yaml --watch
  dropcap-cli render --templates ./theme --letter A
  dropcap-cli serve --addr :8080`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates", "", "directory whose templates/dropcap.tpl overrides the built-in markup")
}

// loadConfig reads --config when given, otherwise returns the defaults.
// --log-level overrides the configured level.
func loadConfig() (host.Config, error) {
	cfg := host.DefaultConfig()
	if strings.TrimSpace(cfgFile) != "" {
		loaded, err := host.LoadConfig(cfgFile)
		if err != nil {
			return host.Config{}, err
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(out io.Writer, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(parsed).With().Timestamp().Logger()
}

// newHost builds the host from the loaded config. Logs go to stderr so
// command output stays pipeable.
func newHost(cfg host.Config, reg prometheus.Registerer) (*host.Host, zerolog.Logger, error) {
	logger := newLogger(os.Stderr, cfg.LogLevel)
	var moduleOptions []dropcapmodule.Option
	if templatesDir != "" {
		moduleOptions = append(moduleOptions, dropcapmodule.WithTemplateDir(templatesDir))
	}
	h, err := dropcap.NewHostWithModule(moduleOptions,
		host.WithConfig(cfg),
		host.WithLogger(logger),
		host.WithMetrics(reg),
	)
	if err != nil {
		return nil, logger, err
	}
	return h, logger, nil
}

func hostFromFlags() (*host.Host, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	h, _, err := newHost(cfg, nil)
	return h, err
}
