package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"

	"github.com/smazurov/lightnode/cmd"
	"github.com/smazurov/lightnode/internal/api"
	"github.com/smazurov/lightnode/internal/config"
	"github.com/smazurov/lightnode/internal/events"
	"github.com/smazurov/lightnode/internal/hal"
	"github.com/smazurov/lightnode/internal/logging"
	"github.com/smazurov/lightnode/internal/metrics"
	"github.com/smazurov/lightnode/internal/sysfs"
	"github.com/smazurov/lightnode/internal/systemd"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"config.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8090" toml:"server.port" env:"SERVER_PORT"`

	// HAL settings
	SysfsRoot     string `help:"Prefix prepended to control paths (for testing against a fake sysfs tree)" default:"" toml:"hal.sysfs_root" env:"HAL_SYSFS_ROOT"`
	ColorOverride string `help:"RGB LED color override: 'direct' or a hex color such as 0xFF0000" default:"direct" toml:"hal.color_override" env:"HAL_COLOR_OVERRIDE"`
	Attention     bool   `help:"Enable the attention light" default:"false" toml:"hal.attention_enabled" env:"HAL_ATTENTION"`

	// Logging settings
	LoggingLevel  string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingHAL    string `help:"Light engine logging level" default:"info" toml:"logging.hal" env:"LOGGING_HAL"`
	LoggingSysfs  string `help:"Sysfs writer logging level" default:"info" toml:"logging.sysfs" env:"LOGGING_SYSFS"`
	LoggingAPI    string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
	LoggingHTTP   string `help:"HTTP request logging level" default:"info" toml:"logging.http" env:"LOGGING_HTTP"`
}

func main() {
	var cli humacli.CLI
	cli = humacli.New(func(hooks humacli.Hooks, opts *Options) {
		// Load configuration; CLI flags keep precedence over file and env
		if loadErr := config.Load(opts, cli.Root()); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		// Initialize logging system
		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"hal":   opts.LoggingHAL,
				"sysfs": opts.LoggingSysfs,
				"api":   opts.LoggingAPI,
				"http":  opts.LoggingHTTP,
			},
		})

		logger := logging.GetLogger("main")

		override, err := hal.ParseColorOverride(opts.ColorOverride)
		if err != nil {
			logger.Error("Invalid color override", "value", opts.ColorOverride, "error", err)
			os.Exit(1)
		}

		// Create event bus for in-process event handling
		eventBus := events.New()

		// Metrics registry and instrumented control file writer
		m := metrics.New()
		writer := metrics.NewInstrumentedWriter(sysfs.New(opts.SysfsRoot, logging.GetLogger("sysfs")), m)

		lightService := hal.New(&hal.Options{
			Writer:          writer,
			Controls:        hal.DefaultControls(),
			Logger:          logging.GetLogger("hal"),
			Bus:             eventBus,
			Metrics:         m,
			Override:        override,
			EnableAttention: opts.Attention,
		})

		server := api.NewServer(&api.Options{
			LightService:      lightService,
			EventBus:          eventBus,
			PrometheusHandler: m.Handler(),
		})

		// Re-apply logging levels when the config file changes
		watcher := config.NewWatcher(opts.Config, logger)
		watcher.OnReload(func(cfg logging.Config) {
			logging.Initialize(cfg)
		})

		notifier := systemd.NewNotifier(logger)

		hooks.OnStart(func() {
			if watchErr := watcher.Start(); watchErr != nil {
				logger.Warn("Config watcher not started", "error", watchErr)
			}

			notifier.Ready()
			notifier.StartWatchdog()

			logger.Info("Starting HTTP server", "port", opts.Port)
			if startErr := server.Start(opts.Port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			notifier.Stopping()

			if stopErr := watcher.Stop(); stopErr != nil {
				logger.Error("Error stopping config watcher", "error", stopErr)
			}
			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}
		})
	})

	cli.Root().AddCommand(cmd.CreateProbeCmd())

	cli.Run()
}
