package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dwikygilang/framecheck/internal/config"
	"github.com/dwikygilang/framecheck/internal/observability"
	"github.com/dwikygilang/framecheck/internal/watch"
	"github.com/dwikygilang/framecheck/pkg/version"
)

const (
	readHeaderTimeout     = 5 * time.Second
	serverShutdownTimeout = 5 * time.Second
)

// WatchCommand holds dependencies for the watch command.
type WatchCommand struct{}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	wc := &WatchCommand{}

	cmd := &cobra.Command{
		Use:   "watch [folders...]",
		Short: "Poll folders and log sequence changes",
		Long: `Poll folders on an interval and log sequence state changes.

Runs until interrupted. With --listen, also serves /status (the current
reports as JSON), /metrics (Prometheus), /healthz and /readyz.

Examples:
  framecheck watch /renders/shot_010 /renders/shot_020
  framecheck watch --interval 30 --listen :9911 /renders/shot_010`,
		Args: cobra.ArbitraryArgs,
		RunE: wc.run,
	}

	registerFormatsFlag(cmd)
	registerAutoDetectFlag(cmd)
	cmd.Flags().Int("interval", config.DefaultWatchInterval, "Poll interval in seconds")
	cmd.Flags().String("listen", "", "Address for /status, /metrics, /healthz and /readyz (empty disables)")

	return cmd
}

func (wc *WatchCommand) run(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, args)
	if err != nil {
		return err
	}

	if len(s.folders) == 0 {
		return ErrNoFolders
	}

	providers, err := initWatchObservability(s)
	if err != nil {
		return err
	}

	defer func() {
		shutdownErr := providers.Shutdown(context.Background())
		if shutdownErr != nil {
			providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// With --listen, instruments come from the Prometheus provider so the
	// scrape endpoint actually sees them; otherwise from the OTLP (or noop)
	// provider built by Init.
	meter := providers.Meter

	var metricsHandler http.Handler

	if s.listen != "" {
		handler, meterProvider, promErr := observability.PrometheusHandler()
		if promErr != nil {
			return promErr
		}

		metricsHandler = handler
		meter = meterProvider.Meter("framecheck")
	}

	red, err := observability.NewREDMetrics(meter)
	if err != nil {
		return err
	}

	frames, err := observability.NewCheckMetrics(meter)
	if err != nil {
		return err
	}

	watcher, err := watch.New(watch.Config{
		Folders:    s.folders,
		Formats:    s.formats,
		AutoDetect: s.autoDetect,
		Interval:   s.interval,
		Logger:     providers.Logger,
		RED:        red,
		Frames:     frames,
	})
	if err != nil {
		return err
	}

	if s.listen != "" {
		startStatusServer(ctx, s.listen, metricsHandler, watcher, providers.Logger)
	}

	return watcher.Run(ctx)
}

func initWatchObservability(s settings) (observability.Providers, error) {
	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version.Version
	cfg.Mode = observability.ModeWatch
	cfg.LogLevel = parseLogLevel(s.logLevel)
	cfg.LogJSON = s.logJSON
	cfg = observability.ApplyEnv(cfg)

	return observability.Init(cfg)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func startStatusServer(ctx context.Context, addr string, metrics http.Handler, watcher *watch.Watcher, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/status", watcher.StatusHandler())
	mux.Handle("/metrics", metrics)
	mux.Handle("/healthz", observability.HealthHandler())
	mux.Handle("/readyz", observability.ReadyHandler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.Info("status server listening", "addr", addr)

		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status server failed", "error", err)
		}
	}()
}
