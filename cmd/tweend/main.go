// Package main provides the tween daemon entry point.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tweenbox/internal/app/engine"
	"github.com/osa030/tweenbox/internal/app/show"
	"github.com/osa030/tweenbox/internal/domain/curve"
	"github.com/osa030/tweenbox/internal/domain/stage"
	"github.com/osa030/tweenbox/internal/infra/config"
	"github.com/osa030/tweenbox/internal/infra/logger"
	"github.com/osa030/tweenbox/internal/infra/wsfeed"
)

var (
	app        = kingpin.New("tweend", "tweenbox animation daemon")
	configPath = app.Flag("config", "Path to config file").Default("config/tweend.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()

	// list commands
	listCurvesCmd = app.Command("list-curves", "List available curves and exit")
	listKindsCmd  = app.Command("list-kinds", "List available step kinds and exit")
)

func init() {
	// start command (default) - no need to store the command
	app.Command("start", "Start the daemon (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	switch command {
	case listCurvesCmd.FullCommand():
		printCurves()
		return
	case listKindsCmd.FullCommand():
		printKinds()
		return
	}

	// Initialize logger
	loggerConfig := logger.Config{
		Output: "stdout",
		Level:  "info",
		File:   "",
	}
	// Override with command-line flags if specified
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
		loggerConfig.File = *logfile
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Load config
	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Daemon error: %v", err)
		os.Exit(1)
	}
}

// run executes the main daemon logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	// Register configured curves before the show references them
	if err := cfg.RegisterCurves(); err != nil {
		return fmt.Errorf("invalid curve config: %w", err)
	}

	// Load show definition
	def, err := show.Load(cfg.Show.Path)
	if err != nil {
		return fmt.Errorf("failed to load show: %w", err)
	}

	// Build the stage and engine
	st := stage.New()
	eng := engine.New(st)
	eng.Clock().SetTimeScale(cfg.Engine.TimeScale)

	s, err := show.Build(def, st, eng)
	if err != nil {
		return fmt.Errorf("failed to build show: %w", err)
	}

	// Wire the frame feed to engine steps
	feed := wsfeed.New(time.Duration(cfg.Server.WriteTimeoutMs) * time.Millisecond)
	eng.SetHooks(engine.Hooks{
		AfterStep: func(frame uint64) {
			feed.Broadcast(wsfeed.Frame{
				T:       time.Now().UnixNano(),
				FrameID: frame,
				Nodes:   eng.Snapshot(),
			})
		},
	})

	// Create HTTP mux
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", feed.HandleWS)
	mux.HandleFunc("/healthz", handleHealth(eng, feed, s, time.Now()))

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	// Start the engine loop
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := eng.Run(ctx, cfg.Engine.FPS); err != nil {
			zlog.Error().Msgf("Engine loop error: %v", err)
		}
	}()

	// Channel to capture server startup errors
	serverErrCh := make(chan error, 1)
	serverStartedCh := make(chan struct{})

	// Start server
	go func() {
		zlog.Info().Msgf("Starting server: addr=%s", cfg.Server.Addr)
		close(serverStartedCh)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	<-serverStartedCh

	// Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case err := <-serverErrCh:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Stop the engine first so no more frames are broadcast
	cancel()
	feed.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Daemon stopped")

	return nil
}

// handleHealth reports engine and feed liveness.
func handleHealth(eng *engine.Engine, feed *wsfeed.Feed, s *show.Show, started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"show":        s.Name(),
			"frame_id":    eng.Frame(),
			"tweens":      eng.Len(),
			"active":      eng.Active(),
			"subscribers": feed.SubscriberCount(),
			"uptime_s":    time.Since(started).Seconds(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// printCurves prints available curve names.
func printCurves() {
	fmt.Println("Available Curves:")
	for _, name := range curve.Names() {
		fmt.Printf("  %s\n", name)
	}
}

// printKinds prints available step kinds.
func printKinds() {
	fmt.Println("Available Step Kinds:")
	descs := show.Describe()
	for _, kind := range show.Kinds() {
		fmt.Printf("  %-10s - %s\n", kind, descs[kind])
	}
}
