package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JakubMiodunka/resource-monitor/internal/config"
	"github.com/JakubMiodunka/resource-monitor/internal/dashboard"
	"github.com/JakubMiodunka/resource-monitor/internal/display"
	"github.com/JakubMiodunka/resource-monitor/internal/logger"
	"github.com/JakubMiodunka/resource-monitor/internal/metrics"
)

func runMonitor(cmd *cobra.Command, args []string) error {
	// Load config
	cfg := config.LoadOrDefault(cfgFile)

	// Flag beats config
	if cmd.Flags().Changed("advanced") {
		cfg.Display.Advanced = advanced
	}

	// Create logger
	log, err := logger.New(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	log.Info("resmon starting",
		"version", Version,
		"advanced", cfg.Display.Advanced,
		"interval", cfg.SamplingInterval(),
	)

	// Take over the terminal; Fini restores it on every exit path.
	surface, err := display.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer surface.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Quit keys arrive as terminal events while tcell runs the
	// terminal in raw mode; SIGTERM still covers non-keyboard kills.
	go func() {
		surface.WaitQuit()
		cancel()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown signal received")
		cancel()
	}()

	source := metrics.NewSystemSource()

	dash, err := dashboard.New(surface, source, cfg.SamplingInterval(), cfg.Display.Advanced, log)
	if err != nil {
		if errors.Is(err, display.ErrSurfaceTooSmall) {
			return fmt.Errorf("terminal window is too small to display the dashboard, please enlarge it: %w", err)
		}
		return err
	}

	if err := dash.Run(ctx); err != nil {
		log.Error("dashboard failed", "error", err)
		return err
	}

	log.Info("resmon stopped")
	return nil
}
