package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/drill"
	"github.com/abhisek/mathdrill/internal/logging"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/rng"
)

type runOptions struct {
	machineOpts []drill.Option
	skipSplash  bool
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, ro runOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logCloser.Close()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	gen := problemgen.New(newRand(cfg, logger))
	opts := append([]drill.Option{drill.WithLogger(logger)}, ro.machineOpts...)
	machine := drill.NewMachine(gen, st.BestStatsRepo(), opts...)

	logger.Info("starting", "version", version, "seeded", cfg.Seed != 0)
	return app.Run(app.Options{
		Machine:    machine,
		SkipSplash: ro.skipSplash,
	})
}

// newRand returns a seeded source when a seed is configured, otherwise
// one backed by OS entropy.
func newRand(cfg config.Config, logger *slog.Logger) *rng.Rand {
	if cfg.Seed != 0 {
		return rng.New(rng.NewSeededSource(cfg.Seed), logger)
	}
	return rng.New(rng.CryptoSource{}, logger)
}
