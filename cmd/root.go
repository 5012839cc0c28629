package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/logging"
	"github.com/abhisek/mathdrill/internal/store"
)

// cliState holds what PersistentPreRunE resolved for the running command.
type cliState struct {
	cfg    *config.Config
	logger *zap.Logger
}

var rt cliState

var rootCmd = &cobra.Command{
	Use:   "mathdrill",
	Short: "Arithmetic drills with per-mistake grading",
	Long: `Mathdrill asks addition and subtraction questions and grades each answer
along independent dimensions: sign, operand order, operator, units and tens.

Questions can be constrained to exercise (--with) or avoid (--without) skills:
twodigit, subtract, overflow10, underflow10 and negative.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rt.logger != nil {
			_ = rt.logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MATHDRILL_DB env var)")
	pf.Int("min", 0, "Smallest operand")
	pf.Int("max", 99, "Largest operand")
	pf.Int("max-attempts", 1000, "Samples tried before giving up on the constraints")
	pf.StringSlice("with", nil, "Skills every question must exercise")
	pf.StringSlice("without", nil, "Skills no question may exercise")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("log-format", logging.FormatConsole, "Log format: console or json")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	if f := loader.ConfigFile(); f != "" {
		logger.Debug("loaded config file", zap.String("path", f))
	}
	rt = cliState{cfg: cfg, logger: logger}
	return nil
}

// resolveDBPath returns the database path using --db or MATHDRILL_DB,
// then the default XDG path.
func resolveDBPath() (string, error) {
	if p := rt.cfg.DB; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the configured database.
func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.logger.Debug("opened store", zap.String("path", dbPath))
	return st, nil
}
