package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandai/players/src/app/players"
	playerinfra "github.com/sandai/players/src/infra/player"
	"github.com/sandai/players/src/platform/config"
	"github.com/sandai/players/src/platform/logging"
)

// deps carries the dependencies built once per invocation.
type deps struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	service  *players.Service
	repo     *playerinfra.MemoryRepository
	output   *Output
}

type rootFlags struct {
	configPath string
	logLevel   string
	output     string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	flags := rootFlags{}
	rt := &deps{}

	rootCmd := &cobra.Command{
		Use:   "playerctl",
		Short: "Work with players in an in-memory store",
		Long: `playerctl creates, generates and searches players.

Players live in memory for the duration of one command, which makes it a
handy way to exercise the validation rules, the fake builder and the
search filters.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if flags.logLevel != "" {
				cfg.Log.Level = flags.logLevel
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}

			rt.cfg = cfg
			rt.logger = logger
			rt.registry = prometheus.NewRegistry()
			rt.repo = playerinfra.NewMemoryRepository(logger)
			rt.service = players.NewService(rt.repo, logger, players.NewMetrics(rt.registry))
			rt.output = NewOutput(flags.output, cmd.OutOrStdout())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "players.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level override (env: PLAYERS_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "text", "Output format: text, json")

	rootCmd.AddCommand(newCreateCmd(rt))
	rootCmd.AddCommand(newFakeCmd(rt))
	rootCmd.AddCommand(newSearchCmd(rt))

	return rootCmd
}
