package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hyoaru/ghost-as-a-service/internal/config"
	"github.com/hyoaru/ghost-as-a-service/internal/server"
	"github.com/hyoaru/ghost-as-a-service/internal/service"
)

// Version is set at build time.
var Version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool

	// Resolved at startup
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ghost",
	Short: "ghost-as-a-service - plausible excuses on demand",
	Long: `ghost-as-a-service generates vague, corporate-sounding excuses for
declining social obligations.

Excuses come from a configurable backend: an AI text generator (Gemini or
Anthropic) or a static bank of prepopulated excuses.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		if level, perr := zapcore.ParseLevel(cfg.Logging.Level); perr == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(level)
		}
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// generateCmd produces one excuse and prints it.
var generateCmd = &cobra.Command{
	Use:   "generate <request...>",
	Short: "Generate an excuse for a request",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, err := service.NewFromConfig(ctx, cfg, logger)
		if err != nil {
			return err
		}

		op, err := service.NewGenerateExcuse(strings.Join(args, " "))
		if err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, cfg.GetTimeout())
		defer cancel()

		generation, err := svc.Execute(callCtx, op)
		if err != nil {
			return err
		}

		fmt.Println(generation.Excuse)
		if generation.Metadata != nil {
			logger.Debug("generation metadata",
				zap.String("model", generation.Metadata.Model),
				zap.Int("tokens", generation.Metadata.Tokens))
		}
		return nil
	},
}

// serveCmd runs the HTTP entry adapter.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the excuse API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := service.NewFromConfig(ctx, cfg, logger)
		if err != nil {
			return err
		}

		srv := server.New(svc, logger, server.Options{
			Addr:           cfg.Server.Addr,
			RequestTimeout: cfg.GetRequestTimeout(),
		})

		return srv.ListenAndServe(ctx)
	},
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ghost-as-a-service %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "ghost.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
