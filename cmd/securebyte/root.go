package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/securebyte/securebyte/internal/analyzer"
	"github.com/securebyte/securebyte/internal/chunker"
	"github.com/securebyte/securebyte/internal/config"
	"github.com/securebyte/securebyte/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "securebyte [file]",
	Short: "Parallel chunked code analysis",
	Long: "SecureByte splits a source file into semantically coherent chunks, " +
		"submits every chunk to an LLM analysis service in parallel, and " +
		"assembles the per-chunk findings into one ordered report.\n\n" +
		"The report goes to stdout; logs go to stderr.",
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: runInitialize,
	RunE:              runAnalyze,
	SilenceUsage:      true,
}

func init() {
	rootCmd.Flags().StringP("file", "f", "", "path to the source file to analyze")
	rootCmd.Flags().String("provider", "", "analysis provider (openai, anthropic, mock)")
	rootCmd.Flags().String("model", "", "model override for the selected provider")
	rootCmd.Flags().Int("lines-per-chunk", chunker.DefaultLinesPerChunk, "fallback window size in lines")
	rootCmd.Flags().Int("workers", 0, "max concurrent analyses (0 = one task per chunk)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	_ = viper.BindPFlag("provider", rootCmd.Flags().Lookup("provider"))
	_ = viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("lines_per_chunk", rootCmd.Flags().Lookup("lines-per-chunk"))
	_ = viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func runInitialize(cmd *cobra.Command, args []string) error {
	return config.Init()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path, err := sourcePath(cmd, args)
	if err != nil {
		return err
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(settings.Debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := newClient(settings)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	logger.Info("starting analysis",
		zap.String("file", path),
		zap.String("provider", client.Provider()),
		zap.String("model", client.Model()))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(client, pipeline.Settings{
		LinesPerChunk: settings.LinesPerChunk,
		Workers:       settings.Workers,
		Persona:       settings.Persona,
	}, logger)

	report, err := p.RunFile(ctx, path)
	if err != nil {
		return err
	}

	return pipeline.Render(os.Stdout, report)
}

// sourcePath resolves the file to analyze from the positional argument or
// the --file flag.
func sourcePath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return path, nil
	}
	return "", errors.New("no source file given: pass a path or use --file")
}

// newClient builds the analysis client from settings, falling back to
// environment detection when no provider is configured.
func newClient(settings *config.Settings) (analyzer.Client, error) {
	if settings.Provider == "" {
		return analyzer.NewFromEnv()
	}
	return analyzer.New(analyzer.Config{
		Provider:  settings.Provider,
		Model:     settings.Model,
		CacheSize: analyzer.DefaultCacheSize,
	})
}

// newLogger builds the process logger. Logs go to stderr so stdout stays
// reserved for the report.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
