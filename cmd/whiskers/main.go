package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sethgrid/whiskers/internal/config"
)

var (
	configPath string
	logFile    string
)

const Version = "v1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "whiskers",
		Short:         "Whiskers - a cat that lives in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
				return
			}
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (.toml, .yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(horoscopeCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(chaseCmd)
	rootCmd.AddCommand(feedCmd)
	return rootCmd
}

// loadConfig resolves --config, or discovers one from the working
// directory.
func loadConfig() (config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return config.Resolve(configPath, cwd)
}

// newLogger writes text logs to --log-file, or nowhere.
func newLogger() (*slog.Logger, func(), error) {
	if logFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
