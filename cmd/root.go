package cmd

import (
	"errors"
	"fmt"
	"os"

	"figma-asset-downloader/core/config"
	"figma-asset-downloader/core/logger"
	"figma-asset-downloader/feature/download"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it downloads, like the download command.
var RootCmd = &cobra.Command{
	Use:   "fad",
	Short: "Figma Asset Downloader",
	Long: `fad exports the frames of a Figma file as images into a local folder,
one sub folder per scale, and validates asset folders against a manifest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDownload,
}

// Exit codes returned by Execute.
const (
	exitError    = 1
	exitMismatch = 2
	exitPartial  = 3
)

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	if l, logErr := logger.New(&logger.Config{Level: "debug", Format: logger.FormatConsole}); logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, ErrManifestMismatch):
		return exitMismatch
	case download.IsFailed(err):
		return exitPartial
	default:
		return exitError
	}
}

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigFile, "Path to the TOML configuration file")
	addDownloadFlags(RootCmd)
}

// loadConfig reads the configuration with the command's flags bound on top.
func loadConfig(cmd *cobra.Command, keys map[string]string) (*config.Config, error) {
	file := config.DefaultConfigFile
	if f := cmd.Flag("config"); f != nil {
		file = f.Value.String()
	}

	cfg, err := config.Load(config.Options{
		Dir:      ".",
		File:     file,
		Flags:    cmd.Flags(),
		FlagKeys: keys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
