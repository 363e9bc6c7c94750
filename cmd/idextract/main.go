package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/docufill/idextract/internal/config"
	"github.com/docufill/idextract/internal/logger"
	"github.com/docufill/idextract/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "idextract",
	Short: "Extract identity fields from scanned Indian government IDs",
	Long: `idextract runs scanned images or PDFs of Indian government identity
documents (Aadhaar, PAN, driving licence, voter ID, passport) through a
multi-variant OCR sweep and heuristic field extraction, producing a
structured record of the holder's details.

Tesseract must be installed on the system for image inputs.`,
	Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(newExtractCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("main")
		var srcErr *pipeline.SourceError
		if errors.As(err, &srcErr) {
			log.Error().Str("path", srcErr.Path).Err(srcErr.Err).Msg("unreadable input")
		} else {
			log.Error().Err(err).Msg("command failed")
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
