// Package config holds runtime configuration for the extraction pipeline.
//
// Values come from defaults overridden by IDEXTRACT_-prefixed environment
// variables (IDEXTRACT_OCR_LANGUAGE, IDEXTRACT_LOG_LEVEL, ...), loaded
// through viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the pipeline's runtime configuration.
type Config struct {
	// OCRLanguage is the Tesseract language code.
	OCRLanguage string

	// EngineModes are the Tesseract engine modes swept per variant.
	EngineModes []int

	// SegModes are the page segmentation modes swept per engine mode.
	SegModes []int

	// MinTextLength is the trimmed length an OCR result must exceed to be
	// kept in the corpus.
	MinTextLength int

	// LogLevel and LogFormat configure the CLI logger.
	LogLevel  string
	LogFormat string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OCRLanguage:   "eng",
		EngineModes:   []int{1, 2, 3},
		SegModes:      []int{3, 4, 6, 11, 12},
		MinTextLength: 10,
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// Load builds the configuration from defaults and environment overrides.
func Load() (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("IDEXTRACT")
	v.AutomaticEnv()

	v.SetDefault("ocr_language", cfg.OCRLanguage)
	v.SetDefault("engine_modes", cfg.EngineModes)
	v.SetDefault("seg_modes", cfg.SegModes)
	v.SetDefault("min_text_length", cfg.MinTextLength)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)

	cfg.OCRLanguage = v.GetString("ocr_language")
	cfg.EngineModes = v.GetIntSlice("engine_modes")
	cfg.SegModes = v.GetIntSlice("seg_modes")
	cfg.MinTextLength = v.GetInt("min_text_length")
	cfg.LogLevel = v.GetString("log_level")
	cfg.LogFormat = v.GetString("log_format")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot work
// with.
func (c Config) Validate() error {
	if c.OCRLanguage == "" {
		return fmt.Errorf("ocr_language must not be empty")
	}
	if len(c.EngineModes) == 0 {
		return fmt.Errorf("engine_modes must not be empty")
	}
	if len(c.SegModes) == 0 {
		return fmt.Errorf("seg_modes must not be empty")
	}
	for _, m := range c.SegModes {
		if m < 0 || m > 13 {
			return fmt.Errorf("invalid page segmentation mode %d", m)
		}
	}
	if c.MinTextLength < 0 {
		return fmt.Errorf("min_text_length must not be negative")
	}
	return nil
}
