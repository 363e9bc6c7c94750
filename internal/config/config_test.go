package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "eng", cfg.OCRLanguage)
	assert.Equal(t, []int{1, 2, 3}, cfg.EngineModes)
	assert.Equal(t, []int{3, 4, 6, 11, 12}, cfg.SegModes)
	assert.Equal(t, 10, cfg.MinTextLength)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("IDEXTRACT_OCR_LANGUAGE", "hin")
	t.Setenv("IDEXTRACT_LOG_LEVEL", "debug")
	t.Setenv("IDEXTRACT_MIN_TEXT_LENGTH", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hin", cfg.OCRLanguage)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.MinTextLength)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty language", func(c *Config) { c.OCRLanguage = "" }, "ocr_language"},
		{"no engine modes", func(c *Config) { c.EngineModes = nil }, "engine_modes"},
		{"no seg modes", func(c *Config) { c.SegModes = nil }, "seg_modes"},
		{"seg mode out of range", func(c *Config) { c.SegModes = []int{14} }, "segmentation mode"},
		{"negative seg mode", func(c *Config) { c.SegModes = []int{-1} }, "segmentation mode"},
		{"negative min length", func(c *Config) { c.MinTextLength = -1 }, "min_text_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ZeroMinLengthAllowed(t *testing.T) {
	cfg := Default()
	cfg.MinTextLength = 0
	assert.NoError(t, cfg.Validate())
}
