package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog"

	"github.com/docufill/idextract/internal/preprocess"
)

// SplitMarker separates retained text blocks in the combined corpus.
const SplitMarker = "\n===SPLIT===\n"

// Options configures a sweep. Zero values fall back to the defaults below.
type Options struct {
	// Language is the Tesseract language code ("eng" by default). The
	// corresponding training data must be installed on the system.
	Language string

	// EngineModes are Tesseract OCR engine modes to try per variant
	// (tessedit_ocr_engine_mode values).
	EngineModes []int

	// SegModes are page segmentation modes to try per engine mode.
	SegModes []int

	// MinTextLength is the trimmed length a recognition must exceed to be
	// retained in the corpus.
	MinTextLength int
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = "eng"
	}
	if len(o.EngineModes) == 0 {
		o.EngineModes = []int{1, 2, 3}
	}
	if len(o.SegModes) == 0 {
		// Auto, single column, single block, sparse, sparse with OSD.
		o.SegModes = []int{3, 4, 6, 11, 12}
	}
	if o.MinTextLength == 0 {
		o.MinTextLength = 10
	}
	return o
}

// Sweeper runs Tesseract across every combination of preprocessing variant,
// engine mode, and page segmentation mode.
type Sweeper struct {
	opts Options
	log  zerolog.Logger
}

// NewSweeper returns a Sweeper reporting per-attempt diagnostics to log.
func NewSweeper(log zerolog.Logger, opts Options) *Sweeper {
	return &Sweeper{opts: opts.withDefaults(), log: log}
}

// Run performs the full OCR sweep over the given variants and returns the
// combined text corpus.
//
// Every variant is recognized once per engine-mode x segmentation-mode
// combination; the cross-product is never short-circuited on first
// success, because downstream extraction benefits from the redundancy of
// duplicate and partial readings. A recognition is retained only when its
// trimmed text is longer than MinTextLength; retained blocks are tagged
// with their provenance ("[V3_OEM1_PSM6]") and joined with SplitMarker.
//
// Individual OCR failures are skipped, never escalated: a sweep in which
// every attempt fails returns "", and extraction over an empty corpus
// naturally yields an empty record.
func (s *Sweeper) Run(variants []preprocess.Variant) string {
	attempts := len(variants) * len(s.opts.EngineModes) * len(s.opts.SegModes)
	s.log.Info().
		Int("variants", len(variants)).
		Int("engine_modes", len(s.opts.EngineModes)).
		Int("seg_modes", len(s.opts.SegModes)).
		Int("attempts", attempts).
		Msg("starting OCR sweep")

	var blocks []string
	for i, variant := range variants {
		path, err := saveToTemp(variant.Image, fmt.Sprintf("idextract-v%d", i))
		if err != nil {
			s.log.Debug().Err(err).Str("variant", variant.Label).Msg("variant not written, skipping")
			continue
		}

		for _, oem := range s.opts.EngineModes {
			for _, psm := range s.opts.SegModes {
				text, err := s.recognize(path, oem, psm)
				if err != nil {
					s.log.Debug().Err(err).
						Str("variant", variant.Label).
						Int("oem", oem).
						Int("psm", psm).
						Msg("attempt failed")
					continue
				}
				if len(strings.TrimSpace(text)) > s.opts.MinTextLength {
					blocks = append(blocks, fmt.Sprintf("[V%d_OEM%d_PSM%d]\n%s\n", i, oem, psm, text))
				}
			}
		}

		os.Remove(path)
	}

	s.log.Info().Int("retained_blocks", len(blocks)).Msg("OCR sweep complete")
	return strings.Join(blocks, SplitMarker)
}

// recognize performs one Tesseract invocation. A fresh client per attempt
// keeps engine-mode changes reliable; the mode is an init-time parameter
// that cannot be flipped on a live client.
func (s *Sweeper) recognize(imagePath string, oem, psm int) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.opts.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetVariable("tessedit_ocr_engine_mode", strconv.Itoa(oem)); err != nil {
		return "", fmt.Errorf("failed to set engine mode: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(psm)); err != nil {
		return "", fmt.Errorf("failed to set segmentation mode: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// saveToTemp writes an image to a temporary PNG file; Tesseract needs a
// file path. The caller removes the file when the variant's attempts are
// done.
func saveToTemp(img image.Image, prefix string) (string, error) {
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d.png", prefix, os.Getpid()))

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return tmpPath, nil
}
