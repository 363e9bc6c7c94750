// Package pipeline wires the preprocessing, OCR sweep, and extraction
// stages into the document-to-record flow consumed by the CLI (or any
// other front end).
package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/docufill/idextract/internal/config"
	"github.com/docufill/idextract/internal/extract"
	"github.com/docufill/idextract/internal/ocr"
	"github.com/docufill/idextract/internal/pdftext"
	"github.com/docufill/idextract/internal/preprocess"
)

// SourceError reports that an input document could not be read at all, as
// opposed to reading fine and yielding no extractable text. Callers should
// surface it rather than treating the document as empty.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("unreadable source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Pipeline runs documents through preprocessing, OCR, and extraction. It
// holds no per-document state; one Pipeline can process any number of
// documents sequentially, and distinct Pipelines may run concurrently.
type Pipeline struct {
	cfg       config.Config
	log       zerolog.Logger
	sweeper   *ocr.Sweeper
	extractor *extract.Extractor
}

// New constructs a Pipeline with the given configuration and diagnostic
// logger.
func New(cfg config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg: cfg,
		log: log,
		sweeper: ocr.NewSweeper(log, ocr.Options{
			Language:      cfg.OCRLanguage,
			EngineModes:   cfg.EngineModes,
			SegModes:      cfg.SegModes,
			MinTextLength: cfg.MinTextLength,
		}),
		extractor: extract.New(log),
	}
}

// ExtractFromPDF returns the embedded text layer of a digitally generated
// PDF. An unreadable or corrupt file is reported as a *SourceError.
func (p *Pipeline) ExtractFromPDF(path string) (string, error) {
	text, err := pdftext.ExtractText(path)
	if err != nil {
		return "", &SourceError{Path: path, Err: err}
	}
	return text, nil
}

// ExtractFromImage runs the full variant-generation and OCR sweep over the
// image at path and returns the combined text corpus.
//
// An image that cannot be opened is a *SourceError. Once the image is
// open, nothing fails: unproductive variants and failed OCR attempts are
// skipped, and the worst case is an empty corpus.
func (p *Pipeline) ExtractFromImage(path string) (string, error) {
	img, err := preprocess.Load(path)
	if err != nil {
		return "", &SourceError{Path: path, Err: err}
	}

	variants := preprocess.Generate(img)
	p.log.Info().Str("path", path).Int("variants", len(variants)).Msg("variants generated")

	return p.sweeper.Run(variants), nil
}

// ExtractStructured classifies the corpus and extracts every field,
// returning the record and its confidence scores. It never fails; an
// empty or unintelligible corpus yields an all-empty record.
func (p *Pipeline) ExtractStructured(text string) (extract.ExtractedData, extract.Confidence) {
	return p.extractor.Extract(text)
}

// Merge combines per-document records into one, keeping the longest
// non-empty value per field.
func (p *Pipeline) Merge(records []extract.ExtractedData) extract.ExtractedData {
	return extract.Merge(records)
}

// ProcessFile runs one document end to end, dispatching on its extension:
// .pdf goes through the text layer, .jpg/.jpeg/.png through the OCR sweep.
// Unsupported extensions are a *SourceError.
func (p *Pipeline) ProcessFile(path string) (extract.ExtractedData, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = p.ExtractFromPDF(path)
	case ".jpg", ".jpeg", ".png":
		text, err = p.ExtractFromImage(path)
	default:
		return extract.ExtractedData{}, &SourceError{
			Path: path,
			Err:  fmt.Errorf("unsupported file type %q", filepath.Ext(path)),
		}
	}
	if err != nil {
		return extract.ExtractedData{}, err
	}

	p.log.Info().Str("path", path).Int("corpus_bytes", len(text)).Msg("text extracted")
	data, _ := p.ExtractStructured(text)
	return data, nil
}

// ProcessFiles runs every document through ProcessFile and merges the
// results. Documents are processed sequentially; a per-document failure
// aborts the batch so the caller never gets a silently partial merge.
func (p *Pipeline) ProcessFiles(paths []string) (extract.ExtractedData, error) {
	records := make([]extract.ExtractedData, 0, len(paths))
	for _, path := range paths {
		data, err := p.ProcessFile(path)
		if err != nil {
			return extract.ExtractedData{}, err
		}
		records = append(records, data)
	}
	return extract.Merge(records), nil
}
