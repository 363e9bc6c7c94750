// Package ocr runs the brute-force recognition sweep over preprocessed
// image variants using Tesseract (via gosseract/v2).
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Sweep Strategy
//
// Rather than guessing which engine mode and page segmentation mode suit a
// given scan, the sweep tries every combination on every preprocessing
// variant and concatenates all non-trivial output into one corpus. The
// same field read correctly under one combination and garbled under
// another both end up in the corpus; the extraction layer reconciles them.
//
// # Performance Considerations
//
// The sweep is CPU-bound and blocking: dozens of variants times fifteen
// mode combinations means hundreds of Tesseract invocations per document.
// Each attempt runs to completion with no per-call timeout, so a hung
// Tesseract call stalls the whole sweep. Budget accordingly when calling
// from latency-sensitive paths.
//
// # Temporary Files
//
// Each variant is written to a temporary PNG for Tesseract and removed
// after its attempts finish.
package ocr
