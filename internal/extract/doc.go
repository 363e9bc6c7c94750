// Package extract turns noisy multi-hypothesis OCR text into a structured
// identity record for Indian government documents.
//
// The corpus fed to this package is typically the concatenation of dozens
// of OCR attempts over preprocessed variants of the same scan, so the same
// field may appear several times, correctly in one block and garbled in
// another. The extractors lean on that redundancy instead of fighting it:
// heuristic regex patterns propose candidates, candidates confirmed by
// several independent patterns accumulate confidence, and the best
// candidate per field wins.
//
// # Pipeline
//
// ClassifyDocument labels the corpus as one of the supported document types
// (Aadhaar, PAN, driving licence, voter ID, passport) or "unknown"; the
// label selects which type-specific pattern sets the field extractors try
// first. Extractor.Extract then runs every field extractor and assembles
// an ExtractedData record. Merge reconciles records from multiple source
// documents.
//
// # Failure Semantics
//
// Nothing in this package returns an error. A field that cannot be found is
// an empty string, an unclassifiable corpus is DocUnknown, and an empty
// corpus yields an all-empty record. Absence of data is an expected
// outcome, not a failure; I/O problems are the caller's concern and never
// reach this layer.
//
// # Determinism
//
// All extractors are pure functions of the corpus text and document type.
// Classification ties break toward the earlier type in the enumeration
// order, and candidate-pool ties break toward the candidate scored first,
// so repeated runs over the same corpus always produce the same record.
package extract
