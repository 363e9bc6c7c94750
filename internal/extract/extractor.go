package extract

import (
	"github.com/rs/zerolog"
)

// Extractor runs the full structured-extraction pass over an OCR corpus.
//
// It holds no state between calls; the only dependency is the diagnostic
// logger, injected so callers (and tests) decide where stage events go.
type Extractor struct {
	log zerolog.Logger
}

// New returns an Extractor that reports stage diagnostics to log.
func New(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract classifies the corpus and runs every field extractor against it.
//
// The returned record is always fully formed: a field the corpus does not
// yield stays an empty string, never an error. An empty corpus produces an
// all-empty record with document type "unknown".
func (e *Extractor) Extract(text string) (ExtractedData, Confidence) {
	var data ExtractedData
	conf := Confidence{DocumentType: ClassifyDocument(text)}

	e.log.Debug().
		Str("document_type", string(conf.DocumentType)).
		Int("corpus_bytes", len(text)).
		Msg("document classified")

	data.Name, conf.Name = ExtractName(text, conf.DocumentType)
	data.Address, conf.Address = ExtractAddress(text, conf.DocumentType)

	ids := ExtractAllIDs(text)
	data.IDNumber = ChooseIDNumber(ids, conf.DocumentType)
	e.log.Debug().
		Int("id_kinds_found", ids.Len()).
		Str("id_number", data.IDNumber).
		Msg("id sweep complete")

	if phones := ExtractPhones(text); len(phones) > 0 {
		data.Phone = phones[0]
		conf.Phone = 1.0
	}
	if data.Pincode = ExtractPincode(text); data.Pincode != "" {
		conf.Pincode = 1.0
	}
	data.DateOfBirth = ExtractDateOfBirth(text)
	data.Gender = ExtractGender(text)
	data.Email = ExtractEmail(text)
	data.FatherName, _ = ExtractFatherName(text)
	data.City = ExtractCity(text)
	data.State = ExtractState(text)

	e.log.Info().
		Str("document_type", string(conf.DocumentType)).
		Bool("name", data.Name != "").
		Bool("father_name", data.FatherName != "").
		Bool("date_of_birth", data.DateOfBirth != "").
		Bool("gender", data.Gender != "").
		Bool("address", data.Address != "").
		Bool("city", data.City != "").
		Bool("state", data.State != "").
		Bool("pincode", data.Pincode != "").
		Bool("phone", data.Phone != "").
		Bool("email", data.Email != "").
		Bool("id_number", data.IDNumber != "").
		Float64("name_confidence", conf.Name).
		Float64("address_confidence", conf.Address).
		Msg("extraction summary")

	return data, conf
}
