package extract

import (
	"regexp"
	"strings"
)

// IDKind names one of the ID-number shapes the comprehensive sweep looks
// for. Enrollment numbers are not a document type of their own; they appear
// on Aadhaar letters and stand in when the Aadhaar number itself is
// unreadable.
type IDKind string

const (
	IDAadhaar        IDKind = "aadhaar"
	IDEnrollment     IDKind = "enrollment"
	IDPAN            IDKind = "pan"
	IDDrivingLicense IDKind = "driving_license"
	IDVoterID        IDKind = "voter_id"
	IDPassport       IDKind = "passport"
)

// IDSet holds every ID number found in a corpus, keyed by kind, in the
// order the kinds were attempted.
type IDSet struct {
	values map[IDKind]string
	order  []IDKind
}

func (s *IDSet) put(kind IDKind, value string) {
	if s.values == nil {
		s.values = make(map[IDKind]string)
	}
	if _, ok := s.values[kind]; !ok {
		s.order = append(s.order, kind)
	}
	s.values[kind] = value
}

// Get returns the ID number found for kind, if any.
func (s *IDSet) Get(kind IDKind) (string, bool) {
	v, ok := s.values[kind]
	return v, ok
}

// First returns the earliest-found ID number, or "" for an empty set.
func (s *IDSet) First() string {
	if len(s.order) == 0 {
		return ""
	}
	return s.values[s.order[0]]
}

// Len returns the number of distinct ID kinds found.
func (s *IDSet) Len() int { return len(s.order) }

var (
	aadhaarIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{4}\s?\d{4}\s?\d{4})\b`),
		regexp.MustCompile(`(?:Aadhaar|AADHAAR|UID)[:\s]*(\d{4}\s?\d{4}\s?\d{4})`),
	}
	enrollmentIDRe = regexp.MustCompile(`(\d{4}/\d{5}/\d{5})`)
	panIDPatterns  = []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Z]{5}\d{4}[A-Z])\b`),
		regexp.MustCompile(`(?:PAN|Permanent Account)[^\n]*\n\s*([A-Z]{5}\d{4}[A-Z])`),
	}
	// The 4th character of a PAN encodes the holder category; anything
	// outside the issued set is an OCR misread.
	panStructRe  = regexp.MustCompile(`^[A-Z]{3}[ABCFGHLJPTF][A-Z]\d{4}[A-Z]$`)
	dlIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Z]{2}[-\s]?\d{2}[-\s]?\d{11})\b`),
		regexp.MustCompile(`\b([A-Z]{2}\d{13,14})\b`),
		regexp.MustCompile(`(?:DL|License|Licence)\s*(?:No|Number|#)?[:\s]*([A-Z]{2}[-\s]?\d{13,15})`),
	}
	voterIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Z]{3}\d{7})\b`),
		regexp.MustCompile(`(?:EPIC|Elector|Voter)[^\n]*\n\s*([A-Z]{3}\d{7})`),
	}
	passportIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Z]\d{7})\b`),
		regexp.MustCompile(`(?:Passport|Pass Port)[^\n]*\n\s*([A-Z]\d{7})`),
	}
	nonDigitRe = regexp.MustCompile(`[^\d]`)
	alphaRe    = regexp.MustCompile(`^[A-Z]{2}$`)
)

// ExtractAllIDs runs every ID-shape matcher over the corpus independently
// and keeps whatever validates, one value per kind.
//
// Validation per kind: Aadhaar numbers must be 12 digits and, per UIDAI
// issuance rules, never start with 6-9; PAN tokens must pass the structural
// category check; driving licences normalize to at least 13 characters
// behind a 2-letter state prefix; voter EPIC tokens cannot embed "PAN" or
// "TAX" (which would be a mangled tax header, not an EPIC).
func ExtractAllIDs(text string) *IDSet {
	ids := &IDSet{}

	// Aadhaar
aadhaar:
	for _, pat := range aadhaarIDPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			digits := nonDigitRe.ReplaceAllString(m[1], "")
			if len(digits) == 12 && !strings.ContainsAny(digits[:1], "6789") {
				ids.put(IDAadhaar, digits)
				break aadhaar
			}
		}
	}

	// Enrollment
	if m := enrollmentIDRe.FindStringSubmatch(text); m != nil {
		ids.put(IDEnrollment, m[1])
	}

	// PAN. The structural category check is a preference, not a gate: OCR
	// mangles the 4th letter often enough that a shape-only match is kept
	// when no candidate passes the strict check.
	var panFallback string
pan:
	for _, pat := range panIDPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			if panStructRe.MatchString(m[1]) {
				ids.put(IDPAN, m[1])
				break pan
			}
			if panFallback == "" {
				panFallback = m[1]
			}
		}
	}
	if _, ok := ids.Get(IDPAN); !ok && panFallback != "" {
		ids.put(IDPAN, panFallback)
	}

	// Driving license
	for _, pat := range dlIDPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			normalized := strings.NewReplacer(" ", "", "-", "").Replace(m[1])
			if len(normalized) >= 13 && alphaRe.MatchString(normalized[:2]) {
				ids.put(IDDrivingLicense, m[1])
				break
			}
		}
	}

	// Voter ID
	for _, pat := range voterIDPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			if !strings.Contains(m[1], "PAN") && !strings.Contains(m[1], "TAX") {
				ids.put(IDVoterID, m[1])
				break
			}
		}
	}

	// Passport
	for _, pat := range passportIDPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			ids.put(IDPassport, m[1])
			break
		}
	}

	return ids
}

// ChooseIDNumber picks the record's idNumber from the found set, letting
// the classified document type decide which kind is authoritative. An
// Aadhaar letter falls back to its enrollment number; documents of other
// or unknown types prefer voter ID, then passport, then whatever was found
// first.
func ChooseIDNumber(ids *IDSet, docType DocumentType) string {
	switch {
	case docType == DocPAN:
		if v, ok := ids.Get(IDPAN); ok {
			return v
		}
	case docType == DocDrivingLicense:
		if v, ok := ids.Get(IDDrivingLicense); ok {
			return v
		}
	case docType == DocAadhaar:
		if v, ok := ids.Get(IDAadhaar); ok {
			return v
		}
		if v, ok := ids.Get(IDEnrollment); ok {
			return v
		}
		return ""
	}
	if v, ok := ids.Get(IDVoterID); ok {
		return v
	}
	if v, ok := ids.Get(IDPassport); ok {
		return v
	}
	return ids.First()
}
