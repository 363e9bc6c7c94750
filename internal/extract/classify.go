package extract

import "regexp"

// docPatterns holds, per document type, the keyword and structural patterns
// whose combined match counts score that type during classification. Keyword
// patterns catch headers ("permanent account"), structural patterns catch
// the number shapes themselves (a grouped 12-digit Aadhaar, a PAN token).
var docPatterns = map[DocumentType][]*regexp.Regexp{
	DocAadhaar: {
		regexp.MustCompile(`(?i)aadhaar`),
		regexp.MustCompile(`(?i)unique\s+identification`),
		regexp.MustCompile(`(?i)UIDAI`),
		regexp.MustCompile(`\d{4}\s?\d{4}\s?\d{4}`),
		regexp.MustCompile(`\d{4}/\d{5}/\d{5}`),
	},
	DocPAN: {
		regexp.MustCompile(`(?i)permanent\s+account`),
		regexp.MustCompile(`(?i)income\s+tax`),
		regexp.MustCompile(`(?i)PAN`),
		regexp.MustCompile(`\b[A-Z]{5}\d{4}[A-Z]\b`),
	},
	DocDrivingLicense: {
		regexp.MustCompile(`(?i)driving\s+licence`),
		regexp.MustCompile(`(?i)motor\s+vehicle`),
		regexp.MustCompile(`(?i)transport`),
		regexp.MustCompile(`(?i)authorization\s+to\s+drive`),
		regexp.MustCompile(`(?i)DL\s*(?:No|Number)`),
		regexp.MustCompile(`\b[A-Z]{2}\d{2}\s?\d{11}\b`),
	},
	DocVoterID: {
		regexp.MustCompile(`(?i)election\s+commission`),
		regexp.MustCompile(`(?i)voter`),
		regexp.MustCompile(`(?i)EPIC`),
		regexp.MustCompile(`(?i)Elector\s*(?:'s)?\s*Photo`),
		regexp.MustCompile(`\b[A-Z]{3}\d{7}\b`),
	},
	DocPassport: {
		regexp.MustCompile(`(?i)passport`),
		regexp.MustCompile(`(?i)republic\s+of\s+india`),
		regexp.MustCompile(`(?i)ministry\s+of\s+external`),
		regexp.MustCompile(`\b[A-Z]\d{7}\b`),
	},
}

// ClassifyDocument scores the OCR corpus against each document type's
// pattern set and returns the best match.
//
// The score for a type is the total number of matches across its patterns.
// The strictly highest score wins; on a tie the type listed first in
// documentTypes is kept. If no pattern matches at all, DocUnknown is
// returned and field extraction falls back to universal patterns only.
//
// Classification is a pure function of the corpus text: the same input
// always yields the same type.
func ClassifyDocument(text string) DocumentType {
	best := DocUnknown
	bestScore := 0

	for _, docType := range documentTypes {
		score := 0
		for _, pat := range docPatterns[docType] {
			score += len(pat.FindAllStringIndex(text, -1))
		}
		if score > bestScore {
			best = docType
			bestScore = score
		}
	}

	return best
}
