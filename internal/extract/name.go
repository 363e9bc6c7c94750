package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// scoredPattern pairs an extraction regex with the confidence weight each
// of its matches contributes to the candidate pool.
type scoredPattern struct {
	re     *regexp.Regexp
	weight float64
}

// Name patterns per document type. Tesseract output has no layout, so these
// anchor on the label text each card family prints before the holder's name
// ("Name" on PAN and licences, a postal "To" salutation on Aadhaar letters).
//
// RE2 has no lookahead, so the original trailing-context assertions are
// matched as consumed non-capturing terminators after a lazy quantifier;
// the capture group still ends where the lookahead would have.
var panNamePatterns = []scoredPattern{
	{regexp.MustCompile(`(?:Name|NAME)\s*[:\n]\s*([A-Z][A-Za-z\s]{3,50}?)(?:\n|Date of Birth|Father)`), 0.98},
	{regexp.MustCompile(`(?:Name|NAME)\s+([A-Z][A-Z\s]{3,50}?)(?:\n|\s\s)`), 0.95},
}

var dlNamePatterns = []scoredPattern{
	{regexp.MustCompile(`(?:Name|NAME|Holder)[:\s]+([A-Z][A-Za-z\s]{3,50}?)(?:\n|S/O|D/O|DOB|Address)`), 0.98},
	{regexp.MustCompile(`(?:Name|NAME)\s*[:\n]\s*([A-Z][A-Za-z\s]{3,50}?)\n`), 0.95},
}

var aadhaarNamePatterns = []scoredPattern{
	{regexp.MustCompile(`To[\s:]+([A-Z][a-z]{2,15}(?:\s+[A-Z](?:\s+[A-Z])?)?(?:\s+[A-Z][a-z]{2,15})?)`), 0.98},
	{regexp.MustCompile(`\b([A-Z][a-z]{3,15}\s+[A-Z]\s+[A-Z])\b`), 0.95},
}

var genericNamePatterns = []scoredPattern{
	{regexp.MustCompile(`(?:Name|NAME|To|TO)[:\s]+([A-Z][A-Za-z\s]{3,50}?)(?:\n|S/O|D/O|Father|Mother|DOB|Address|\d)`), 0.95},
}

// Universal fallbacks appended after the type-specific patterns: labeled
// captures, then bare capitalized sequences, then all-caps sequences.
var universalNamePatterns = []scoredPattern{
	{regexp.MustCompile(`(?m)(?:To|Name|NAME)[:\s]+([A-Z][A-Za-z\s]{3,50}?)(?:\n|[,.]|\s+(?:S/O|D/O|Father)|$)`), 0.92},
	{regexp.MustCompile(`\b([A-Z][a-z]{2,15}(?:\s+[A-Z][a-z]{2,15}){1,3})\b`), 0.80},
	{regexp.MustCompile(`\b([A-Z][a-z]{3,15}\s+[A-Z](?:\s+[A-Z])?)\b`), 0.85},
	{regexp.MustCompile(`\b([A-Z]{3,15}(?:\s+[A-Z]{3,15}){1,3})\b`), 0.75},
	{regexp.MustCompile(`(?:Card|CARD|License|LICENSE)[\s]{1,20}([A-Z][A-Za-z\s]{5,50}?)(?:\n|Father|Address|S/O|D/O)`), 0.85},
}

var (
	plainLineRe  = regexp.MustCompile(`^[A-Z][A-Za-z\s]{5,60}$`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
	nameTokenRe  = regexp.MustCompile(`^[A-Za-z.]+$`)
	headerWords  = []string{"GOVERNMENT", "INDIA", "INCOME TAX", "DEPARTMENT", "MINISTRY"}
	excludeWords = []string{
		"government", "india", "unique", "identification", "authority",
		"aadhaar", "income tax", "department", "permanent", "account",
		"driving", "license", "motor", "vehicle", "transport",
		"date of birth", "father", "address", "signature",
	}
)

// candidatePool accumulates confidence per candidate string while keeping
// insertion order, so equal-score ties resolve to the first candidate seen.
type candidatePool struct {
	scores map[string]float64
	order  []string
}

func newCandidatePool() *candidatePool {
	return &candidatePool{scores: make(map[string]float64)}
}

// add sums confidences rather than taking the max: a candidate confirmed by
// several independent heuristics should outrank a single isolated match.
func (p *candidatePool) add(candidate string, confidence float64) {
	if _, seen := p.scores[candidate]; !seen {
		p.order = append(p.order, candidate)
	}
	p.scores[candidate] += confidence
}

// best returns the highest-scoring candidate, or ("", 0) for an empty pool.
func (p *candidatePool) best() (string, float64) {
	var bestValue string
	var bestScore float64
	for _, candidate := range p.order {
		if p.scores[candidate] > bestScore {
			bestValue = candidate
			bestScore = p.scores[candidate]
		}
	}
	return bestValue, bestScore
}

// ExtractName finds the document holder's name in the OCR corpus.
//
// Type-specific patterns run first, then the universal fallbacks, every
// match of every pattern feeding one candidate pool. A final line scan adds
// a low-weight candidate for any standalone line that looks like a bare
// name and carries no institutional header keyword. The highest accumulated
// confidence wins; no surviving candidate yields ("", 0).
func ExtractName(text string, docType DocumentType) (string, float64) {
	text = cleanText(text)

	var patterns []scoredPattern
	switch docType {
	case DocPAN:
		patterns = panNamePatterns
	case DocDrivingLicense:
		patterns = dlNamePatterns
	case DocAadhaar:
		patterns = aadhaarNamePatterns
	default:
		patterns = genericNamePatterns
	}
	patterns = append(append([]scoredPattern{}, patterns...), universalNamePatterns...)

	pool := newCandidatePool()
	for _, sp := range patterns {
		for _, m := range sp.re.FindAllStringSubmatch(text, -1) {
			name := spaceRunRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
			if IsValidName(name) {
				pool.add(name, sp.weight)
			}
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || containsAny(strings.ToUpper(line), headerWords) {
			continue
		}
		if plainLineRe.MatchString(line) && IsValidName(line) {
			pool.add(line, 0.70)
		}
	}

	return pool.best()
}

// IsValidName reports whether a candidate string is plausible as a personal
// name on an Indian ID: 3-70 characters, one to five tokens of letters and
// periods only, an uppercase first character, and none of the institutional
// keywords that headers and footers leak into OCR output.
func IsValidName(name string) bool {
	if len(name) < 3 || len(name) > 70 {
		return false
	}

	name = strings.TrimSpace(spaceRunRe.ReplaceAllString(name, " "))
	parts := strings.Fields(name)
	if len(parts) < 1 || len(parts) > 5 {
		return false
	}
	for _, part := range parts {
		if !nameTokenRe.MatchString(part) {
			return false
		}
	}

	lower := strings.ToLower(name)
	for _, word := range excludeWords {
		if strings.Contains(lower, word) {
			return false
		}
	}

	first := []rune(name)[0]
	return unicode.IsUpper(first)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
