package extract

import (
	"regexp"
	"strings"
)

// Address patterns are priority-ordered and first-match-wins, unlike the
// pooled name strategy. Every pattern anchors on a trailing 6-digit pincode,
// the one structural element Indian addresses reliably end with.
var panAddressPatterns = []scoredPattern{
	{regexp.MustCompile(`(?is)(?:Address|ADDRESS)[:\s]+((?:.*?(?:\n.*?){1,5}?)?\d{6})`), 0.95},
	{regexp.MustCompile(`(?is)((?:Flat|House|Plot|Door)[^\n]*(?:\n[^\n]+){1,4}\d{6})`), 0.90},
}

var dlAddressPatterns = []scoredPattern{
	{regexp.MustCompile(`(?is)(?:Address|ADDRESS)[:\s]+((?:.*?(?:\n.*?){1,6}?)?\d{6})`), 0.95},
	{regexp.MustCompile(`(?is)((?:House|Door|Flat|No)[^\n]*(?:\n[^\n]+){1,5}\d{6})`), 0.90},
}

var genericAddressPatterns = []scoredPattern{
	{regexp.MustCompile(`(?is)((?:NO|No|D\.?No|H\.?No)[:\s]*\d+[/\-,]?\d*[^\n]*?(?:NAGAR|Nagar|POST|Post|Road|ROAD|Street|STREET|Patti|Village|Dist|District)[^\n]*?\d{6})`), 0.98},
	{regexp.MustCompile(`(?is)((?:NO|No|D\.?No)[:\s]*\d+[/\-]?\d*[^\n]*(?:\n[^\n]+){1,6}?\d{6})`), 0.95},
}

// Fallback locality patterns appended after the type-specific list.
var fallbackAddressPatterns = []scoredPattern{
	{regexp.MustCompile(`(?is)(?:Address|ADDRESS)[:\s]+(.*?\d{6})`), 0.88},
	{regexp.MustCompile(`(?is)([^\n]*(?:Nagar|Post|Road|Street|District|Dist|Village|City)[^\n]*\d{6})`), 0.80},
}

var (
	addressTriggerRe  = regexp.MustCompile(`(?i)(?:Address|ADDRESS|NO|No|D\.?No|House|Flat)`)
	pincodeAnywhereRe = regexp.MustCompile(`\d{6}`)
	addressRejects    = []string{"GOVERNMENT", "INCOME TAX"}
	triggerRejects    = []string{"GOVERNMENT", "DEPARTMENT", "INCOME TAX"}
	captureSkips      = []string{"GOVERNMENT", "INDIA", "INCOME TAX", "DEPARTMENT", "SIGNATURE"}
)

// ExtractAddress finds a postal address in the OCR corpus.
//
// The first pattern to match wins; the type-specific list runs before the
// locality-keyword fallbacks. A matched address is accepted only when it is
// longer than 20 characters and free of institutional header text.
//
// When no pattern matches, a line-capture fallback starts collecting lines
// at the first address-triggering keyword, skips institutional headers,
// stops at the first 6-digit pincode (or after 10 lines), and reports the
// assembled text at a fixed 0.70 confidence.
func ExtractAddress(text string, docType DocumentType) (string, float64) {
	var patterns []scoredPattern
	switch docType {
	case DocPAN:
		patterns = panAddressPatterns
	case DocDrivingLicense:
		patterns = dlAddressPatterns
	default:
		patterns = genericAddressPatterns
	}
	patterns = append(append([]scoredPattern{}, patterns...), fallbackAddressPatterns...)

	for _, sp := range patterns {
		m := sp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		addr := strings.TrimSpace(spaceRunRe.ReplaceAllString(m[1], " "))
		if len(addr) > 20 && !containsAny(strings.ToUpper(addr), addressRejects) {
			return addr, sp.weight
		}
	}

	return assembleAddressLines(text)
}

// assembleAddressLines is the last-resort scan over raw corpus lines.
func assembleAddressLines(text string) (string, float64) {
	var parts []string
	capturing := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if addressTriggerRe.MatchString(line) && !containsAny(strings.ToUpper(line), triggerRejects) {
			capturing = true
		}

		if !capturing || line == "" {
			continue
		}
		if containsAny(strings.ToUpper(line), captureSkips) {
			continue
		}

		parts = append(parts, line)

		if pincodeAnywhereRe.MatchString(line) {
			break
		}
		if len(parts) > 10 {
			break
		}
	}

	if len(parts) == 0 {
		return "", 0.0
	}
	addr := spaceRunRe.ReplaceAllString(strings.Join(parts, " "), " ")
	if len(addr) > 20 {
		return addr, 0.70
	}
	return "", 0.0
}
