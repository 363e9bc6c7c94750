package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Phone|Mobile|Mob|Contact|Tel|Cell)[:\s]*([6-9]\d{9})`),
	regexp.MustCompile(`\+91[\s-]?([6-9]\d{9})`),
	regexp.MustCompile(`\b([6-9]\d{9})\b`),
	regexp.MustCompile(`(\d{5}[\s-]?\d{5})`),
}

// ExtractPhones collects candidate mobile numbers from labeled, +91-prefixed,
// bare, and 5+5-grouped forms, returning them deduplicated in discovery
// order.
//
// A candidate survives only as a 10-digit number starting with 6-9 and
// carrying more than 3 distinct digits; repeated-digit runs are OCR noise
// or decorative numbers, not phones.
func ExtractPhones(text string) []string {
	var phones []string
	seen := make(map[string]bool)

	for _, pat := range phonePatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			phone := nonDigitRe.ReplaceAllString(m[1], "")
			if len(phone) != 10 || phone[0] < '6' || phone[0] > '9' {
				continue
			}
			if distinctDigits(phone) <= 3 {
				continue
			}
			if !seen[phone] {
				seen[phone] = true
				phones = append(phones, phone)
			}
		}
	}
	return phones
}

func distinctDigits(s string) int {
	var set [10]bool
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' && !set[r-'0'] {
			set[r-'0'] = true
			n++
		}
	}
	return n
}

var pincodeRe = regexp.MustCompile(`\b([1-9]\d{5})\b`)

// ExtractPincode returns the first bare 6-digit token with a non-zero
// leading digit, or "".
func ExtractPincode(text string) string {
	if m := pincodeRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

var dobPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:DOB|Date of Birth|Birth|D\.O\.B)[:\s]*(\d{2}[/-]\d{2}[/-]\d{4})`),
	regexp.MustCompile(`\b(\d{2}[/-]\d{2}[/-]\d{4})\b`),
}

// ExtractDateOfBirth prefers a label-anchored date over a bare one,
// normalizes dashes to slashes, and accepts only years 1920 through 2024.
func ExtractDateOfBirth(text string) string {
	for _, pat := range dobPatterns {
		if m := pat.FindStringSubmatch(text); m != nil {
			dob := strings.ReplaceAll(m[1], "-", "/")
			parts := strings.Split(dob, "/")
			year, err := strconv.Atoi(parts[len(parts)-1])
			if err == nil && year >= 1920 && year <= 2024 {
				return dob
			}
		}
	}
	return ""
}

var (
	femaleRe = regexp.MustCompile(`\b(?:Female|FEMALE|F)\b`)
	maleRe   = regexp.MustCompile(`\b(?:Male|MALE|M)\b`)
)

// ExtractGender checks for a female-indicating token before a male one;
// "FEMALE" contains "MALE", so the order is load-bearing.
func ExtractGender(text string) string {
	if femaleRe.MatchString(text) {
		return "Female"
	}
	if maleRe.MatchString(text) {
		return "Male"
	}
	return ""
}

var emailRe = regexp.MustCompile(`\b([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`)

// ExtractEmail returns the first email-shaped token, or "".
func ExtractEmail(text string) string {
	if m := emailRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

var fatherPatterns = []scoredPattern{
	{regexp.MustCompile(`(?i)(?:S/O|Son of)[:\s]+([A-Z][A-Za-z\s]{3,40}?)(?:\n|,|Address|DOB|\d)`), 0.95},
	{regexp.MustCompile(`(?i)(?:D/O|Daughter of)[:\s]+([A-Z][A-Za-z\s]{3,40}?)(?:\n|,|Address|DOB|\d)`), 0.95},
	{regexp.MustCompile(`(?i)(?:Father)[:\s']+s?\s*(?:Name)?[:\s]*([A-Z][A-Za-z\s]{3,40}?)(?:\n|,|Mother)`), 0.90},
}

// ExtractFatherName scans for S/O, D/O, and Father labels in order and
// returns the first capture that passes the name validity predicate. Unlike
// the holder's name this is not pooled; the labels are specific enough that
// the first hit is trusted.
func ExtractFatherName(text string) (string, float64) {
	for _, sp := range fatherPatterns {
		if m := sp.re.FindStringSubmatch(text); m != nil {
			father := strings.TrimSpace(spaceRunRe.ReplaceAllString(m[1], " "))
			if IsValidName(father) {
				return father, sp.weight
			}
		}
	}
	return "", 0.0
}

// knownCities is deliberately biased toward Tamil Nadu and the south, where
// the scanned documents this was tuned on originate, followed by the major
// metros.
var knownCities = []string{
	"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem",
	"Tirunelveli", "Tiruppur", "Erode", "Vellore", "Thoothukudi",
	"Dindigul", "Thanjavur", "Virudhunagar", "Karur", "Namakkal",
	"Mumbai", "Delhi", "Bangalore", "Bengaluru", "Hyderabad",
	"Pune", "Kolkata", "Ahmedabad", "Surat", "Jaipur", "Lucknow",
	"Kanpur", "Nagpur", "Indore", "Thane", "Bhopal", "Patna",
	"Vadodara", "Ghaziabad", "Ludhiana", "Agra", "Nashik",
	"Kochi", "Thiruvananthapuram", "Kozhikode", "Kannur",
}

var knownStates = []string{
	"Tamil Nadu", "Karnataka", "Kerala", "Andhra Pradesh",
	"Telangana", "Maharashtra", "Delhi", "Gujarat", "Rajasthan",
	"Uttar Pradesh", "Madhya Pradesh", "West Bengal", "Bihar",
	"Punjab", "Haryana", "Odisha", "Assam", "Jharkhand",
	"Chhattisgarh", "Uttarakhand", "Goa", "Himachal Pradesh",
}

// ExtractCity returns the first gazetteer city found as a case-insensitive
// substring of the corpus, or "".
func ExtractCity(text string) string {
	lower := strings.ToLower(text)
	for _, city := range knownCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			return city
		}
	}
	return ""
}

// ExtractState returns the first gazetteer state found in the corpus,
// also trying the space-stripped form ("TamilNadu") since OCR frequently
// drops the gap.
func ExtractState(text string) string {
	lower := strings.ToLower(text)
	for _, state := range knownStates {
		s := strings.ToLower(state)
		if strings.Contains(lower, s) || strings.Contains(lower, strings.ReplaceAll(s, " ", "")) {
			return state
		}
	}
	return ""
}
