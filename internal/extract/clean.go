package extract

import "strings"

// ocrCleaner fixes character confusions Tesseract commonly produces on
// government document typefaces. Remaining space runs are collapsed later
// by the extractors that care.
var ocrCleaner = strings.NewReplacer(
	"|", "I",
	"!", "I",
	"§", "S",
	"€", "E",
	"©", "C",
	"®", "R",
	"@", "a",
	"$", "S",
	"  ", " ",
	"   ", " ",
	"\t", " ",
)

// cleanText normalizes common OCR misreads before pattern matching.
func cleanText(text string) string {
	return ocrCleaner.Replace(text)
}
