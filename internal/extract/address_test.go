package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAddress_LabeledWithPincode(t *testing.T) {
	corpus := "Address: 12 Gandhi Nagar Main Road\nChennai 600001\n"

	addr, conf := ExtractAddress(corpus, DocUnknown)
	assert.Contains(t, addr, "Gandhi Nagar")
	assert.Contains(t, addr, "600001")
	assert.Greater(t, conf, 0.0)
}

func TestExtractAddress_DoorNumberPattern(t *testing.T) {
	corpus := "No: 45/2 Anna Nagar West Street District Chennai 600040\n"

	addr, conf := ExtractAddress(corpus, DocUnknown)
	assert.Contains(t, addr, "Anna Nagar")
	assert.Contains(t, addr, "600040")
	assert.InDelta(t, 0.98, conf, 0.001)
}

func TestExtractAddress_RejectsShortMatch(t *testing.T) {
	// A matched address under 20 characters is discarded.
	addr, conf := ExtractAddress("Address: X 600001\n", DocPAN)
	assert.Empty(t, addr)
	assert.Zero(t, conf)
}

func TestExtractAddress_RejectsInstitutionalText(t *testing.T) {
	corpus := "Address: GOVERNMENT OF INDIA OFFICE 600001\n"

	addr, _ := ExtractAddress(corpus, DocPAN)
	assert.NotContains(t, addr, "GOVERNMENT")
}

func TestExtractAddress_LineCaptureFallback(t *testing.T) {
	// No pincode anywhere, so no pattern can anchor; the line capture
	// assembles from the triggering keyword onward at fixed confidence.
	corpus := "House No 45\nAnna Nagar West\nChennai\n"

	addr, conf := ExtractAddress(corpus, DocUnknown)
	assert.Equal(t, "House No 45 Anna Nagar West Chennai", addr)
	assert.InDelta(t, 0.70, conf, 0.001)
}

func TestExtractAddress_Empty(t *testing.T) {
	addr, conf := ExtractAddress("", DocUnknown)
	assert.Empty(t, addr)
	assert.Zero(t, conf)
}
