package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"simple name", "Ravi Kumar", true},
		{"all caps", "RAVI KUMAR", true},
		{"initials with periods", "Priya S. K.", true},
		{"single token", "Ravi", true},
		{"five tokens", "Anand Kumar Raja Gopal Iyer", true},
		{"too short", "Ra", false},
		{"too long", strings.Repeat("Abcde ", 12)+"End", false},
		{"six tokens", "A B C D E F", false},
		{"contains digits", "Ravi2 Kumar", false},
		{"lowercase first char", "ravi Kumar", false},
		{"government keyword", "Government Of India", false},
		{"government keyword cased", "GOVERNMENT OF INDIA", false},
		{"income tax keyword", "Income Tax Dept", false},
		{"signature keyword", "Signature Here", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidName(tt.candidate))
		})
	}
}

func TestExtractName_PAN(t *testing.T) {
	corpus := "Permanent Account Number\nName RAVI KUMAR\nPAN ABCDE1234F"

	name, conf := ExtractName(corpus, DocPAN)
	assert.Equal(t, "RAVI KUMAR", name)
	assert.Greater(t, conf, 0.0)
}

func TestExtractName_AadhaarSalutation(t *testing.T) {
	corpus := "To\nPriya S K\n1234 5678 9012"

	name, conf := ExtractName(corpus, DocAadhaar)
	assert.Equal(t, "Priya S K", name)
	assert.Greater(t, conf, 0.0)
}

func TestExtractName_PooledConfidenceBeatsSingleMatch(t *testing.T) {
	// "Ravi Kumar" is confirmed by the labeled pattern, the capitalized
	// sequence fallback, and the line scan; a bare capitalized line seen
	// once must not outrank it.
	corpus := "Name: Ravi Kumar\nRavi Kumar\nSome Other Words"

	name, _ := ExtractName(corpus, DocUnknown)
	assert.Equal(t, "Ravi Kumar", name)
}

func TestExtractName_NoCandidate(t *testing.T) {
	name, conf := ExtractName("", DocUnknown)
	assert.Empty(t, name)
	assert.Zero(t, conf)

	name, conf = ExtractName("1234 5678\n9999", DocUnknown)
	assert.Empty(t, name)
	assert.Zero(t, conf)
}

func TestExtractName_SkipsInstitutionalLines(t *testing.T) {
	corpus := "INCOME TAX DEPARTMENT\nGOVT OF INDIA\nName: Anita Devi\n"

	name, _ := ExtractName(corpus, DocPAN)
	assert.Equal(t, "Anita Devi", name)
}

func TestExtractName_CleansOCRNoise(t *testing.T) {
	// The pipe is a common misread of uppercase I.
	corpus := "Name: |mran Khan\n"

	name, _ := ExtractName(corpus, DocUnknown)
	assert.Equal(t, "Imran Khan", name)
}
