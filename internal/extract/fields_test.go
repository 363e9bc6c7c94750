package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhones(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		want   []string
	}{
		{"labeled", "Mobile: 9876543210", []string{"9876543210"}},
		{"plus91 prefix", "+91 9876543210", []string{"9876543210"}},
		{"bare", "call 9876543210 today", []string{"9876543210"}},
		{"grouped", "98765 43210", []string{"9876543210"}},
		{"repeated digits rejected", "9999999999", nil},
		{"leading 5 rejected", "5876543210", nil},
		{"deduplicated", "Mobile: 9876543210\n9876543210", []string{"9876543210"}},
		{"discovery order", "Tel: 9876543210 and 8765432109", []string{"9876543210", "8765432109"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhones(tt.corpus))
		})
	}
}

func TestExtractPincode(t *testing.T) {
	assert.Equal(t, "600001", ExtractPincode("Chennai 600001 India"))
	assert.Empty(t, ExtractPincode("012345"))
	assert.Empty(t, ExtractPincode("12345"))
	assert.Empty(t, ExtractPincode(""))
}

func TestExtractDateOfBirth(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		want   string
	}{
		{"labeled", "DOB: 15/08/1975", "15/08/1975"},
		{"dashes normalized", "Date of Birth: 15-08-1975", "15/08/1975"},
		{"bare date", "born on 15/08/1975 in Chennai", "15/08/1975"},
		{"year too early", "DOB: 01/01/1899", ""},
		{"year too late", "DOB: 01/01/2030", ""},
		{"boundary 1920", "DOB: 01/01/1920", "01/01/1920"},
		{"boundary 2024", "DOB: 01/01/2024", "01/01/2024"},
		{"no date", "no dates here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDateOfBirth(tt.corpus))
		})
	}
}

func TestExtractGender(t *testing.T) {
	assert.Equal(t, "Female", ExtractGender("Gender: Female"))
	assert.Equal(t, "Male", ExtractGender("Gender: Male"))
	// FEMALE contains MALE; the female check must run first.
	assert.Equal(t, "Female", ExtractGender("FEMALE"))
	assert.Equal(t, "Female", ExtractGender("Sex: F"))
	assert.Equal(t, "Male", ExtractGender("Sex: M"))
	assert.Empty(t, ExtractGender("no gender marker"))
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "ravi.kumar@example.com", ExtractEmail("Email: ravi.kumar@example.com"))
	assert.Empty(t, ExtractEmail("not an email"))
}

func TestExtractFatherName(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		want   string
	}{
		{"s/o label", "S/O: Krishnan Nair\n", "Krishnan Nair"},
		{"d/o label", "D/O Raman Pillai\n", "Raman Pillai"},
		{"father label", "Father's Name: Suresh Babu\n", "Suresh Babu"},
		{"invalid candidate rejected", "S/O: Government Office\n", ""},
		{"no label", "Ravi Kumar\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := ExtractFatherName(tt.corpus)
			assert.Equal(t, tt.want, got)
			if tt.want == "" {
				assert.Zero(t, conf)
			} else {
				assert.Greater(t, conf, 0.0)
			}
		})
	}
}

func TestExtractCityAndState(t *testing.T) {
	assert.Equal(t, "Chennai", ExtractCity("resident of chennai city"))
	assert.Equal(t, "Mumbai", ExtractCity("MUMBAI 400001"))
	assert.Empty(t, ExtractCity("nowhere in particular"))

	assert.Equal(t, "Tamil Nadu", ExtractState("Chennai, Tamil Nadu 600001"))
	assert.Equal(t, "Tamil Nadu", ExtractState("Chennai, TAMILNADU"))
	assert.Equal(t, "Kerala", ExtractState("Kochi, Kerala"))
	assert.Empty(t, ExtractState("no state named"))
}
