package extract

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExtractor() *Extractor {
	return New(zerolog.Nop())
}

func TestExtract_PANCorpus(t *testing.T) {
	corpus := "Permanent Account Number\nName RAVI KUMAR\nPAN ABCDE1234F"

	data, conf := testExtractor().Extract(corpus)
	assert.Equal(t, DocPAN, conf.DocumentType)
	assert.Equal(t, "RAVI KUMAR", data.Name)
	assert.Equal(t, "ABCDE1234F", data.IDNumber)
}

func TestExtract_AadhaarCorpus(t *testing.T) {
	corpus := "To\nPriya S K\n1234 5678 9012"

	data, conf := testExtractor().Extract(corpus)
	assert.Equal(t, DocAadhaar, conf.DocumentType)
	assert.Equal(t, "Priya S K", data.Name)
	assert.Equal(t, "123456789012", data.IDNumber)
}

func TestExtract_EmptyCorpus(t *testing.T) {
	data, conf := testExtractor().Extract("")

	assert.Equal(t, DocUnknown, conf.DocumentType)
	assert.Equal(t, ExtractedData{}, data)
	assert.Zero(t, conf.Name)
	assert.Zero(t, conf.Address)
	assert.Zero(t, conf.Phone)
	assert.Zero(t, conf.Pincode)
}

func TestExtract_FullRecord(t *testing.T) {
	corpus := "Permanent Account Number\n" +
		"Name RAVI KUMAR\n" +
		"S/O: Suresh Kumar\n" +
		"DOB: 15/08/1975\n" +
		"Gender: Male\n" +
		"PAN ABCPE1234F\n" +
		"Address: 12 Anna Nagar Main Road Chennai Tamil Nadu 600040\n" +
		"Mobile: 9876543210\n" +
		"Email: ravi@example.com\n"

	data, conf := testExtractor().Extract(corpus)
	assert.Equal(t, DocPAN, conf.DocumentType)
	assert.Equal(t, "RAVI KUMAR", data.Name)
	assert.Equal(t, "Suresh Kumar", data.FatherName)
	assert.Equal(t, "15/08/1975", data.DateOfBirth)
	assert.Equal(t, "Male", data.Gender)
	assert.Equal(t, "ABCPE1234F", data.IDNumber)
	assert.Contains(t, data.Address, "Anna Nagar")
	assert.Equal(t, "Chennai", data.City)
	assert.Equal(t, "Tamil Nadu", data.State)
	assert.Equal(t, "600040", data.Pincode)
	assert.Equal(t, "9876543210", data.Phone)
	assert.Equal(t, "ravi@example.com", data.Email)
}

func TestExtract_Deterministic(t *testing.T) {
	corpus := "To\nPriya S K\n1234 5678 9012\nChennai 600001"
	e := testExtractor()

	first, firstConf := e.Extract(corpus)
	for i := 0; i < 20; i++ {
		data, conf := e.Extract(corpus)
		assert.Equal(t, first, data)
		assert.Equal(t, firstConf, conf)
	}
}

func TestExtractedData_JSONFieldsAlwaysPresent(t *testing.T) {
	out, err := json.Marshal(ExtractedData{})
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(out, &fields))

	for _, key := range []string{
		"name", "fatherName", "dateOfBirth", "address", "city", "state",
		"pincode", "phone", "email", "idNumber", "gender",
	} {
		val, ok := fields[key]
		assert.True(t, ok, "field %s missing from JSON", key)
		assert.Empty(t, val)
	}
}
