package extract

import "strings"

// Merge combines per-document extraction records into one.
//
// For each field independently, the longest non-empty trimmed value across
// the inputs wins; length is the proxy for completeness when the same field
// was read from several documents. Equal lengths keep the value seen first,
// so merging a list of identical records returns that record, and merging
// a single-element list is the identity.
func Merge(records []ExtractedData) ExtractedData {
	var merged ExtractedData

	pick := func(dst *string, val string) {
		val = strings.TrimSpace(val)
		if len(val) > len(*dst) {
			*dst = val
		}
	}

	for _, r := range records {
		pick(&merged.Name, r.Name)
		pick(&merged.FatherName, r.FatherName)
		pick(&merged.DateOfBirth, r.DateOfBirth)
		pick(&merged.Address, r.Address)
		pick(&merged.City, r.City)
		pick(&merged.State, r.State)
		pick(&merged.Pincode, r.Pincode)
		pick(&merged.Phone, r.Phone)
		pick(&merged.Email, r.Email)
		pick(&merged.IDNumber, r.IDNumber)
		pick(&merged.Gender, r.Gender)
	}

	return merged
}
