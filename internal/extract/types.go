package extract

// DocumentType identifies which Indian government ID a text corpus came from.
type DocumentType string

// Known document types. The order of documentTypes is significant: when two
// types score equally during classification, the earlier one wins.
const (
	DocAadhaar        DocumentType = "aadhaar"
	DocPAN            DocumentType = "pan"
	DocDrivingLicense DocumentType = "driving_license"
	DocVoterID        DocumentType = "voter_id"
	DocPassport       DocumentType = "passport"
	DocUnknown        DocumentType = "unknown"
)

var documentTypes = []DocumentType{
	DocAadhaar,
	DocPAN,
	DocDrivingLicense,
	DocVoterID,
	DocPassport,
}

// ExtractedData is the canonical output record of an extraction run.
//
// Every field is always present; an empty string means the field was not
// found. No field is cross-validated against another (the pincode is not
// checked against the named city, for example).
type ExtractedData struct {
	Name        string `json:"name"`
	FatherName  string `json:"fatherName"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	IDNumber    string `json:"idNumber"`
	Gender      string `json:"gender"`
}

// Confidence carries per-field confidence scores for an extraction run.
//
// Scores are in [0,1] for single-pattern fields; pooled fields (name) can
// accumulate above 1.0 when several independent patterns agree on the same
// candidate. Consumers that only need the chosen values can ignore it.
type Confidence struct {
	Name         float64      `json:"name"`
	Address      float64      `json:"address"`
	Phone        float64      `json:"phone"`
	Pincode      float64      `json:"pincode"`
	DocumentType DocumentType `json:"document_type"`
}
