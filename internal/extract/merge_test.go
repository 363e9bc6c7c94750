package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_SingleRecordIdentity(t *testing.T) {
	a := ExtractedData{Name: "Ravi Kumar", Pincode: "600001"}
	assert.Equal(t, a, Merge([]ExtractedData{a}))
}

func TestMerge_DuplicateIdempotent(t *testing.T) {
	a := ExtractedData{Name: "Ravi Kumar", Address: "12 Anna Nagar Chennai 600040"}
	assert.Equal(t, a, Merge([]ExtractedData{a, a}))
}

func TestMerge_LongestWins(t *testing.T) {
	short := ExtractedData{Address: "1234567890"}
	long := ExtractedData{Address: "12345678901234567890123456789012345678901234567890"}

	merged := Merge([]ExtractedData{short, long})
	assert.Len(t, merged.Address, 50)

	merged = Merge([]ExtractedData{long, short})
	assert.Len(t, merged.Address, 50)
}

func TestMerge_PerFieldIndependence(t *testing.T) {
	a := ExtractedData{Name: "Ravi Kumar Iyer", Phone: "9876543210"}
	b := ExtractedData{Name: "Ravi", Address: "12 Anna Nagar West Chennai 600040", Phone: "8765432109"}

	merged := Merge([]ExtractedData{a, b})
	assert.Equal(t, "Ravi Kumar Iyer", merged.Name)
	assert.Equal(t, "12 Anna Nagar West Chennai 600040", merged.Address)
	// Equal lengths keep the first seen.
	assert.Equal(t, "9876543210", merged.Phone)
}

func TestMerge_TrimsBeforeComparing(t *testing.T) {
	padded := ExtractedData{Name: "  Ravi   "}
	longer := ExtractedData{Name: "Ravi K"}

	merged := Merge([]ExtractedData{padded, longer})
	assert.Equal(t, "Ravi K", merged.Name)
}

func TestMerge_Empty(t *testing.T) {
	assert.Equal(t, ExtractedData{}, Merge(nil))
	assert.Equal(t, ExtractedData{}, Merge([]ExtractedData{}))
}
