package dinosaur

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupField(t *testing.T) {
	tests := []struct {
		key    string
		want   Field
		wantOK bool
	}{
		{"id", FieldID, true},
		{"dinosaurId", FieldID, true},
		{"name", FieldName, true},
		{"mya", FieldMya, true},
		{"lengthInMeters", FieldLengthInMeters, true},
		{"Name", "", false},
		{"bogus-key", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := LookupField(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFields(t *testing.T) {
	fields := Fields()
	assert.Len(t, fields, 9)
	assert.IsIncreasing(t, fields)
	assert.Contains(t, fields, "dinosaurId")
	assert.NotContains(t, fields, "id")
}

func TestRecordValue(t *testing.T) {
	r := Record{ID: "x", Name: "X", LengthInMeters: 4.5, Mya: []float64{10}}

	v, ok := r.Value(FieldName)
	assert.True(t, ok)
	assert.Equal(t, "X", v)

	v, ok = r.Value(FieldLengthInMeters)
	assert.True(t, ok)
	assert.Equal(t, 4.5, v)

	_, ok = r.Value(FieldDiet)
	assert.False(t, ok, "empty string field is treated as absent")

	_, ok = Record{}.Value(FieldMya)
	assert.False(t, ok)

	_, ok = r.Value(Field("nope"))
	assert.False(t, ok)
}

func TestRecordMyaString(t *testing.T) {
	assert.Equal(t, "154-150", Record{Mya: []float64{154, 150}}.MyaString())
	assert.Equal(t, "78-77.5", Record{Mya: []float64{78, 77.5}}.MyaString())
	assert.Equal(t, "66", Record{Mya: []float64{66}}.MyaString())
	assert.Equal(t, "", Record{}.MyaString())
}
