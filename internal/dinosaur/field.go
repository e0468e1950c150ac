package dinosaur

import "sort"

// Field names a record attribute that AliveMya can project.
type Field string

const (
	FieldID             Field = "dinosaurId"
	FieldName           Field = "name"
	FieldPronunciation  Field = "pronunciation"
	FieldMeaningOfName  Field = "meaningOfName"
	FieldDiet           Field = "diet"
	FieldLengthInMeters Field = "lengthInMeters"
	FieldPeriod         Field = "period"
	FieldMya            Field = "mya"
	FieldInfo           Field = "info"
)

// accessor returns a field's value and whether the record carries it.
type accessor func(Record) (any, bool)

func stringAccessor(get func(Record) string) accessor {
	return func(r Record) (any, bool) {
		v := get(r)
		return v, v != ""
	}
}

var accessors = map[Field]accessor{
	FieldID:            stringAccessor(func(r Record) string { return r.ID }),
	FieldName:          stringAccessor(func(r Record) string { return r.Name }),
	FieldPronunciation: stringAccessor(func(r Record) string { return r.Pronunciation }),
	FieldMeaningOfName: stringAccessor(func(r Record) string { return r.MeaningOfName }),
	FieldDiet:          stringAccessor(func(r Record) string { return r.Diet }),
	FieldPeriod:        stringAccessor(func(r Record) string { return r.Period }),
	FieldInfo:          stringAccessor(func(r Record) string { return r.Info }),
	FieldLengthInMeters: func(r Record) (any, bool) {
		return r.LengthInMeters, true
	},
	FieldMya: func(r Record) (any, bool) {
		if r.Mya == nil {
			return nil, false
		}
		out := make([]float64, len(r.Mya))
		copy(out, r.Mya)
		return out, true
	},
}

// aliases maps alternative key spellings onto a Field.
var aliases = map[string]Field{
	"id": FieldID,
}

// LookupField resolves a key to a Field. ok is false for unknown keys.
func LookupField(key string) (Field, bool) {
	if f, ok := aliases[key]; ok {
		return f, true
	}
	f := Field(key)
	if _, ok := accessors[f]; !ok {
		return "", false
	}
	return f, true
}

// Fields returns every projectable field name, sorted.
func Fields() []string {
	names := make([]string, 0, len(accessors))
	for f := range accessors {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Value returns the value of field f on r. ok is false when the field is
// unknown or not set on this record.
func (r Record) Value(f Field) (any, bool) {
	get, ok := accessors[f]
	if !ok {
		return nil, false
	}
	return get(r)
}
