package dinosaur

import "fmt"

// MetersToFeet is the conversion factor used for reported lengths.
const MetersToFeet = 3.281

// Longest returns a single-entry map from the name of the longest dinosaur to
// its length in feet. Ties go to the first record in input order. An empty
// slice yields an empty map.
func Longest(records []Record) map[string]float64 {
	result := make(map[string]float64, 1)
	longest := 0.0
	name := ""

	for _, r := range records {
		if r.LengthInMeters > longest {
			longest = r.LengthInMeters
			name = r.Name
		}
	}

	if longest > 0 {
		result[name] = longest * MetersToFeet
	}
	return result
}

// Find returns the first record whose ID equals id.
func Find(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// NotFoundMessage is the text Describe returns for an unknown id.
func NotFoundMessage(id string) string {
	return fmt.Sprintf("A dinosaur with an ID of '%s' cannot be found.", id)
}

// Describe returns the formatted description of the dinosaur with the given
// id, or NotFoundMessage(id) when no record matches.
func Describe(records []Record, id string) string {
	r, ok := Find(records, id)
	if !ok {
		return NotFoundMessage(id)
	}

	last := ""
	if v, ok := r.LastMya(); ok {
		last = FormatMya(v)
	}

	return fmt.Sprintf("%s (%s)\n%s It lived in the %s period, over %s million years ago.",
		r.Name, r.Pronunciation, r.Info, r.Period, last)
}

// AliveAt reports whether the record was alive mya million years ago.
//
// A single point estimate m matches mya == m or mya == m-1. A two-value
// range [older, younger] matches younger <= mya <= older. Any other shape
// never matches.
func (r Record) AliveAt(mya float64) bool {
	switch len(r.Mya) {
	case 1:
		return mya == r.Mya[0] || mya == r.Mya[0]-1
	case 2:
		return mya >= r.Mya[1] && mya <= r.Mya[0]
	default:
		return false
	}
}

// AliveMya returns one value per record alive at mya, in input order.
//
// Without a key the value is the record ID. With a key the named field is
// returned instead; an unknown key, or a field that is empty on a given
// record, falls back to that record's ID.
func AliveMya(records []Record, mya float64, key ...string) []any {
	var field Field
	hasField := false
	if len(key) > 0 && key[0] != "" {
		field, hasField = LookupField(key[0])
	}

	values := make([]any, 0)
	for _, r := range records {
		if !r.AliveAt(mya) {
			continue
		}
		if hasField {
			if v, ok := r.Value(field); ok {
				values = append(values, v)
				continue
			}
		}
		values = append(values, r.ID)
	}
	return values
}
