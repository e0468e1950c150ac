// Package dinosaur holds the dinosaur record type and the read-only queries
// that derive facts from a slice of records.
package dinosaur

import (
	"strconv"
	"strings"
)

// Record is one dinosaur's static descriptive data.
// Field tags follow the fixture layout, which names the identifier "dinosaurId".
type Record struct {
	ID             string    `yaml:"dinosaurId" json:"dinosaurId"`
	Name           string    `yaml:"name" json:"name"`
	Pronunciation  string    `yaml:"pronunciation" json:"pronunciation"`
	MeaningOfName  string    `yaml:"meaningOfName,omitempty" json:"meaningOfName,omitempty"`
	Diet           string    `yaml:"diet,omitempty" json:"diet,omitempty"`
	LengthInMeters float64   `yaml:"lengthInMeters" json:"lengthInMeters"`
	Period         string    `yaml:"period" json:"period"`
	Mya            []float64 `yaml:"mya" json:"mya"`
	Info           string    `yaml:"info" json:"info"`
}

// LastMya returns the last element of Mya: the younger bound of a range or
// the single point estimate. ok is false when Mya is empty.
func (r Record) LastMya() (float64, bool) {
	if len(r.Mya) == 0 {
		return 0, false
	}
	return r.Mya[len(r.Mya)-1], true
}

// FormatMya renders a mya value without a trailing ".0" for whole numbers.
func FormatMya(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MyaString renders the full mya sequence, e.g. "154-150" or "66".
func (r Record) MyaString() string {
	parts := make([]string, len(r.Mya))
	for i, v := range r.Mya {
		parts[i] = FormatMya(v)
	}
	return strings.Join(parts, "-")
}
