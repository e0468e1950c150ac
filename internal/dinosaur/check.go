package dinosaur

import (
	"fmt"
	"strings"
)

// CheckError describes a problem with a single record.
type CheckError struct {
	Index   int
	ID      string
	Message string
}

func (e CheckError) Error() string {
	return fmt.Sprintf("record[%d] (%s): %s", e.Index, e.ID, e.Message)
}

// CheckErrors is a collection of record problems.
type CheckErrors []CheckError

func (e CheckErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("record check failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Check reports records that break the assumptions the queries rely on.
// Queries never call it; a malformed record simply never matches.
func Check(records []Record) CheckErrors {
	var errors CheckErrors
	seen := make(map[string]int, len(records))

	for i, r := range records {
		add := func(msg string) {
			errors = append(errors, CheckError{Index: i, ID: r.ID, Message: msg})
		}

		if r.ID == "" {
			add("dinosaurId is required")
		} else if first, dup := seen[r.ID]; dup {
			add(fmt.Sprintf("duplicate dinosaurId, first seen at record[%d]", first))
		} else {
			seen[r.ID] = i
		}

		if r.LengthInMeters <= 0 {
			add("lengthInMeters must be positive")
		}

		switch len(r.Mya) {
		case 1:
		case 2:
			if r.Mya[0] < r.Mya[1] {
				add("mya range must list the older value first")
			}
		default:
			add(fmt.Sprintf("mya must have 1 or 2 values, got %d", len(r.Mya)))
		}
	}

	return errors
}
