// Package sqlutil holds the identifier handling used when building queries
// against a configurable dinosaur table.
package sqlutil

import (
	"regexp"
	"strings"
)

// QuoteIdentifier wraps a MySQL identifier in backticks, doubling any
// embedded backtick.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// identifierPattern restricts configurable names to letters, digits and underscores.
var identifierPattern = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// IsValidIdentifier reports whether name is safe to use as a table or schema name.
func IsValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// QualifiedTable returns `schema`.`table`, or just `table` when schema is empty.
// Both parts are validated first.
func QualifiedTable(schema, table string) (string, error) {
	if !IsValidIdentifier(table) {
		return "", &InvalidIdentifierError{Name: table}
	}
	if schema == "" {
		return QuoteIdentifier(table), nil
	}
	if !IsValidIdentifier(schema) {
		return "", &InvalidIdentifierError{Name: schema}
	}
	return QuoteIdentifier(schema) + "." + QuoteIdentifier(table), nil
}

// InvalidIdentifierError is returned when an identifier contains invalid characters.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return "invalid identifier: " + e.Name + " (must contain only alphanumeric characters and underscores)"
}
