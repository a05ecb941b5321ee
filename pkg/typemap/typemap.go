// Package typemap maps native SQL column types to Rails model generator field types.
package typemap

import "strings"

// Type is a normalized field type accepted by the model generator.
type Type string

const (
	String   Type = "string"
	Integer  Type = "integer"
	DateTime Type = "datetime"
	Boolean  Type = "boolean"
	Decimal  Type = "decimal"
	Date     Type = "date"
)

type rule struct {
	patterns []string
	result   Type
}

// Rules are tried in order and the first match wins. "datetime" therefore maps
// to Date, and "interval" or "point" map to Integer.
var rules = []rule{
	{patterns: []string{"nvarchar", "varchar", "text"}, result: String},
	{patterns: []string{"int"}, result: Integer},
	{patterns: []string{"timestamp"}, result: DateTime},
	{patterns: []string{"bool"}, result: Boolean},
	{patterns: []string{"decimal", "numeric"}, result: Decimal},
	{patterns: []string{"date"}, result: Date},
}

// Map converts a SQL type string such as "varchar(255)" or "TIMESTAMP WITH TIME ZONE"
// to its normalized type. The match is a case-insensitive substring match.
// ok is false when no rule matches.
func Map(sqlType string) (Type, bool) {
	lower := strings.ToLower(sqlType)
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(lower, p) {
				return r.result, true
			}
		}
	}
	return "", false
}

// String returns the generator spelling of the type.
func (t Type) String() string {
	return string(t)
}
