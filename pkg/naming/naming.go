// Package naming derives Rails-style class and file names from table names.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config holds per-word inflection overrides for irregular or domain-specific words.
type Config struct {
	PluralOverrides   map[string]string `mapstructure:"plural_overrides"`
	SingularOverrides map[string]string `mapstructure:"singular_overrides"`
}

// Namer converts between table names, model class names and file base names.
type Namer struct {
	config Config
}

// New creates a Namer with the given configuration
func New(cfg Config) *Namer {
	return &Namer{config: cfg}
}

// Default returns a Namer without overrides
func Default() *Namer {
	return New(Config{})
}

// ModelName converts a table name to a singular PascalCase model name.
// Example: "user_profiles" -> "UserProfile"
func (n *Namer) ModelName(tableName string) string {
	return Camelize(n.Singularize(tableName))
}

// FileName converts a model name to its snake_case file base name.
// Example: "UserProfile" -> "user_profile"
func (n *Namer) FileName(modelName string) string {
	return Underscore(modelName)
}

// Camelize converts snake_case to PascalCase. Existing capitals are kept.
// Example: "user_profile" -> "UserProfile"
func Camelize(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		parts[i] = string(unicode.ToUpper(r)) + part[size:]
	}
	return strings.Join(parts, "")
}

// Underscore converts PascalCase or camelCase to snake_case, keeping acronyms together.
// Example: "HTMLPage" -> "html_page", "UserProfile" -> "user_profile"
func Underscore(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if r == '-' || r == ' ' {
			b.WriteByte('_')
			continue
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
