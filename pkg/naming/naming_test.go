package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelName(t *testing.T) {
	n := Default()

	tests := []struct {
		table string
		want  string
	}{
		{"users", "User"},
		{"user_profiles", "UserProfile"},
		{"categories", "Category"},
		{"people", "Person"},
		{"addresses", "Address"},
		{"order_items", "OrderItem"},
		{"news", "News"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			assert.Equal(t, tt.want, n.ModelName(tt.table))
		})
	}
}

func TestFileNameRoundTrip(t *testing.T) {
	n := Default()

	tests := []struct {
		model      string
		wantFile   string
		wantPlural string
	}{
		{"User", "user", "users"},
		{"UserProfile", "user_profile", "user_profiles"},
		{"Category", "category", "categories"},
		{"Person", "person", "people"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			file := n.FileName(tt.model)
			assert.Equal(t, tt.wantFile, file)
			assert.Equal(t, tt.wantPlural, n.Pluralize(file))
		})
	}
}

func TestCamelize(t *testing.T) {
	assert.Equal(t, "UserProfile", Camelize("user_profile"))
	assert.Equal(t, "User", Camelize("user"))
	assert.Equal(t, "UserProfile", Camelize("UserProfile"))
	assert.Equal(t, "ApiKey", Camelize("api__key"))
	assert.Equal(t, "", Camelize(""))
	assert.Equal(t, "ÉlèveNote", Camelize("élève_note"))
	assert.Equal(t, "Ωmega", Camelize("ωmega"))
}

func TestUnderscore(t *testing.T) {
	tests := map[string]string{
		"User":        "user",
		"UserProfile": "user_profile",
		"HTMLPage":    "html_page",
		"OAuth2Token": "o_auth2_token",
		"userProfile": "user_profile",
		"user":        "user",
		"Item2":       "item2",
		"":            "",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Underscore(in))
		})
	}
}

func TestOverrides(t *testing.T) {
	n := New(Config{
		PluralOverrides:   map[string]string{"staff": "staff_members"},
		SingularOverrides: map[string]string{"data": "data"},
	})

	assert.Equal(t, "staff_members", n.Pluralize("staff"))
	assert.Equal(t, "data", n.Singularize("data"))
	assert.Equal(t, "Data", n.ModelName("data"))
	assert.Equal(t, "users", n.Pluralize("user"))
}
