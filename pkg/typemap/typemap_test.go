package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		sqlType string
		want    Type
	}{
		{"nvarchar(50)", String},
		{"varchar(255)", String},
		{"VARCHAR", String},
		{"text", String},
		{"LONGTEXT", String},
		{"integer", Integer},
		{"bigint", Integer},
		{"INT", Integer},
		{"smallint", Integer},
		{"timestamp without time zone", DateTime},
		{"TIMESTAMP", DateTime},
		{"boolean", Boolean},
		{"bool", Boolean},
		{"decimal(10,2)", Decimal},
		{"numeric(12,4)", Decimal},
		{"date", Date},
		{"DATE", Date},
		{"datetime", Date},
		{"interval", Integer},
	}

	for _, tt := range tests {
		t.Run(tt.sqlType, func(t *testing.T) {
			got, ok := Map(tt.sqlType)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMap_Unknown(t *testing.T) {
	for _, sqlType := range []string{"jsonb", "uuid", "bytea", "blob", "float", "double precision", "character varying", ""} {
		t.Run(sqlType, func(t *testing.T) {
			got, ok := Map(sqlType)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "decimal", Decimal.String())
}
