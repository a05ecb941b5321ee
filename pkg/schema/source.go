// Package schema defines the catalog view scaffolding reads tables and columns through.
package schema

import "context"

// Column describes a single table column as reported by the database catalog.
type Column struct {
	Name     string `json:"name"`
	SQLType  string `json:"sql_type"`
	Nullable bool   `json:"nullable"`
	Position int    `json:"position"` // Zero-indexed
}

// Source is a read-only view of a connected database's catalog.
type Source interface {
	// Tables returns table names in catalog order.
	Tables(ctx context.Context) ([]string, error)
	// Columns returns the columns of a table ordered by position.
	Columns(ctx context.Context, table string) ([]Column, error)
}

// PrimaryKeyColumn is the column name that is never emitted as a generated field.
const PrimaryKeyColumn = "id"

// WithoutPrimaryKey returns the columns other than the primary key column.
func WithoutPrimaryKey(columns []Column) []Column {
	out := make([]Column, 0, len(columns))
	for _, col := range columns {
		if col.Name == PrimaryKeyColumn {
			continue
		}
		out = append(out, col)
	}
	return out
}

// ColumnNames returns the names of columns in order.
func ColumnNames(columns []Column) []string {
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	return names
}
