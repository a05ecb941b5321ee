package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/marshallshelly/domino/pkg/schema"
)

// SQLite reads tables and columns from sqlite_master and PRAGMA table_info.
type SQLite struct {
	db Queryer
}

// NewSQLite creates a SQLite schema source.
func NewSQLite(db Queryer) *SQLite {
	return &SQLite{db: db}
}

// Tables implements schema.Source. Internal sqlite_* tables are never reported.
func (s *SQLite) Tables(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table'
		  AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}

// Columns implements schema.Source.
func (s *SQLite) Columns(ctx context.Context, tableName string) ([]schema.Column, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdentifier(tableName))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns of %s: %w", tableName, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var columns []schema.Column
	for rows.Next() {
		var (
			cid        int
			col        schema.Column
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &col.Name, &col.SQLType, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		col.Nullable = notNull == 0 && pk == 0
		col.Position = cid
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s not found", tableName)
	}
	return columns, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
