package introspect

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/marshallshelly/domino/pkg/schema"
)

// Queryer provides query access for schema introspection.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// MySQL reads tables and columns from a MySQL or TiDB INFORMATION_SCHEMA.
type MySQL struct {
	db       Queryer
	database string
}

// NewMySQL creates a MySQL schema source for databaseName.
func NewMySQL(db Queryer, databaseName string) *MySQL {
	return &MySQL{db: db, database: databaseName}
}

// Tables implements schema.Source.
func (m *MySQL) Tables(ctx context.Context) ([]string, error) {
	query, args, err := sq.Select("TABLE_NAME").
		From("INFORMATION_SCHEMA.TABLES").
		Where(sq.Eq{"TABLE_SCHEMA": m.database}).
		Where(sq.Eq{"TABLE_TYPE": "BASE TABLE"}).
		OrderBy("TABLE_NAME").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}

// Columns implements schema.Source. SQLType is COLUMN_TYPE, e.g. "varchar(255)".
func (m *MySQL) Columns(ctx context.Context, tableName string) ([]schema.Column, error) {
	query, args, err := sq.Select("COLUMN_NAME", "COLUMN_TYPE", "IS_NULLABLE", "ORDINAL_POSITION").
		From("INFORMATION_SCHEMA.COLUMNS").
		Where(sq.Eq{"TABLE_SCHEMA": m.database}).
		Where(sq.Eq{"TABLE_NAME": tableName}).
		OrderBy("ORDINAL_POSITION").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns of %s: %w", tableName, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var columns []schema.Column
	for rows.Next() {
		var col schema.Column
		var isNullable string
		var position int
		if err := rows.Scan(&col.Name, &col.SQLType, &isNullable, &position); err != nil {
			return nil, err
		}
		col.Nullable = isNullable == "YES"
		col.Position = position - 1
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}
