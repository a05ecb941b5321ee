// Package scaffold generates layered CRUD artifacts for database tables.
package scaffold

import (
	"fmt"
	"strings"

	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/render"
	"github.com/marshallshelly/domino/pkg/schema"
)

// Entity contains all naming forms and fields needed to generate one model's artifacts.
type Entity struct {
	ModelName       string          // PascalCase: "UserProfile"
	PluralModelName string          // PascalCase plural: "UserProfiles"
	FileName        string          // snake_case: "user_profile"
	PluralFileName  string          // snake_case plural: "user_profiles"
	TableName       string          // Source table name
	Fields          []string        // Column names, primary key excluded
	Columns         []schema.Column // Columns, primary key excluded
	Namespace       string          // Reserved

	// attributes holds raw name:type arguments when built from the command line.
	attributes []string
}

// NewEntity derives an Entity for modelName from introspected columns.
func NewEntity(n *naming.Namer, modelName, tableName string, columns []schema.Column, namespace string) Entity {
	fileName := n.FileName(modelName)
	pluralFileName := n.Pluralize(fileName)
	if tableName == "" {
		tableName = pluralFileName
	}

	cols := schema.WithoutPrimaryKey(columns)
	return Entity{
		ModelName:       modelName,
		PluralModelName: naming.Camelize(pluralFileName),
		FileName:        fileName,
		PluralFileName:  pluralFileName,
		TableName:       tableName,
		Fields:          schema.ColumnNames(cols),
		Columns:         cols,
		Namespace:       namespace,
	}
}

// EntityFromAttributes builds an Entity from a generator name and name[:type]
// attributes. Attributes without a type default to string. The raw attributes
// are passed to the model generator unchanged.
func EntityFromAttributes(n *naming.Namer, name string, attributes []string, namespace string) (Entity, error) {
	modelName := naming.Camelize(name)
	if modelName == "" {
		return Entity{}, fmt.Errorf("%w: empty model name", ErrInvalidAttribute)
	}

	columns := make([]schema.Column, 0, len(attributes))
	for i, attr := range attributes {
		colName, colType, _ := strings.Cut(attr, ":")
		if colName == "" {
			return Entity{}, fmt.Errorf("%w: %q", ErrInvalidAttribute, attr)
		}
		if colType == "" {
			colType = "string"
		}
		columns = append(columns, schema.Column{Name: colName, SQLType: colType, Position: i})
	}

	e := NewEntity(n, modelName, "", columns, namespace)
	e.attributes = append([]string(nil), attributes...)
	return e, nil
}

// Context returns the template context for the entity.
func (e Entity) Context() render.Context {
	return render.Context{
		ModelName:       e.ModelName,
		PluralModelName: e.PluralModelName,
		FileName:        e.FileName,
		PluralFileName:  e.PluralFileName,
		TableName:       e.TableName,
		Fields:          e.Fields,
		Columns:         e.Columns,
		Namespace:       e.Namespace,
	}
}
