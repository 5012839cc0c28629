// Package sqlschema renders CREATE TABLE statements from statically
// declared entity fields.
package sqlschema

import (
	"errors"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/mathdrill/ent/schema"
)

// ErrUnsupportedFieldType is returned for a field whose type has no storage
// mapping.
var ErrUnsupportedFieldType = errors.New("unsupported field type")

// Storage types.
const (
	Integer = "INTEGER"
	Text    = "TEXT"
	Real    = "REAL"
)

// storageTypes maps field kinds to SQLite storage classes. Anything absent
// is rejected.
var storageTypes = map[field.Type]string{
	field.TypeInt:     Integer,
	field.TypeInt8:    Integer,
	field.TypeInt16:   Integer,
	field.TypeInt32:   Integer,
	field.TypeInt64:   Integer,
	field.TypeUint:    Integer,
	field.TypeUint8:   Integer,
	field.TypeUint16:  Integer,
	field.TypeUint32:  Integer,
	field.TypeUint64:  Integer,
	field.TypeString:  Text,
	field.TypeFloat32: Real,
	field.TypeFloat64: Real,
}

// Column is a field name with its storage type.
type Column struct {
	Name string
	Type string
}

// Columns maps each field to a Column, in declaration order.
func Columns(fields []ent.Field) ([]Column, error) {
	cols := make([]Column, 0, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("field %q: %w", d.Name, d.Err)
		}
		if d.Info == nil {
			return nil, fmt.Errorf("%w: field %q has no type", ErrUnsupportedFieldType, d.Name)
		}
		typ, ok := storageTypes[d.Info.Type]
		if !ok {
			return nil, fmt.Errorf("%w: field %q is %s", ErrUnsupportedFieldType, d.Name, d.Info.Type)
		}
		cols = append(cols, Column{Name: d.Name, Type: typ})
	}
	return cols, nil
}

// CreateTable renders a CREATE TABLE IF NOT EXISTS statement. The primary
// key column is always first and typed INTEGER PRIMARY KEY.
func CreateTable(primaryKey, table string, fields []ent.Field) (string, error) {
	if primaryKey == "" {
		return "", errors.New("primary key name is empty")
	}
	cols, err := Columns(fields)
	if err != nil {
		return "", fmt.Errorf("table %s: %w", table, err)
	}

	defs := make([]string, 0, len(cols)+1)
	defs = append(defs, primaryKey+" "+Integer+" PRIMARY KEY")
	for _, c := range cols {
		defs = append(defs, c.Name+" "+c.Type)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", ")), nil
}

// TableName returns the table configured through an entsql.Annotation.
func TableName(s ent.Interface) (string, error) {
	for _, a := range s.Annotations() {
		switch ann := a.(type) {
		case entsql.Annotation:
			if ann.Table != "" {
				return ann.Table, nil
			}
		case *entsql.Annotation:
			if ann != nil && ann.Table != "" {
				return ann.Table, nil
			}
		}
	}
	return "", fmt.Errorf("schema %T has no table annotation", s)
}

// CreateTableFor renders the statement for an ent schema.
func CreateTableFor(primaryKey string, s ent.Interface) (string, error) {
	table, err := TableName(s)
	if err != nil {
		return "", err
	}
	return CreateTable(primaryKey, table, s.Fields())
}

// Entities returns the persisted entities keyed by table name.
func Entities() map[string]ent.Interface {
	return map[string]ent.Interface{
		"question": schema.Question{},
		"answer":   schema.Answer{},
		"attempt":  schema.Attempt{},
	}
}

// QuestionTable renders the question table statement.
func QuestionTable(primaryKey string) (string, error) {
	return CreateTableFor(primaryKey, schema.Question{})
}

// AnswerTable renders the answer table statement.
func AnswerTable(primaryKey string) (string, error) {
	return CreateTableFor(primaryKey, schema.Answer{})
}

// AttemptTable renders the attempt table statement.
func AttemptTable(primaryKey string) (string, error) {
	return CreateTableFor(primaryKey, schema.Attempt{})
}
