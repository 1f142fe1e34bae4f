// Package query builds parameterized SQL from projection maps that tie
// entity field names to qualified column references.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap ties entity field names to alias-qualified columns of
// one table, so builders and filters speak in field names while the
// generated SQL uses columns.
type ProjectionMap struct {
	schema     string
	table      string
	alias      string
	columns    map[string]string
	columnList []string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table,
// and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:     schema,
		table:      table,
		alias:      alias,
		columns:    make(map[string]string),
		columnList: make([]string, 0),
	}
}

// Project maps a database column to an entity field name. Call order
// fixes the column order in generated SELECT lists, which scan
// functions depend on.
func (p *ProjectionMap) Project(column, fieldName string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns[fieldName] = qualified
	p.columnList = append(p.columnList, qualified)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the qualified table reference with alias.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for a field name, or the input
// unchanged when no mapping exists.
func (p *ProjectionMap) Column(fieldName string) string {
	if col, ok := p.columns[fieldName]; ok {
		return col
	}
	return fieldName
}

// Columns returns the mapped columns as a comma-separated SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columnList, ", ")
}

// ColumnList returns the mapped columns in projection order.
func (p *ProjectionMap) ColumnList() []string {
	return p.columnList
}
