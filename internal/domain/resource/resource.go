// Package resource describes the business entities exposed over HTTP.
//
// A Resource names the table written by mutations, the view read by
// listings, and the ordered fields that make up positional accessor
// arguments. Every CRUD route, accessor and controller is derived from
// these descriptors instead of being written per entity.
package resource

import (
	"fmt"
	"strings"

	"github.com/bizdesk/backend/internal/domain/shared"
)

// Field is one column of a resource
type Field struct {
	// Name is the JSON body key.
	Name string
	// Column is the store column; empty means Name.
	Column string
	// Default is bound when the body omits the field. nil binds SQL NULL.
	Default any
	// Transform rewrites a supplied value before it is bound.
	Transform func(any) (any, error)
	// KeepOnUpdate leaves the stored value untouched when an update
	// omits the field or sends null.
	KeepOnUpdate bool
}

// ColumnName returns the store column of the field
func (f Field) ColumnName() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Name
}

// Resource describes one routed entity or read-only view
type Resource struct {
	Group  string // route group, e.g. "personnel"
	Path   string // path segment under the group, e.g. "role"
	Label  string // human name used in response messages
	Table  string // empty for read-only views
	View   string
	Keys   []Field
	Fields []Field
}

// ReadOnly reports whether the resource only supports listing
func (r *Resource) ReadOnly() bool {
	return r.Table == ""
}

// Route returns the group-relative base path, e.g. "/role"
func (r *Resource) Route() string {
	return "/" + r.Path
}

// KeyParams returns the path parameter names used by delete routes.
// Single-key resources use ":id".
func (r *Resource) KeyParams() []string {
	if len(r.Keys) == 1 {
		return []string{"id"}
	}
	params := make([]string, len(r.Keys))
	for i, k := range r.Keys {
		params[i] = k.Name
	}
	return params
}

// DeleteRoute returns the delete path, e.g. "/role/delete/:id"
func (r *Resource) DeleteRoute() string {
	var b strings.Builder
	b.WriteString(r.Route())
	b.WriteString("/delete")
	for _, p := range r.KeyParams() {
		b.WriteString("/:")
		b.WriteString(p)
	}
	return b.String()
}

// SelectSQL reads every row of the view
func (r *Resource) SelectSQL() string {
	return "SELECT * FROM " + r.View
}

// InsertSQL inserts one row, one named parameter per field
func (r *Resource) InsertSQL() string {
	cols := columns(r.Fields)
	params := make([]string, len(cols))
	for i, c := range cols {
		params[i] = "@" + c
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.Table, strings.Join(cols, ", "), strings.Join(params, ", "))
}

// UpdateSQL overwrites the fields of the row matching the keys. Fields
// marked KeepOnUpdate only change when a value is bound.
func (r *Resource) UpdateSQL() string {
	sets := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		c := f.ColumnName()
		if f.KeepOnUpdate {
			sets[i] = fmt.Sprintf("%s = COALESCE(@%s, %s)", c, c, c)
			continue
		}
		sets[i] = c + " = @" + c
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		r.Table, strings.Join(sets, ", "), assignments(r.Keys, " AND "))
}

// DeleteSQL removes the row matching the keys
func (r *Resource) DeleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s", r.Table, assignments(r.Keys, " AND "))
}

// InsertColumns lists the bound columns of Add, in argument order
func (r *Resource) InsertColumns() []string {
	return columns(r.Fields)
}

// UpdateColumns lists the bound columns of Update: keys first, then fields
func (r *Resource) UpdateColumns() []string {
	return append(columns(r.Keys), columns(r.Fields)...)
}

// KeyColumns lists the bound columns of Delete
func (r *Resource) KeyColumns() []string {
	return columns(r.Keys)
}

// InsertArgs extracts positional Add arguments from a decoded body,
// substituting defaults for omitted fields.
func (r *Resource) InsertArgs(body map[string]any) ([]any, error) {
	return extract(r.Fields, body)
}

// UpdateArgs extracts positional Update arguments: key values, which must
// be present, followed by the fields with defaults applied.
func (r *Resource) UpdateArgs(body map[string]any) ([]any, error) {
	keys := make([]any, 0, len(r.Keys))
	for _, k := range r.Keys {
		v, ok := body[k.Name]
		if !ok || v == nil {
			return nil, shared.ErrInvalidInput.Wrap(fmt.Errorf("%s is required", k.Name))
		}
		keys = append(keys, v)
	}
	fields, err := extract(r.Fields, body)
	if err != nil {
		return nil, err
	}
	return append(keys, fields...), nil
}

// Bind pairs positional arguments with their columns as named parameters
func Bind(cols []string, args []any) (map[string]any, error) {
	if len(cols) != len(args) {
		return nil, fmt.Errorf("expected %d arguments, got %d", len(cols), len(args))
	}
	named := make(map[string]any, len(cols))
	for i, c := range cols {
		named[c] = args[i]
	}
	return named, nil
}

func extract(fields []Field, body map[string]any) ([]any, error) {
	args := make([]any, len(fields))
	for i, f := range fields {
		v, ok := body[f.Name]
		if !ok {
			args[i] = f.Default
			continue
		}
		if f.Transform != nil && v != nil {
			tv, err := f.Transform(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			v = tv
		}
		args[i] = v
	}
	return args, nil
}

func columns(fields []Field) []string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.ColumnName()
	}
	return cols
}

func assignments(fields []Field, sep string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		c := f.ColumnName()
		parts[i] = c + " = @" + c
	}
	return strings.Join(parts, sep)
}
