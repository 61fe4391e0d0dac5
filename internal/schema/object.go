package schema

import (
	"fmt"
	"strings"
)

// Field binds a rule to a record key.
type Field struct {
	Name string
	Rule Rule
}

// Object is an ordered set of field rules. Keys not declared are dropped.
type Object struct {
	fields []Field
}

// NewObject declares a record schema.
func NewObject(fields ...Field) *Object {
	return &Object{fields: fields}
}

// Fields returns the declared field names in order.
func (o *Object) Fields() []string {
	names := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		names = append(names, f.Name)
	}
	return names
}

// Validate checks every declared field of in and returns the normalized
// record. When any field fails the result is nil and the error is an *Error
// listing every failure in declaration order.
func (o *Object) Validate(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(o.fields))
	var errs []FieldError
	for _, f := range o.fields {
		v, present := in[f.Name]
		nv, err := f.Rule(v, present)
		if err != nil {
			errs = append(errs, FieldError{Field: f.Name, Err: err})
			continue
		}
		if nv != nil {
			out[f.Name] = nv
		}
	}
	if len(errs) > 0 {
		return nil, &Error{Fields: errs}
	}
	return out, nil
}

// FieldError is a failure of a single field.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// Error collects the field failures of one record.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "invalid " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, f := range e.Fields {
		errs = append(errs, f)
	}
	return errs
}

// Has reports whether field failed validation.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
