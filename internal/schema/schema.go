// Package schema validates loosely typed records, such as decoded YAML
// frontmatter, against declared field rules.
//
// A Rule checks one field and returns its normalized value. Rules compose:
// Optional and Default wrap a rule to change how absence is treated, and Chain
// runs further checks on the normalized value.
package schema

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Rule validates a single field. present reports whether the key exists in
// the record; value is nil when it does not. The returned value is what the
// validated record holds for the field. Returning (nil, nil) for an absent
// field leaves the field out of the result.
type Rule func(value any, present bool) (any, error)

// ErrRequired is reported for a missing required field.
var ErrRequired = errors.New("required")

// String accepts a string value. Absence fails.
func String() Rule {
	return func(v any, present bool) (any, error) {
		if !present {
			return nil, ErrRequired
		}
		s, ok := v.(string)
		if !ok {
			if _, isDate := v.(time.Time); isDate {
				return nil, errors.New("expected string, got date (quote the value)")
			}
			return nil, fmt.Errorf("expected string, got %s", typeName(v))
		}
		return s, nil
	}
}

// Number accepts any integer or floating point value and normalizes it to
// float64. NaN and absence fail.
func Number() Rule {
	return func(v any, present bool) (any, error) {
		if !present {
			return nil, ErrRequired
		}
		switch n := v.(type) {
		case int:
			return float64(n), nil
		case int8:
			return float64(n), nil
		case int16:
			return float64(n), nil
		case int32:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint:
			return float64(n), nil
		case uint8:
			return float64(n), nil
		case uint16:
			return float64(n), nil
		case uint32:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		case float32:
			if math.IsNaN(float64(n)) {
				return nil, errors.New("expected number, got NaN")
			}
			return float64(n), nil
		case float64:
			if math.IsNaN(n) {
				return nil, errors.New("expected number, got NaN")
			}
			return n, nil
		default:
			return nil, fmt.Errorf("expected number, got %s", typeName(v))
		}
	}
}

// Min requires a normalized float64 of at least min (inclusive).
func Min(min float64) Rule {
	return func(v any, present bool) (any, error) {
		n, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("expected number, got %s", typeName(v))
		}
		if n < min {
			return nil, fmt.Errorf("must be greater than or equal to %g", min)
		}
		return n, nil
	}
}

// Max requires a normalized float64 of at most max (inclusive).
func Max(max float64) Rule {
	return func(v any, present bool) (any, error) {
		n, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("expected number, got %s", typeName(v))
		}
		if n > max {
			return nil, fmt.Errorf("must be less than or equal to %g", max)
		}
		return n, nil
	}
}

// StringList accepts a list whose elements are all strings and normalizes it
// to []string. Absence fails.
func StringList() Rule {
	return func(v any, present bool) (any, error) {
		if !present {
			return nil, ErrRequired
		}
		switch l := v.(type) {
		case []string:
			out := make([]string, len(l))
			copy(out, l)
			return out, nil
		case []any:
			out := make([]string, 0, len(l))
			for i, e := range l {
				s, ok := e.(string)
				if !ok {
					return nil, fmt.Errorf("[%d]: expected string, got %s", i, typeName(e))
				}
				out = append(out, s)
			}
			return out, nil
		default:
			return nil, fmt.Errorf("expected list, got %s", typeName(v))
		}
	}
}

// Optional lets the field be absent. A present value must satisfy r.
func Optional(r Rule) Rule {
	return func(v any, present bool) (any, error) {
		if !present {
			return nil, nil
		}
		return r(v, true)
	}
}

// Default substitutes def when the field is absent, then validates with r.
func Default(r Rule, def any) Rule {
	return func(v any, present bool) (any, error) {
		if !present {
			return r(def, true)
		}
		return r(v, true)
	}
}

// Chain runs rules in order, feeding each the previous normalized value.
// An absent field stays absent once a rule has accepted it as such.
func Chain(rules ...Rule) Rule {
	return func(v any, present bool) (any, error) {
		for _, r := range rules {
			out, err := r(v, present)
			if err != nil {
				return nil, err
			}
			if !present && out == nil {
				return nil, nil
			}
			v, present = out, true
		}
		return v, nil
	}
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any, []string:
		return "list"
	case map[string]any:
		return "object"
	case time.Time:
		return "date"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}
