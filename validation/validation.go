// Package validation evaluates declarative per-field rule sets against a
// request payload. Each resource defines two rule sets: a strict one for
// create (every field required) and a permissive one for update, where a
// field is only checked when it is present in the payload.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

type Kind int

const (
	String Kind = iota
	Integer
	Date
	Email
)

// Ref points a cross-entity rule at a table. For Exists the referenced
// column is always the primary key; for Unique it is Column.
type Ref struct {
	Table  string
	Column string
}

// Field is one declarative rule: type, bounds and optional cross-entity
// checks for a single payload field.
type Field struct {
	Name     string
	Required bool
	Kind     Kind
	MinLen   int
	MaxLen   int
	Min      *int
	Enum     []string
	Exists   *Ref
	Unique   *Ref
}

// Errors maps a field name to its ordered violation messages.
type Errors map[string][]string

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}

// Int is a convenience for Field.Min literals.
func Int(n int) *int { return &n }

// Sometimes returns a copy of fields with every Required flag cleared,
// turning a create rule set into its update variant.
func Sometimes(fields []Field) []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	for i := range out {
		out[i].Required = false
	}
	return out
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const dateLayout = "2006-01-02"

// Run checks input against fields and returns the normalized values for
// every field that passed. Cross-entity rules (Exists, Unique) query db;
// exceptID excludes the row being updated from uniqueness checks and is
// empty on create. The non-nil error return is reserved for storage
// failures during those queries, not for rule violations.
//
// A field absent from input (or present as null / empty string) is skipped
// unless required. Either every supplied field validates or Errors is
// non-empty and the normalized map must not be applied.
func Run(db *gorm.DB, fields []Field, input map[string]any, exceptID string) (map[string]any, Errors, error) {
	out := make(map[string]any, len(fields))
	errs := make(Errors)

	for _, f := range fields {
		raw, present := input[f.Name]
		if !present || raw == nil || raw == "" {
			if f.Required {
				errs.add(f.Name, fmt.Sprintf("The %s field is required.", attribute(f.Name)))
			}
			continue
		}

		switch f.Kind {
		case String, Email:
			s, ok := raw.(string)
			if !ok {
				errs.add(f.Name, fmt.Sprintf("The %s field must be a string.", attribute(f.Name)))
				continue
			}
			valid := true
			if f.Kind == Email && !emailPattern.MatchString(s) {
				errs.add(f.Name, fmt.Sprintf("The %s field must be a valid email address.", attribute(f.Name)))
				valid = false
			}
			if n := utf8.RuneCountInString(s); f.MinLen > 0 && n < f.MinLen {
				errs.add(f.Name, fmt.Sprintf("The %s field must be at least %d characters.", attribute(f.Name), f.MinLen))
				valid = false
			} else if f.MaxLen > 0 && n > f.MaxLen {
				errs.add(f.Name, fmt.Sprintf("The %s field must not be greater than %d characters.", attribute(f.Name), f.MaxLen))
				valid = false
			}
			if len(f.Enum) > 0 && !contains(f.Enum, s) {
				errs.add(f.Name, fmt.Sprintf("The selected %s is invalid.", attribute(f.Name)))
				valid = false
			}
			if valid && f.Exists != nil {
				found, err := rowExists(db, f.Exists.Table, "id", s, "")
				if err != nil {
					return nil, nil, err
				}
				if !found {
					errs.add(f.Name, fmt.Sprintf("The selected %s is invalid.", attribute(f.Name)))
					valid = false
				}
			}
			if valid && f.Unique != nil {
				taken, err := rowExists(db, f.Unique.Table, f.Unique.Column, s, exceptID)
				if err != nil {
					return nil, nil, err
				}
				if taken {
					errs.add(f.Name, fmt.Sprintf("The %s has already been taken.", attribute(f.Name)))
					valid = false
				}
			}
			if valid {
				out[f.Name] = s
			}

		case Integer:
			n, ok := asInt(raw)
			if !ok {
				errs.add(f.Name, fmt.Sprintf("The %s field must be an integer.", attribute(f.Name)))
				continue
			}
			if f.Min != nil && n < *f.Min {
				errs.add(f.Name, fmt.Sprintf("The %s field must be at least %d.", attribute(f.Name), *f.Min))
				continue
			}
			out[f.Name] = n

		case Date:
			s, ok := raw.(string)
			if !ok {
				errs.add(f.Name, fmt.Sprintf("The %s field must be a valid date.", attribute(f.Name)))
				continue
			}
			t, err := time.Parse(dateLayout, s)
			if err != nil {
				if t, err = time.Parse(time.RFC3339, s); err != nil {
					errs.add(f.Name, fmt.Sprintf("The %s field must be a valid date.", attribute(f.Name)))
					continue
				}
			}
			out[f.Name] = t
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return out, nil, nil
}

// rowExists counts rows in table where column = value, optionally skipping
// the row with primary key exceptID.
func rowExists(db *gorm.DB, table, column, value, exceptID string) (bool, error) {
	var count int64
	q := db.Table(table).Where(column+" = ?", value)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// asInt accepts the numeric types a decoded JSON body can carry and
// rejects fractional values.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// attribute renders a field name the way it reads in a message:
// "category_id" becomes "category id".
func attribute(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
