package validation

import (
	"fmt"
	"strings"

	"comply/internal/evidence/forms"
)

// FieldError is one violation, addressed by a dotted path such as
// "matrixRows.2.approvedBy".
type FieldError struct {
	Path    string `json:"path"`
	Field   string `json:"field"`
	Row     *int   `json:"row,omitempty"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

// Errors carries every violation found in one payload.
type Errors struct {
	FormType forms.FormType
	Fields   []FieldError
}

func (e *Errors) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("invalid %s submission: %s: %s", e.FormType, e.Fields[0].Path, e.Fields[0].Message)
	}
	paths := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		paths = append(paths, f.Path)
	}
	return fmt.Sprintf("invalid %s submission: %d errors (%s)", e.FormType, len(e.Fields), strings.Join(paths, ", "))
}

// ForPath returns the errors reported at path.
func (e *Errors) ForPath(path string) []FieldError {
	var out []FieldError
	for _, f := range e.Fields {
		if f.Path == path {
			out = append(out, f)
		}
	}
	return out
}

type collector struct {
	errs []FieldError
}

func (c *collector) field(key, msg string) {
	c.errs = append(c.errs, FieldError{Path: key, Field: key, Message: msg})
}

func (c *collector) cell(key string, row int, column, msg string) {
	r := row
	path := fmt.Sprintf("%s.%d", key, row)
	if column != "" {
		path += "." + column
	}
	c.errs = append(c.errs, FieldError{Path: path, Field: key, Row: &r, Column: column, Message: msg})
}

func (c *collector) has(path string) bool {
	for _, e := range c.errs {
		if e.Path == path {
			return true
		}
	}
	return false
}
