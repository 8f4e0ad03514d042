package validation

import (
	"slices"
	"strings"
)

// Payload is a validated submission with strings normalised and unknown keys
// dropped.
type Payload map[string]any

type rule interface {
	apply(in map[string]any, out Payload, c *collector)
	key() string
}

// refinement checks a relation between fields after every rule ran.
type refinement func(out Payload, c *collector)

type schema struct {
	rules       []rule
	refinements []refinement
}

func object(rules ...rule) schema {
	return schema{rules: rules}
}

func (s schema) refine(r refinement) schema {
	s.refinements = append(append([]refinement(nil), s.refinements...), r)
	return s
}

func (s schema) validate(in map[string]any) (Payload, []FieldError) {
	out := make(Payload, len(s.rules))
	c := &collector{}
	for _, r := range s.rules {
		r.apply(in, out, c)
	}
	for _, r := range s.refinements {
		r(out, c)
	}
	return out, c.errs
}

func requiredMessage(label string) string {
	if label == "" {
		return "This field is required"
	}
	return label + " is required"
}

// stringRule covers required and optional text, trimmed or verbatim.
type stringRule struct {
	field    string
	label    string
	required bool
	trim     bool
}

func required(key, label string) rule {
	return stringRule{field: key, label: label, required: true}
}

func requiredTrimmed(key, label string) rule {
	return stringRule{field: key, label: label, required: true, trim: true}
}

func optionalTrimmed(key, label string) rule {
	return stringRule{field: key, label: label, trim: true}
}

func (r stringRule) key() string { return r.field }

func (r stringRule) apply(in map[string]any, out Payload, c *collector) {
	raw, present := in[r.field]
	if !present || raw == nil {
		if r.required {
			c.field(r.field, requiredMessage(r.label))
		}
		return
	}
	s, ok := raw.(string)
	if !ok {
		if r.required {
			c.field(r.field, requiredMessage(r.label))
		} else {
			c.field(r.field, r.label+" must be text")
		}
		return
	}
	if r.trim {
		s = strings.TrimSpace(s)
	}
	if r.required && s == "" {
		c.field(r.field, requiredMessage(r.label))
		return
	}
	out[r.field] = s
}

type enumRule struct {
	field   string
	values  []string
	message string
}

func enum(key string, values []string, message string) rule {
	return enumRule{field: key, values: values, message: message}
}

func (r enumRule) key() string { return r.field }

func (r enumRule) apply(in map[string]any, out Payload, c *collector) {
	s, ok := in[r.field].(string)
	if !ok || !slices.Contains(r.values, s) {
		c.field(r.field, r.message)
		return
	}
	out[r.field] = s
}

// fileRule accepts an uploaded file reference:
// {"fileName": ..., "fileKey": ..., "fileType": ..., "fileSize": ...}.
type fileRule struct {
	field    string
	label    string
	required bool
}

func requiredFile(key, label string) rule {
	return fileRule{field: key, label: label, required: true}
}

func optionalFile(key, label string) rule {
	return fileRule{field: key, label: label}
}

func (r fileRule) key() string { return r.field }

func (r fileRule) apply(in map[string]any, out Payload, c *collector) {
	raw, present := in[r.field]
	if !present || raw == nil {
		if r.required {
			c.field(r.field, requiredMessage(r.label))
		}
		return
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		c.field(r.field, r.label+" must be an uploaded file")
		return
	}
	name, _ := obj["fileName"].(string)
	fileKey, _ := obj["fileKey"].(string)
	if strings.TrimSpace(name) == "" || strings.TrimSpace(fileKey) == "" {
		c.field(r.field, r.label+" must be an uploaded file")
		return
	}
	file := map[string]any{"fileName": name, "fileKey": fileKey}
	if ft, ok := obj["fileType"].(string); ok && ft != "" {
		file["fileType"] = ft
	}
	if size, ok := obj["fileSize"].(float64); ok {
		if size < 0 {
			c.field(r.field, r.label+" has an invalid size")
			return
		}
		file["fileSize"] = size
	}
	out[r.field] = file
}

type columnRule struct {
	key      string
	label    string
	required bool
}

func column(key, label string) columnRule {
	return columnRule{key: key, label: label, required: true}
}

func optionalColumn(key, label string) columnRule {
	return columnRule{key: key, label: label}
}

// matrixRule validates a repeating row group. Every row is checked, every
// required cell must be non-empty after trimming.
type matrixRule struct {
	field      string
	label      string
	minMessage string
	columns    []columnRule
}

func matrix(key, label, minMessage string, columns ...columnRule) rule {
	return matrixRule{field: key, label: label, minMessage: minMessage, columns: columns}
}

func (r matrixRule) key() string { return r.field }

func (r matrixRule) apply(in map[string]any, out Payload, c *collector) {
	raw, present := in[r.field]
	if !present || raw == nil {
		c.field(r.field, r.minMessage)
		return
	}
	rows, ok := raw.([]any)
	if !ok {
		c.field(r.field, r.label+" must be a list")
		return
	}
	if len(rows) == 0 {
		c.field(r.field, r.minMessage)
		return
	}

	normalized := make([]any, 0, len(rows))
	valid := true
	for i, rawRow := range rows {
		row, ok := rawRow.(map[string]any)
		if !ok {
			c.cell(r.field, i, "", "Row is invalid")
			valid = false
			continue
		}
		cleaned := make(map[string]any, len(r.columns))
		for _, col := range r.columns {
			v, present := row[col.key]
			s, isString := v.(string)
			s = strings.TrimSpace(s)
			switch {
			case col.required && (!isString || s == ""):
				c.cell(r.field, i, col.key, requiredMessage(col.label))
				valid = false
			case !col.required && present && v != nil && !isString:
				c.cell(r.field, i, col.key, col.label+" must be text")
				valid = false
			case isString:
				cleaned[col.key] = s
			}
		}
		normalized = append(normalized, cleaned)
	}
	if valid {
		out[r.field] = normalized
	}
}
