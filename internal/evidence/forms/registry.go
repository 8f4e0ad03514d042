package forms

import "fmt"

var definitionsByType = func() map[FormType]Definition {
	m := make(map[FormType]Definition, len(definitions))
	for _, d := range definitions {
		m[d.Type] = d
	}
	return m
}()

func init() {
	if err := checkMappings(); err != nil {
		panic("forms: " + err.Error())
	}
	if err := checkDefinitions(); err != nil {
		panic("forms: " + err.Error())
	}
}

// Lookup returns the definition of t.
func Lookup(t FormType) (Definition, bool) {
	d, ok := definitionsByType[t]
	return d, ok
}

// Definitions returns every definition in catalog order.
func Definitions() []Definition {
	return append([]Definition(nil), definitions...)
}

// Visible returns the definitions that are listed to users.
func Visible() []Definition {
	out := make([]Definition, 0, len(definitions))
	for _, d := range definitions {
		if !d.Hidden {
			out = append(out, d)
		}
	}
	return out
}

func checkDefinitions() error {
	if len(definitionsByType) != len(definitions) {
		return fmt.Errorf("duplicate form definitions")
	}
	for _, t := range allFormTypes {
		d, ok := definitionsByType[t]
		if !ok {
			return fmt.Errorf("form type %q has no definition", t)
		}
		if d.SubmissionDateMode != SubmissionDateAuto && d.SubmissionDateMode != SubmissionDateCustom {
			return fmt.Errorf("form type %q has invalid submission date mode %q", t, d.SubmissionDateMode)
		}
		for _, f := range d.Fields {
			if f.Kind == FieldMatrix && len(f.Columns) == 0 {
				return fmt.Errorf("matrix field %s.%s has no columns", t, f.Key)
			}
			if f.Kind == FieldSelect && len(f.Options) == 0 {
				return fmt.Errorf("select field %s.%s has no options", t, f.Key)
			}
		}
	}
	for _, d := range definitions {
		if !d.Type.IsValid() {
			return fmt.Errorf("definition for unknown form type %q", d.Type)
		}
	}
	return nil
}
