// internal/form/validate.go
//
// Contact form: server-side validation.
//
// Context
//   The browser serialises the form with jQuery's serializeArray(), giving
//   an ordered list of {name, value} pairs.  Validate walks that list,
//   applies the rule table from rules.go, and returns a Result the AJAX
//   dispatcher encodes verbatim as the response body.
//
// Workflow
//   •  Fields are processed in the order supplied.
//   •  Unknown names are skipped.  A repeated name re-runs its rules; a new
//      failure overwrites the stored message, a pass leaves it in place.
//   •  Validation never aborts and never returns a Go error.
//
//------------------------------------------------------------------------------

package form

// Field is one submitted form control.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Result is the structured outcome.  Result is true exactly when Error is
// empty.  Error is never nil so it encodes as {} rather than null.
type Result struct {
	Result bool              `json:"result"`
	Error  map[string]string `json:"error"`
}

// Validate applies Rules to fields.
func Validate(fields []Field) Result {
	errs := make(map[string]string)
	for _, f := range fields {
		for _, rule := range Rules[f.Name] {
			if rule.Fails(f.Value) {
				errs[f.Name] = rule.Message
			}
		}
	}
	return Result{Result: len(errs) == 0, Error: errs}
}
