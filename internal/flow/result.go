package flow

// ResultType is the kind of directive a step returns.
type ResultType string

const (
	// ResultForm asks the front end to display a form
	ResultForm ResultType = "form"
	// ResultCreateEntry asks the front end to persist Data
	ResultCreateEntry ResultType = "create_entry"
	// ResultAbort ends the wizard with Reason
	ResultAbort ResultType = "abort"
)

// Step identifiers.
const (
	StepUser = "user"
	StepInit = "init"
)

// ErrorBase is the error key for errors not tied to one field.
const ErrorBase = "base"

// Error tags shown on the user step.
const (
	ErrorInvalidAuth   = "invalid_auth"
	ErrorCannotConnect = "cannot_connect"
)

// AbortAlreadyConfigured is the abort reason for a duplicate account.
const AbortAlreadyConfigured = "already_configured"

// OptionsTitle is the title of the entry produced by the options wizard.
const OptionsTitle = "Options"

// Result is the directive returned by a step.
type Result struct {
	Type   ResultType
	StepID string

	// Form
	Fields    []Field
	Errors    map[string]string
	Suggested map[string]string

	// Create entry
	Title string
	Data  map[string]any

	// Abort
	Reason string
}

// HasErrors reports whether a form result carries error annotations.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Field returns the schema field with key, if the form has one.
func (r Result) Field(key string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func showForm(stepID string, fields []Field, errors map[string]string) Result {
	if errors == nil {
		errors = map[string]string{}
	}
	return Result{Type: ResultForm, StepID: stepID, Fields: fields, Errors: errors}
}

func createEntry(title string, data map[string]any) Result {
	return Result{Type: ResultCreateEntry, Title: title, Data: data}
}

func abort(reason string) Result {
	return Result{Type: ResultAbort, Reason: reason}
}
