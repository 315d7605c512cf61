package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldSelector  = "selector"
	FieldKey       = "key"
	FieldRows      = "rows"
	FieldRow       = "row"
	FieldField     = "field"
	FieldBytes     = "bytes"
	FieldTotal     = "total"
	FieldBackend   = "backend"
	FieldCommand   = "command"
	FieldFormat    = "format"
	FieldDBPath    = "db_path"
	FieldDataDir   = "data_directory"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentTracker = "tracker"
	ComponentStorage = "storage"
	ComponentView    = "view"
	ComponentCLI     = "cli"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpMount   = "mount"
	OpLoad    = "load"
	OpAdd     = "add"
	OpEdit    = "edit"
	OpDelete  = "delete"
	OpSave    = "save"
	OpSummary = "summary"
	OpRender  = "render"
	OpStartup = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithCollection adds the storage key and the number of rows involved
func (f LogFields) WithCollection(key string, rows int) LogFields {
	f[FieldKey] = key
	f[FieldRows] = rows
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
