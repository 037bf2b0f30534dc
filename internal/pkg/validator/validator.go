package validator

// Validator checks a struct against its validate tags.
type Validator interface {
	// Validate returns a descriptive error when data fails validation.
	Validate(data any) error
}
