// Package uid provides generators for unique string identifiers.
package uid

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
