package errs

import "fmt"

// NotFoundError reports that a resource lookup found nothing. Handlers
// translate it into a 404 response.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: '%v'", e.Resource, e.Field, e.Value)
}

// NotFound builds a NotFoundError for the given resource/field/value triple.
func NotFound(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// DuplicateError reports a uniqueness violation, e.g. registering a username
// that already exists. Handlers translate it into a 400 response.
type DuplicateError struct {
	Resource string
	Field    string
	Value    any
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists with %s: '%v'", e.Resource, e.Field, e.Value)
}

// Duplicate builds a DuplicateError for the given resource/field/value triple.
func Duplicate(resource, field string, value any) *DuplicateError {
	return &DuplicateError{Resource: resource, Field: field, Value: value}
}
