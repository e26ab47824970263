package utils

import (
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ToValidationError converts ozzo-validation output into a ValidationError.
// Internal rule failures are returned unchanged.
func ToValidationError(err error) error {
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		if _, internal := err.(validation.InternalError); internal {
			return err
		}
		return &ValidationError{Message: err.Error()}
	}

	fields := make(map[string]string, len(errs))
	keys := make([]string, 0, len(errs))
	for key, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		fields[key] = fieldErr.Error()
		keys = append(keys, key)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, key := range keys {
		messages = append(messages, key+": "+fields[key])
	}
	return &ValidationError{Message: strings.Join(messages, "; "), Fields: fields}
}
