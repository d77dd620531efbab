package validation

import (
	"errors"
	"sort"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

// FieldErrors flattens a validation error into field -> message. Errors that
// are not per-field end up under the empty key.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var errs ozzo.Errors
	if !errors.As(err, &errs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for field, e := range errs {
		if e != nil {
			out[field] = e.Error()
		}
	}
	return out
}

// FirstMessage returns a single human message for err: the message of the
// alphabetically first failing field, prefixed with its name.
func FirstMessage(err error) string {
	fields := FieldErrors(err)
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if keys[0] == "" {
		return fields[""]
	}
	return keys[0] + ": " + fields[keys[0]]
}
