package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariable marks a lookup or synthesis request for a name that is
// not in the catalog. It signals a caller/catalog mismatch, not bad data.
var ErrUnknownVariable = errors.New("unknown variable")

// UnknownVariableError names the missing variable and the closest catalog entries.
type UnknownVariableError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownVariableError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %q", ErrUnknownVariable, e.Name)
	}
	return fmt.Sprintf("%s: %q (did you mean %s?)", ErrUnknownVariable, e.Name, strings.Join(e.Suggestions, ", "))
}

// Unwrap exposes ErrUnknownVariable to errors.Is.
func (e *UnknownVariableError) Unwrap() error { return ErrUnknownVariable }
