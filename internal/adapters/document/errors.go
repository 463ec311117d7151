package document

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for document errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("expression failed validation")
	ErrDocumentParse = errors.New("document parse failed")
	ErrNoPath        = errors.New("no output path")
	ErrInvalidTarget = errors.New("invalid expression target")
)

// Level names a step of the composition > layers > layer > property >
// expression path.
type Level string

// Lookup levels.
const (
	LevelComposition Level = "composition"
	LevelLayers      Level = "layers"
	LevelLayer       Level = "layer"
	LevelProperty    Level = "property"
	LevelExpression  Level = "expression"
)

// NotFoundError reports the first missing level of a lookup.
type NotFoundError struct {
	Level Level
	Name  string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s not found", e.Level)
	}
	return fmt.Sprintf("%s not found: %q", e.Level, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError carries the syntax violations of a rejected expression.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
