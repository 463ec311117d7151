// Package expression synthesizes host expressions that bind template layer
// properties to the variable store composition, and statically checks
// expression text before it is written anywhere.
//
// Every synthesis call validates the variables it references against the
// catalog before producing text; an unknown name is a caller error and is
// returned immediately as registry.ErrUnknownVariable.
package expression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/hardcard/internal/domain/types"
)

// Catalog is the subset of the variable registry synthesis depends on.
type Catalog interface {
	MustExist(names ...string) error
	ByName(name string) (types.VariableDefinition, bool)
}

// Synthesizer produces expression text. It holds only configuration and is
// safe for concurrent use.
type Synthesizer struct {
	catalog          Catalog
	storeComposition string
	caseSensitive    bool
	logoMaxWidth     float64
	logoMaxHeight    float64
	imageScaleMode   ScaleMode
}

// New creates a Synthesizer over catalog.
func New(catalog Catalog, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		catalog:          catalog,
		storeComposition: DefaultStoreComposition,
		logoMaxWidth:     DefaultLogoMaxWidth,
		logoMaxHeight:    DefaultLogoMaxHeight,
		imageScaleMode:   ScaleFit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StoreComposition returns the configured store composition name.
func (s *Synthesizer) StoreComposition() string { return s.storeComposition }

// TextLink reads the text of a variable's store layer.
func (s *Synthesizer) TextLink(name string) (string, error) {
	return s.storeText(name)
}

// DynamicTextLink resolves the store layer from the consuming layer's own
// name at evaluation time.
func (s *Synthesizer) DynamicTextLink() string {
	return fmt.Sprintf("comp(%s).layer(%s + thisLayer.name).text.sourceText",
		quote(s.storeComposition), quote(types.StoreMarker))
}

// Concatenate joins several store values with literal separators. A nil
// separators slice means a single space between every pair.
func (s *Synthesizer) Concatenate(names []string, separators []string) (string, error) {
	if len(names) == 0 {
		return "", ErrNoVariables
	}
	if err := s.catalog.MustExist(names...); err != nil {
		return "", err
	}
	if separators == nil {
		separators = make([]string, len(names)-1)
		for i := range separators {
			separators[i] = " "
		}
	}
	if len(separators) != len(names)-1 {
		return "", fmt.Errorf("%w: got %d for %d variables", ErrSeparatorCount, len(separators), len(names))
	}

	var b strings.Builder
	parts := make([]string, 0, 2*len(names)-1)
	for i, n := range names {
		local := "v" + strconv.Itoa(i+1)
		ref, _ := s.storeText(n)
		fmt.Fprintf(&b, "var %s = %s;\n", local, ref)
		if i > 0 {
			parts = append(parts, quote(separators[i-1]))
		}
		parts = append(parts, local)
	}
	b.WriteString(strings.Join(parts, " + "))
	return b.String(), nil
}

// ConditionalVisibilityText yields opacity 100 when the store text equals
// value (case-insensitively unless configured otherwise), 0 otherwise.
// visibleWhenMatch=false inverts the result.
func (s *Synthesizer) ConditionalVisibilityText(name, value string, visibleWhenMatch bool) (string, error) {
	ref, err := s.storeText(name)
	if err != nil {
		return "", err
	}
	cond := "v == " + quote(value)
	if !s.caseSensitive {
		cond = "v.toLowerCase() == " + quote(strings.ToLower(value))
	}
	return fmt.Sprintf("var v = %s.toString();\n(%s) ? %s", ref, cond, opacityPair(visibleWhenMatch)), nil
}

// ConditionalVisibilityNumber parses the store text as an integer and
// compares it with value.
func (s *Synthesizer) ConditionalVisibilityNumber(name string, value int, visibleWhenMatch bool) (string, error) {
	ref, err := s.storeText(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("var v = parseInt(%s, 10);\n(v == %d) ? %s", ref, value, opacityPair(visibleWhenMatch)), nil
}

// LogoScaleToFit scales the consuming layer uniformly so its measured size
// fits inside maxWidth x maxHeight.
func (s *Synthesizer) LogoScaleToFit(maxWidth, maxHeight float64) (string, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return "", fmt.Errorf("%w: %vx%v", ErrInvalidBounds, maxWidth, maxHeight)
	}
	w, h := number(maxWidth), number(maxHeight)
	return "var r = thisLayer.sourceRectAtTime(time, false);\n" +
		"var sx = r.width > 0 ? (" + w + " / r.width) * 100 : 100;\n" +
		"var sy = r.height > 0 ? (" + h + " / r.height) * 100 : 100;\n" +
		"var s = Math.min(sx, sy);\n" +
		"[s, s]", nil
}

// ImageScaleToComp scales the consuming layer against its composition,
// fitting inside it or covering it.
func (s *Synthesizer) ImageScaleToComp(mode ScaleMode) (string, error) {
	pick := "Math.min"
	switch mode {
	case ScaleFit:
	case ScaleCover:
		pick = "Math.max"
	default:
		return "", fmt.Errorf("%w: scale mode %q", ErrInvalidMode, mode)
	}
	return "var sx = (thisComp.width / thisLayer.width) * 100;\n" +
		"var sy = (thisComp.height / thisLayer.height) * 100;\n" +
		"var s = " + pick + "(sx, sy);\n" +
		"[s, s]", nil
}

// HexColorToRgb converts a store layer's hex string with the host helper.
func (s *Synthesizer) HexColorToRgb(name string) (string, error) {
	ref, err := s.storeText(name)
	if err != nil {
		return "", err
	}
	return "hexToRgb(" + ref + ")", nil
}

// RankingDisplay renders a numeric store value as "#n" or "(#n)", or as an
// empty string when the value is empty or not numeric.
func (s *Synthesizer) RankingDisplay(name string, parenthesized bool) (string, error) {
	ref, err := s.storeText(name)
	if err != nil {
		return "", err
	}
	shown := `"#" + v`
	if parenthesized {
		shown = `"(#" + v + ")"`
	}
	return fmt.Sprintf("var v = %s.toString();\n(v != \"\" && !isNaN(v)) ? %s : \"\"", ref, shown), nil
}

// CompareNumbers parses two store values as integers and yields opacity 100
// when the comparison holds.
func (s *Synthesizer) CompareNumbers(a, b string, op Comparison) (string, error) {
	if err := s.catalog.MustExist(a, b); err != nil {
		return "", err
	}
	if _, err := ParseComparison(string(op)); err != nil {
		return "", err
	}
	refA, _ := s.storeText(a)
	refB, _ := s.storeText(b)
	return fmt.Sprintf("var a = parseInt(%s, 10);\nvar b = parseInt(%s, 10);\n(a %s b) ? 100 : 0",
		refA, refB, op.operator()), nil
}

// storeText returns the sourceText reference of a variable's store layer.
func (s *Synthesizer) storeText(name string) (string, error) {
	if err := s.catalog.MustExist(name); err != nil {
		return "", err
	}
	v, _ := s.catalog.ByName(name)
	return fmt.Sprintf("comp(%s).layer(%s).text.sourceText", quote(s.storeComposition), quote(v.StoreName())), nil
}

func opacityPair(visibleWhenMatch bool) string {
	if visibleWhenMatch {
		return "100 : 0"
	}
	return "0 : 100"
}

func number(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// literalEscaper keeps user text opaque to Validate. No backslash can
// precede the closing quote and delimiters are hex escaped.
var literalEscaper = strings.NewReplacer(
	`\`, `\x5c`,
	`"`, `\"`,
	`'`, `\'`,
	"(", `\x28`,
	")", `\x29`,
	"[", `\x5b`,
	"]", `\x5d`,
	"{", `\x7b`,
	"}", `\x7d`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// quote renders s as a double-quoted expression string literal.
func quote(s string) string { return `"` + literalEscaper.Replace(s) + `"` }
