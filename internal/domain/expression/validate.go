package expression

import (
	"fmt"
	"regexp"
	"strings"
)

var varDeclaration = regexp.MustCompile(`\bvar\s+\w+\s*=`)

var pairs = []struct {
	open, close rune
	name        string
}{
	{'{', '}', "braces"},
	{'(', ')', "parentheses"},
	{'[', ']', "brackets"},
}

// Validate runs static checks on expression text and returns every
// violation found. An empty result means the text is acceptable.
//
// The checks are lexical: delimiter counts are net counts over the whole
// text, string literals included, and a quote preceded by a backslash is
// treated as escaped.
func Validate(text string) []string {
	var errs []string

	for _, p := range pairs {
		net := strings.Count(text, string(p.open)) - strings.Count(text, string(p.close))
		if net != 0 {
			errs = append(errs, fmt.Sprintf("unbalanced %s: net count %+d", p.name, net))
		}
	}

	single, double := unescapedQuotes(text)
	if single%2 != 0 {
		errs = append(errs, "unterminated string: odd number of single quotes")
	}
	if double%2 != 0 {
		errs = append(errs, "unterminated string: odd number of double quotes")
	}

	if strings.Contains(text, "var ") && !varDeclaration.MatchString(text) {
		errs = append(errs, "invalid variable declaration")
	}
	return errs
}

func unescapedQuotes(text string) (single, double int) {
	var prev rune
	for _, r := range text {
		if prev != '\\' {
			switch r {
			case '\'':
				single++
			case '"':
				double++
			}
		}
		prev = r
	}
	return single, double
}
