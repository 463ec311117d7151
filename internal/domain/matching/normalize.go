package matching

import (
	"regexp"
	"strings"
)

var (
	leadingNoise  = []string{"layer_", "layer ", "txt_", "txt ", "text_", "text ", "img_", "img "}
	trailingNoise = regexp.MustCompile(`(_copy|copy|layer|txt|text)$`)
)

// Normalize lower-cases a layer name and strips one leading and one trailing
// noise token. Tokens are removed by plain substitution, so "context" loses
// its "text" suffix too.
func Normalize(name string) string {
	s := strings.ToLower(name)
	for _, p := range leadingNoise {
		if strings.HasPrefix(s, p) {
			s = s[len(p):]
			break
		}
	}
	s = trailingNoise.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Similarity scores two strings in [0, 1] with a greedy two-cursor scan:
// equal runes advance both cursors and count as a match, otherwise the
// cursor of the longer string advances (the second string's on a tie).
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1.0
	}

	matches := 0
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		switch {
		case ra[i] == rb[j]:
			matches++
			i++
			j++
		case len(ra) > len(rb):
			i++
		default:
			j++
		}
	}
	return float64(matches) / float64(longest)
}

// collapse removes word separators so snake_case and spaced names line up
// with lower-cased camelCase keys.
func collapse(s string) string {
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}
