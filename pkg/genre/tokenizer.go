// Package genre normalizes composite genre strings into atomic tokens.
//
// Dataset genre entries mix delimiters: ASCII comma and the full-width
// comma used in CJK text. Both split; nothing else does.
package genre

import "strings"

func isDelimiter(r rune) bool {
	return r == ',' || r == '，'
}

// Split breaks a single raw genre string into trimmed tokens,
// dropping empty pieces. "科幻, 冒险" -> ["科幻", "冒险"].
func Split(raw string) []string {
	parts := strings.FieldsFunc(raw, isDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Tokenize flattens a raw genre list into its unique tokens,
// preserving first-seen order. A nil list yields no tokens.
func Tokenize(raw []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, r := range raw {
		for _, t := range Split(r) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// TokenSet is Tokenize as a membership set.
func TokenSet(raw []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, r := range raw {
		for _, t := range Split(r) {
			set[t] = struct{}{}
		}
	}
	return set
}
