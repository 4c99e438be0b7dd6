package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitListLines turns a model's free-text list into items, dropping bullets
// and "1." / "2)" style numbering.
func SplitListLines(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = trimNumbering(line)
		line = NormalizeSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func trimNumbering(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) {
		return s
	}
	if s[i] == '.' || s[i] == ')' {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// SimplifyLocation keeps the part of a place name before the first comma.
func SimplifyLocation(place string) string {
	if i := strings.Index(place, ","); i >= 0 {
		place = place[:i]
	}
	return strings.TrimSpace(place)
}
