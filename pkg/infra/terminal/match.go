package terminal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ResolveChoice maps a typed answer to a 0-based choice index.
//
// An empty answer picks the first choice. An answer starting with a number
// ("2", "2)", "2 foo") is a 1-based position and ok is false when it is out
// of range. Anything else is matched against the
// labels: the first label containing the answer (case-insensitive) wins, as
// long as the answer covers at least half of the label. No match gives -1.
func ResolveChoice(answer string, choices []string) (index int, ok bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, true
	}

	if n, ok := leadingInt(answer); ok {
		if n < 1 || n > len(choices) {
			return -1, false
		}
		return n - 1, true
	}

	needle := strings.ToLower(answer)
	width := utf8.RuneCountInString(answer)
	for i, choice := range choices {
		if utf8.RuneCountInString(choice) > width*2 {
			continue
		}
		if strings.Contains(strings.ToLower(choice), needle) {
			return i, true
		}
	}
	return -1, true
}

// leadingInt parses an optionally signed run of digits at the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
