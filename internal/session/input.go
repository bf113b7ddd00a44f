package session

import (
	"strings"
)

// SplitInput breaks a script into single commands. Commands are separated
// by newlines or ';'. Text after '#' is a comment. Separators and comment
// markers inside double quotes are kept, so check expressions survive.
//
//	spawn grunk as: goblin; chip 3 to: grunk
//	check "health.current == 7" to: grunk  # still standing
func SplitInput(script string) []string {
	var (
		out     []string
		current strings.Builder
		quoted  bool
		escaped bool
		comment bool
	)

	flush := func() {
		if line := strings.TrimSpace(current.String()); line != "" {
			out = append(out, line)
		}
		current.Reset()
	}

	for _, r := range script {
		switch {
		case comment:
			if r == '\n' {
				comment = false
				flush()
			}
			continue
		case escaped:
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case !quoted && r == '#':
			comment = true
			continue
		case !quoted && (r == ';' || r == '\n'):
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return out
}
