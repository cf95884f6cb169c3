package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// pyEscaper escapes the characters that would break out of a
// double-quoted Python string.
var pyEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// pyString renders s as a double-quoted Python string literal.
func pyString(s string) string {
	return `"` + pyEscaper.Replace(s) + `"`
}

// isDigits reports whether s is non-empty and all ASCII digits.
// This is the numeric test for literal inference: "42" is numeric,
// "-2" and "1.5" are not and are emitted as quoted strings.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// pyLiteral renders a captured token as either an unquoted numeric
// literal or a quoted string literal. Shared by the list, append and
// dictionary rules so the inference cannot drift between them.
func pyLiteral(token string) string {
	if isDigits(token) {
		return token
	}
	return pyString(token)
}

// pyList renders a comma-separated capture as a Python list literal.
// Tokens keep their original order; each is trimmed and independently
// inferred.
func pyList(csv string) string {
	tokens := strings.Split(csv, ",")
	items := make([]string, len(tokens))
	for i, tok := range tokens {
		items[i] = pyLiteral(strings.TrimSpace(tok))
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// pyDict renders comma-separated "key:value" pairs as a Python dict
// literal. Keys are always quoted; values go through literal
// inference. A pair without exactly one ":" is malformed.
func pyDict(csv string) (string, error) {
	pairs := strings.Split(csv, ",")
	items := make([]string, len(pairs))
	for i, pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) != 2 {
			return "", fmt.Errorf("%w: dictionary pair %q needs exactly one ':'", ErrMalformed, strings.TrimSpace(pair))
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		items[i] = pyString(key) + ": " + pyLiteral(val)
	}
	return "{" + strings.Join(items, ", ") + "}", nil
}

// atoi parses a digits-only capture. \d+ triggers guarantee the text
// is numeric, so the only way to fail is overflow, which is reported
// as malformed rather than rendered as a wrong bound.
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q out of range", ErrMalformed, s)
	}
	return n, nil
}
