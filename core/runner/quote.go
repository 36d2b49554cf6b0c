package runner

import (
	"regexp"
	"strings"
)

var unsafeToken = regexp.MustCompile(`[^\w@%+=:,./-]`)

// Quote returns the token in a form safe to paste into a POSIX shell.
func Quote(token string) string {
	if token == "" {
		return "''"
	}
	if !unsafeToken.MatchString(token) {
		return token
	}

	return "'" + strings.ReplaceAll(token, "'", `'"'"'`) + "'"
}

// Join renders argv as a single copy-pasteable command line.
func Join(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = Quote(arg)
	}
	return strings.Join(quoted, " ")
}
