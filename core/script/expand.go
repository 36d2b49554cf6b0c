package script

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMissingVariable indicates a referenced environment variable is
// unset.
var ErrMissingVariable = errors.New("missing required environment variable")

// envRegex matches bare $NAME references (word characters only) and
// braced ${NAME} references (any characters except the closing brace).
var envRegex = regexp.MustCompile(`\$(\w+)|\$\{([^}]+)\}`)

// Expand substitutes every $NAME and ${NAME} reference in token with
// its value from env, left to right. Substituted values are inserted
// verbatim and never re-expanded. The first unset variable aborts the
// expansion with ErrMissingVariable naming it.
func Expand(token string, env Environment) (string, error) {
	var missing error
	expanded := envRegex.ReplaceAllStringFunc(token, func(ref string) string {
		if missing != nil {
			return ref
		}

		var name string
		if strings.HasPrefix(ref, "${") {
			name = ref[2 : len(ref)-1]
		} else {
			name = ref[1:]
		}

		value, ok := env.LookupEnv(name)
		if !ok {
			missing = fmt.Errorf("%w: %s", ErrMissingVariable, name)
			return ref
		}
		return value
	})

	if missing != nil {
		return "", missing
	}
	return expanded, nil
}
