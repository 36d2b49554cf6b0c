// Package script turns PTB script files into argument lists: it reads
// the script text, strips comments, splits it into shell-style tokens
// and expands environment variable references.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/spf13/afero"
)

var (
	// ErrFileAccess indicates the script file is missing or unreadable.
	ErrFileAccess = errors.New("cannot read script")
	// ErrTokenize indicates malformed quoting in the script.
	ErrTokenize = errors.New("malformed script")
	// ErrEmptyScript indicates the script produced no tokens after
	// comment stripping.
	ErrEmptyScript = errors.New("no PTB commands found")
)

// Read returns the full text of the script at path.
func Read(fsys afero.Fs, path string) (string, error) {
	contents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrFileAccess, path, err)
	}
	return string(contents), nil
}

// stripComments removes everything from an unquoted # through the end
// of its line. Quoting and backslash escapes follow the same rules as
// the token splitter so a quoted or escaped # stays part of its token.
func stripComments(text string) string {
	var out strings.Builder
	var quote rune
	var escaped, comment bool

	for _, r := range text {
		if comment {
			if r != '\n' {
				continue
			}
			comment = false
		}

		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '#':
			comment = true
			continue
		}

		out.WriteRune(r)
	}

	return out.String()
}

// Tokenize splits text into tokens using shell-style lexical rules.
// A `#` outside quotes discards the rest of the line, quoted
// substrings become single tokens with the quotes removed.
func Tokenize(text string) ([]string, error) {
	tokens, err := shlex.Split(stripComments(text), true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenize, err)
	}
	return tokens, nil
}

// Load runs the whole pipeline on the script at path: read, tokenize
// and expand every token against env. Token order is preserved and
// substituted values are never re-tokenized.
func Load(fsys afero.Fs, path string, env Environment) ([]string, error) {
	text, err := Read(fsys, path)
	if err != nil {
		return nil, err
	}

	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyScript, path)
	}

	for i, tok := range tokens {
		expanded, err := Expand(tok, env)
		if err != nil {
			return nil, err
		}
		tokens[i] = expanded
	}

	return tokens, nil
}
