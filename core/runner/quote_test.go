package runner

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		token    string
		expected string
	}{
		{"plain", "plain"},
		{"a.txt", "a.txt"},
		{"--gas-budget", "--gas-budget"},
		{"0x2::coin::join", "0x2::coin::join"},
		{"", "''"},
		{"hello world", "'hello world'"},
		{"it's", `'it'"'"'s'`},
		{"a;b", "'a;b'"},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.expected, Quote(tc.token))
		})
	}
}

func TestJoin(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	cases := map[string][]string{
		"plain":   {"sui", "client", "ptb", "--gas-budget", "10000"},
		"quoting": {"sui", "client", "ptb", "--move-call", "0x2::coin::join", "hello world", "it's", ""},
	}

	for tn, argv := range cases {
		t.Run(tn, func(t *testing.T) {
			g.Assert(t, tn, []byte(Join(argv)))
		})
	}
}
