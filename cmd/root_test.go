package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/josephlewis42/ptbrun/core/runner"
	"github.com/josephlewis42/ptbrun/core/script"
	"github.com/stretchr/testify/assert"
)

func TestExitStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"tool exit code", exitStatusError(3), 3},
		{"tool not found", fmt.Errorf("run: %w", runner.ErrToolNotFound), 127},
		{"tool start failure", fmt.Errorf("run: %w", runner.ErrToolStart), 126},
		{"missing variable", fmt.Errorf("%w: SRC", script.ErrMissingVariable), 1},
		{"empty script", fmt.Errorf("%w in demo.ptb", script.ErrEmptyScript), 1},
		{"anything else", errors.New("boom"), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, exitStatus(tc.err))
		})
	}
}
