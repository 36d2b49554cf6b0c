// Package runner assembles the final argument vector and executes the
// external tool, forwarding its exit status.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/fatih/color"
)

var (
	// ErrToolNotFound indicates the external tool is not on the PATH.
	ErrToolNotFound = errors.New("external tool not found")
	// ErrToolStart indicates the external tool was found but could not
	// be started.
	ErrToolStart = errors.New("external tool could not be started")
)

var executingColor = color.New(color.FgGreen, color.Bold)

// Invocation is a single assembled run of the external tool.
type Invocation struct {
	// Argv is the full argument vector including the tool itself.
	Argv []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New assembles the argument vector for one run: the tool command
// first, then pass-through arguments in the order supplied, then
// script tokens in script order. I/O defaults to the process streams.
func New(tool, passThrough, tokens []string) *Invocation {
	argv := make([]string, 0, len(tool)+len(passThrough)+len(tokens))
	argv = append(argv, tool...)
	argv = append(argv, passThrough...)
	argv = append(argv, tokens...)

	return &Invocation{
		Argv:   argv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run echoes the assembled command line, executes the tool and waits
// for it to finish. The tool's exit code is returned verbatim; errors
// are reserved for failures to launch it at all.
func (inv *Invocation) Run() (int, error) {
	executingColor.Fprint(inv.Stdout, "Executing:")
	fmt.Fprintln(inv.Stdout, " "+Join(inv.Argv))

	cmd := exec.Command(inv.Argv[0], inv.Argv[1:]...)
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	case errors.Is(err, exec.ErrNotFound):
		return 0, fmt.Errorf("%w: %s", ErrToolNotFound, inv.Argv[0])
	default:
		return 0, fmt.Errorf("%w: %v", ErrToolStart, err)
	}
}
