package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephlewis42/ptbrun/core/config"
	"github.com/josephlewis42/ptbrun/core/runner"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	return config.Load(afero.NewOsFs(), cfgPath)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ptbrun",
	Short: "Run PTB scripts against an external command-line tool.",
	Long: `ptbrun reads a PTB script, strips comments, expands environment
variable references and forwards the resulting tokens to an external
tool, propagating its exit status.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitStatus(err))
	}
}

// exitStatusError carries the external tool's own exit code through
// cobra without re-reporting a failure the tool already printed.
type exitStatusError int

func (e exitStatusError) Error() string {
	return fmt.Sprintf("external tool exited with status %d", int(e))
}

// exitStatus maps pipeline failures onto the wrapper's exit codes.
func exitStatus(err error) int {
	var status exitStatusError
	switch {
	case errors.As(err, &status):
		return int(status)
	case errors.Is(err, runner.ErrToolNotFound):
		return 127
	case errors.Is(err, runner.ErrToolStart):
		return 126
	default:
		return 1
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config path")
}
