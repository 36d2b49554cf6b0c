package cmd

import (
	"github.com/josephlewis42/ptbrun/core/runner"
	"github.com/josephlewis42/ptbrun/core/script"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run SCRIPT [-- EXTRA...]",
	Short: "Run a PTB script with the configured external tool.",
	Long: `Reads the PTB script, strips comments, expands environment variable
references and forwards the tokens to the external tool.

Arguments following -- are passed to the tool unchanged and unexpanded,
ahead of the script's own tokens (for example --preview or --dry-run).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		tokens, err := script.Load(afero.NewOsFs(), args[0], script.OSEnv{})
		if err != nil {
			return err
		}

		inv := runner.New(configuration.Command(), args[1:], tokens)
		inv.Stdin = cmd.InOrStdin()
		inv.Stdout = cmd.OutOrStdout()
		inv.Stderr = cmd.ErrOrStderr()

		status, err := inv.Run()
		if err != nil {
			return err
		}
		if status != 0 {
			// The tool already reported its own failure.
			cmd.SilenceErrors = true
			return exitStatusError(status)
		}
		return nil
	},
}

func init() {
	// Everything after the script path belongs to the external tool,
	// even without a -- separator.
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}
