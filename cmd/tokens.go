package cmd

import (
	"fmt"

	"github.com/josephlewis42/ptbrun/core/script"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens SCRIPT",
	Short: "Print the expanded tokens of a PTB script without running it.",
	Long: `Runs the script through the same read, tokenize and expand pipeline
as run, then prints one token per line instead of invoking the tool.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		tokens, err := script.Load(afero.NewOsFs(), args[0], script.OSEnv{})
		if err != nil {
			return err
		}

		for _, tok := range tokens {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
