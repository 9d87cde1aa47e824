package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/compdb/internal/app"
	"go.trai.ch/compdb/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [targets...]",
		Short: "Generate the compilation database for the given root targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error.
				_ = cmd.Help()
				return nil
			}
			output, _ := cmd.Flags().GetString("output")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Generate(cmd.Context(), args, app.GenerateOptions{
				Output: output,
				Watch:  watch,
			})
		},
	}
	cmd.Flags().StringP("output", "o", domain.DatabaseFileName, "Output file for the compilation database")
	cmd.Flags().BoolP("watch", "w", false, "Regenerate on workspace changes until interrupted")
	return cmd
}
