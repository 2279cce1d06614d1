package cli

import (
	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/app"
)

func init() {
	addWrapFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Preview wrapping interactively",
	Long:  "Open a terminal preview of the file (or stdin) where width and wrap options can be changed with single keys.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, opts, err := inputAndOptions(cmd, args)
		if err != nil {
			return err
		}
		return app.Preview(text, opts)
	},
}
