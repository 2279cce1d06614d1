package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/textwrap"
)

func init() {
	rootCmd.AddCommand(dedentCmd)
	rootCmd.AddCommand(indentCmd)
	indentCmd.Flags().String("prefix", "    ", "prefix added to each non-blank line")
	indentCmd.Flags().Bool("all", false, "indent blank lines too")
}

var dedentCmd = &cobra.Command{
	Use:   "dedent [file]",
	Short: "Remove common leading whitespace from every line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), textwrap.Dedent(text))
		return nil
	},
}

var indentCmd = &cobra.Command{
	Use:   "indent [file]",
	Short: "Add a prefix to the start of lines",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		prefix, _ := cmd.Flags().GetString("prefix")
		var pred func(string) bool
		if all, _ := cmd.Flags().GetBool("all"); all {
			pred = func(string) bool { return true }
		}
		fmt.Fprint(cmd.OutOrStdout(), textwrap.Indent(text, prefix, pred))
		return nil
	},
}
