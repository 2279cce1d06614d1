package cli

import (
    "fmt"
    "os"

    "github.com/spf13/cobra"

    "github.com/an-ttt/MySpyder-sub002/internal/system"
)

var rootCmd = &cobra.Command{
    Use:   "wrapctl",
    Short: "wrapctl – wrap, fill and shorten plain text",
    Long:  "wrapctl wraps text to a column width from the command line, over HTTP, on file change or in an interactive preview.",
    PersistentPreRun: func(cmd *cobra.Command, args []string) {
        v, _ := cmd.Flags().GetBool("verbose")
        system.SetVerbose(v)
    },
    RunE: func(cmd *cobra.Command, args []string) error {
        return cmd.Help()
    },
    SilenceUsage:  true,
    SilenceErrors: true,
}

func init() {
    rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI.
func Execute() {
    if err := rootCmd.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}
