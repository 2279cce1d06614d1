package cli

import "github.com/spf13/cobra"

// profileCmd groups option profile commands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named option profiles",
	Long:  "List, show, add, edit and remove the option profiles stored in ~/.wrapctl/profiles.yaml.",
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
