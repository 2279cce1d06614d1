package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
)

func init() {
	profileCmd.AddCommand(profileLsCmd)
}

var profileLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List option profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := config.LoadProfiles()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, name := range ps.Names() {
			o := ps[name].Options()
			line := fmt.Sprintf("%s: width %d", name, o.Width)
			if o.MaxLines > 0 {
				line += fmt.Sprintf(", max %d lines", o.MaxLines)
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}
