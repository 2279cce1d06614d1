package cli

import (
    "fmt"

    "github.com/spf13/cobra"

    "github.com/an-ttt/MySpyder-sub002/internal/config"
)

func init() {
    rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
    Use:   "schema",
    Short: "Print the JSON Schema of profiles.yaml",
    Long:  "Print the JSON Schema of the profile map, for validating ~/.wrapctl/profiles.yaml in an editor.",
    RunE: func(cmd *cobra.Command, args []string) error {
        b, err := config.MarshalSchema(config.ProfilesSchema())
        if err != nil {
            return err
        }
        fmt.Fprintln(cmd.OutOrStdout(), string(b))
        return nil
    },
}
