package cli

import (
	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/config"
	"github.com/an-ttt/MySpyder-sub002/internal/store"
)

// watchCmd groups watch list commands.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rewrap files whenever they change",
	Long:  "Manage the list of watched files and run the watcher, which writes <file>.wrapped after each change.",
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchList opens the persisted watch list; entries are absolute paths.
func watchList() (store.List, error) {
	p, err := config.WatchListPath()
	if err != nil {
		return store.List{}, err
	}
	return store.List{Path: p, Normalize: store.AbsPath}, nil
}
