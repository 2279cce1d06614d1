package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/system"
	"github.com/an-ttt/MySpyder-sub002/internal/watch"
)

func init() {
	addWrapFlags(watchRunCmd)
	watchCmd.AddCommand(watchRunCmd)
}

var watchRunCmd = &cobra.Command{
	Use:   "run [file]...",
	Short: "Watch files and rewrap them on change",
	Long:  "Watch the given files, or the watch list when none are given, and fill each paragraph into <file>.wrapped after every change.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := wrapOptions(cmd)
		if err != nil {
			return err
		}
		files := args
		if len(files) == 0 {
			l, err := watchList()
			if err != nil {
				return err
			}
			if files, err = l.Load(); err != nil {
				return err
			}
		}
		if len(files) == 0 {
			return errors.New("nothing to watch: pass files or use `wrapctl watch add`")
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		system.Logger.Info("watching", "files", len(files), "width", opts.Width)
		return watch.Run(ctx, files, opts)
	},
}
