package cli

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"

	"github.com/spf13/cobra"

	"github.com/an-ttt/MySpyder-sub002/internal/server"
	"github.com/an-ttt/MySpyder-sub002/internal/system"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:8787", "address to bind (host:port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP wrapping API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		srv := &server.Server{Addr: addr}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

        system.Logger.Info("starting api", "url", "http://"+addr+"/api/health")
        if err := srv.Start(ctx); err != nil {
            if errors.Is(err, http.ErrServerClosed) {
                return nil
            }
            return err
        }
        return nil
    },
}
