package system

import (
    "os"

    clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for CLI, server and watcher output.
// It prints to stderr with timestamps enabled; the wrapping engine never logs.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
    ReportTimestamp: true,
    Prefix:          "wrapctl",
})

// SetVerbose switches the shared logger between info and debug level.
func SetVerbose(v bool) {
    if v {
        Logger.SetLevel(clog.DebugLevel)
        return
    }
    Logger.SetLevel(clog.InfoLevel)
}
