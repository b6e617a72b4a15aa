// Unix/Darwin shutdown signals for long-running commands such as theme watch.

//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals returns SIGINT and SIGTERM, the conventional signals sent by
// a terminal and by process managers to request a graceful stop.
func shutdownSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}
