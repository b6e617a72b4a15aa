// Windows shutdown signals for long-running commands such as theme watch.

//go:build windows

package main

import "os"

// shutdownSignals returns os.Interrupt, the only signal Go delivers on
// Windows (Ctrl+C / Ctrl+Break).
func shutdownSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
