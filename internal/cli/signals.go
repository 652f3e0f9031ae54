package cli

import (
	"os"
	"os/signal"
	"syscall"
)

// shieldInterrupts swallows SIGINT/SIGTERM in this process for the
// duration of an attached container run. The terminal delivers the signal
// to the whole foreground process group, so the runtime CLI still receives
// it and forwards it to the container; shielding just keeps the parent
// alive long enough to observe and report the container's exit code.
// The returned function restores default signal handling.
func shieldInterrupts() (restore func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-signals:
				// Drained; the attached child handles the actual shutdown.
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}
