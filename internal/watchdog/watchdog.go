// Package watchdog supervises the daemon's parent process. The host
// application spawns the bridge as a subprocess; if the host crashes
// or is force-quit without a chance to signal its children, the
// bridge would otherwise run forever. Watch polls the parent's
// liveness and exits the daemon promptly when it disappears.
package watchdog

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const probeInterval = 1 * time.Second

// Watch polls parentPID once per tick until ctx is canceled or the
// parent is no longer alive, in which case it calls exit(0). A
// graceful exit is used rather than an error: losing the parent is
// the expected way the daemon winds down when its host dies.
func Watch(ctx context.Context, parentPID int, log zerolog.Logger, exit func(int)) {
	if parentPID <= 0 {
		return
	}
	log.Info().Int("parent_pid", parentPID).Msg("watchdog monitoring parent process")

	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !alive(parentPID) {
				log.Warn().Int("parent_pid", parentPID).Msg("parent process gone, shutting down")
				exit(0)
				return
			}
		}
	}
}

// alive sends the null signal to pid, which on POSIX systems performs
// existence/permission checks without actually delivering a signal.
func alive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	return err == nil
}
