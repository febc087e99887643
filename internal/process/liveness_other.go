//go:build unix && !linux && !darwin

package process

import (
	"errors"

	"golang.org/x/sys/unix"
)

// observeProcess falls back to the null signal, which checks existence and
// permission without delivering anything. Zombies still count as present.
func observeProcess(pid int) procStatus {
	err := unix.Kill(pid, 0)
	if err == nil || errors.Is(err, unix.EPERM) {
		return procRunning
	}
	return procGone
}
