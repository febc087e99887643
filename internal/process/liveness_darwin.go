//go:build darwin

package process

import "golang.org/x/sys/unix"

// From <sys/proc.h>.
const (
	darwinSStop = 4
	darwinSZomb = 5
)

// observeProcess asks the kernel for the kinfo_proc of pid.
func observeProcess(pid int) procStatus {
	info, err := unix.SysctlKinfoProc("kern.proc.pid", pid)
	if err != nil || info == nil || int(info.Proc.P_pid) != pid {
		return procGone
	}
	switch info.Proc.P_stat {
	case darwinSZomb:
		return procGone
	case darwinSStop:
		return procStopped
	default:
		return procRunning
	}
}
