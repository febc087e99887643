//go:build linux

package process

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
)

// observeProcess reads the state field of /proc/<pid>/stat.
func observeProcess(pid int) procStatus {
	data, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
	if err != nil {
		return procGone
	}
	return parseStat(data)
}

// parseStat extracts the state letter that follows the parenthesised comm
// field. comm may itself contain spaces and parentheses, so the last ')' wins.
func parseStat(data []byte) procStatus {
	end := bytes.LastIndexByte(data, ')')
	if end < 0 || end+2 >= len(data) {
		return procGone
	}
	switch data[end+2] {
	case 'Z', 'X', 'x':
		return procGone
	case 'T':
		return procStopped
	default:
		// R, S, D, I, W, K, P, t and anything newer kernels add.
		return procRunning
	}
}
