//go:build !linux

package core

import "os"

// ThreadID returns the process id on platforms without a cheap thread id
func ThreadID() uint64 {
	return uint64(os.Getpid())
}
