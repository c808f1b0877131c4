//go:build linux

package core

import "golang.org/x/sys/unix"

// ThreadID returns the kernel thread id of the calling thread. Goroutines
// migrate between threads, so the value identifies where the event was
// captured, not a stable owner.
func ThreadID() uint64 {
	return uint64(unix.Gettid())
}
