// Package core defines the shared types used across plog.
//
// It provides the Level type used for threshold filtering and the Event
// type that represents a single log occurrence: source location, elapsed
// milliseconds since process start, thread and goroutine ids, a unix
// timestamp, and a message buffer that can be written to incrementally.
//
// Events captured through CaptureEvent come from a sync.Pool. Once a
// logger has dispatched the event synchronously to its appenders it is
// returned with PutEvent. Events built with NewEvent are ordinary heap
// values and need no release.
//
// Go has no portable notion of a fiber; the fiber id of a captured event
// is the goroutine id, and the thread id is the kernel thread id on Linux.
//
// Diagnostics exposes the zap logger that receives the library's own
// advisory output, such as malformed pattern reports.
package core
