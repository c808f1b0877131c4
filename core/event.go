package core

import (
	"bytes"
	"fmt"
	"sync"
	"time"
)

// Event is a snapshot of one log occurrence. The source file name is an
// owned copy; the message buffer may be appended to until the event is
// handed to a logger.
type Event struct {
	file     string
	line     int
	elapsed  uint64
	threadID uint64
	fiberID  uint64
	time     int64
	msg      bytes.Buffer
}

// NewEvent creates an event with the given source location, elapsed
// milliseconds since process start, thread and fiber ids and unix timestamp.
func NewEvent(file string, line int, elapsed, threadID, fiberID uint64, ts int64) *Event {
	return &Event{
		file:     file,
		line:     line,
		elapsed:  elapsed,
		threadID: threadID,
		fiberID:  fiberID,
		time:     ts,
	}
}

// File returns the source file that produced the event
func (e *Event) File() string { return e.file }

// Line returns the source line that produced the event
func (e *Event) Line() int { return e.line }

// Elapsed returns milliseconds elapsed since process start
func (e *Event) Elapsed() uint64 { return e.elapsed }

// ThreadID returns the OS thread id of the producer
func (e *Event) ThreadID() uint64 { return e.threadID }

// FiberID returns the goroutine id of the producer
func (e *Event) FiberID() uint64 { return e.fiberID }

// Time returns the event timestamp in seconds since the unix epoch
func (e *Event) Time() int64 { return e.time }

// Message returns the accumulated message content
func (e *Event) Message() string { return e.msg.String() }

// MessageBytes returns the message content without copying. The slice is
// only valid until the next write to the event.
func (e *Event) MessageBytes() []byte { return e.msg.Bytes() }

// Write appends p to the message. It never returns an error.
func (e *Event) Write(p []byte) (int, error) {
	return e.msg.Write(p)
}

// WriteString appends s to the message
func (e *Event) WriteString(s string) (int, error) {
	return e.msg.WriteString(s)
}

// Printf appends a formatted string to the message
func (e *Event) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&e.msg, format, args...)
}

// SetMessage replaces the message content
func (e *Event) SetMessage(s string) {
	e.msg.Reset()
	e.msg.WriteString(s)
}

// SetSource sets the file and line of the event
func (e *Event) SetSource(file string, line int) {
	e.file = file
	e.line = line
}

// SetTime sets the unix timestamp of the event
func (e *Event) SetTime(ts int64) {
	e.time = ts
}

// Reset clears the message and replaces every other field, so a pooled
// event can be filled from a source other than CaptureEvent.
func (e *Event) Reset(file string, line int, elapsed, threadID, fiberID uint64, ts int64) {
	e.msg.Reset()
	e.file = file
	e.line = line
	e.elapsed = elapsed
	e.threadID = threadID
	e.fiberID = fiberID
	e.time = ts
}

func (e *Event) reset() {
	e.file = ""
	e.line = 0
	e.elapsed = 0
	e.threadID = 0
	e.fiberID = 0
	e.time = 0
	e.msg.Reset()
}

// eventPool is a pool of Event objects to reduce allocations
var eventPool = sync.Pool{
	New: func() interface{} {
		e := &Event{}
		e.msg.Grow(128)
		return e
	},
}

// GetEvent retrieves a zeroed Event from the pool
func GetEvent() *Event {
	return eventPool.Get().(*Event)
}

// PutEvent returns an Event to the pool
func PutEvent(e *Event) {
	if e == nil {
		return
	}
	// Don't keep events whose message grew unusually large
	if e.msg.Cap() > 64*1024 {
		return
	}
	e.reset()
	eventPool.Put(e)
}

// processStart is the reference point for Event.Elapsed
var processStart = time.Now()

// ElapsedMillis returns the milliseconds elapsed since process start
func ElapsedMillis() uint64 {
	return uint64(time.Since(processStart) / time.Millisecond)
}
