package core

import (
	"bytes"
	"runtime"
	"strconv"
)

// CaptureEvent returns a pooled Event stamped with the caller's source
// location, thread and goroutine ids, the current time and the elapsed
// milliseconds since process start. skip is the number of frames above the
// caller of CaptureEvent to attribute the event to; 0 identifies the caller.
//
// The returned event should be released with PutEvent once logged.
func CaptureEvent(skip int) *Event {
	e := GetEvent()
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		e.file = file
		e.line = line
	}
	e.elapsed = ElapsedMillis()
	e.threadID = ThreadID()
	e.fiberID = GoroutineID()
	e.time = now().Unix()
	return e
}

var goroutinePrefix = []byte("goroutine ")

// GoroutineID returns the id of the calling goroutine, parsed from the
// runtime stack header. It returns 0 if the header cannot be parsed.
func GoroutineID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
