package logger

import "runtime"

// callerLine returns the location of its caller
func callerLine() (uintptr, string, int) {
	pc, file, line, _ := runtime.Caller(1)
	return pc, file, line
}
