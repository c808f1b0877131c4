package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/plog/appender"
	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
)

func discardLogger(level core.Level) *Logger {
	a := appender.NewConsoleAppender(appender.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.New(formatter.DefaultPattern),
	})
	return NewBuilder().
		WithAppender(a).
		WithLevel(level).
		Build()
}

// BenchmarkInfof benchmarks Infof() with call-site capture using a discard writer.
func BenchmarkInfof(b *testing.B) {
	logger := discardLogger(InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Infof("test message %d", i)
	}
}

// BenchmarkLogPrepared benchmarks Log() with an event built once up front.
func BenchmarkLogPrepared(b *testing.B) {
	logger := discardLogger(InfoLevel)
	ev := core.NewEvent("main.go", 42, 0, 1, 1, 1705314645)
	ev.WriteString("test message")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info(ev)
	}
}

// BenchmarkFilteredDebug benchmarks Debugf() when level is Info (should be filtered).
func BenchmarkFilteredDebug(b *testing.B) {
	logger := discardLogger(InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Debugf("debug message %s", "value")
	}
}

// BenchmarkParallel benchmarks concurrent Infof() calls sharing one appender.
func BenchmarkParallel(b *testing.B) {
	logger := discardLogger(InfoLevel)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Infof("parallel message")
		}
	})
}
