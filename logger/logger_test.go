package logger

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/plog/appender"
	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
)

func bufferAppender(buf *bytes.Buffer, pattern string) *appender.ConsoleAppender {
	return appender.NewConsoleAppender(appender.ConsoleConfig{
		Writer:    buf,
		Formatter: formatter.NewPatternFormatter(formatter.Config{Pattern: pattern, Location: time.UTC}),
	})
}

func newEvent(msg string) *core.Event {
	e := core.NewEvent("a.cc", 42, 0, 1, 2, 1705276800)
	e.WriteString(msg)
	return e
}

func TestLogger_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithName("test").
		WithAppender(bufferAppender(&buf, "%m\n")).
		WithLevel(InfoLevel).
		Build()

	// Debug should not be logged (below Info level)
	logger.Debug(newEvent("debug message"))
	if buf.Len() > 0 {
		t.Error("Debug message was logged when level is Info")
	}

	logger.Info(newEvent("info message"))
	logger.Warn(newEvent("warn message"))
	logger.Error(newEvent("error message"))
	logger.Fatal(newEvent("fatal message"))

	want := "info message\nwarn message\nerror message\nfatal message\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	logger.SetLevel(ErrorLevel)
	logger.Warn(newEvent("hidden"))
	if buf.Len() > 0 {
		t.Errorf("Warn logged after SetLevel(Error): %q", buf.String())
	}
}

func TestLogger_EndToEnd(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithName("test").
		WithAppender(bufferAppender(&buf, "(%d{%Y-%m-%d}) [%p] <%f:%l>\t%m %n")).
		Build()

	logger.Log(DebugLevel, newEvent("hello"))

	if buf.String() != "(2024-01-15) [DEBUG] <a.cc:42>\thello \n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_LoggerName(t *testing.T) {
	var buf bytes.Buffer
	logger := NewBuilder().
		WithName("payments").
		WithAppender(bufferAppender(&buf, "%c:%m")).
		Build()

	logger.Info(newEvent("x"))
	if buf.String() != "payments:x" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_MultipleAppenders(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	a1 := bufferAppender(&buf1, "1:%m\n")
	a2 := bufferAppender(&buf2, "2:[%p] %m\n")
	a2.SetLevel(ErrorLevel)

	logger := NewBuilder().WithAppender(a1).WithAppender(a2).Build()
	logger.Info(newEvent("info"))
	logger.Error(newEvent("error"))

	if buf1.String() != "1:info\n1:error\n" {
		t.Errorf("first appender = %q", buf1.String())
	}
	if buf2.String() != "2:[ERROR] error\n" {
		t.Errorf("second appender = %q", buf2.String())
	}

	logger.DelAppender(a1)
	logger.Error(newEvent("again"))
	if strings.Count(buf1.String(), "\n") != 2 {
		t.Errorf("removed appender still received events: %q", buf1.String())
	}
	if len(logger.Appenders()) != 1 {
		t.Errorf("Appenders() has %d entries, want 1", len(logger.Appenders()))
	}

	logger.ClearAppenders()
	if len(logger.Appenders()) != 0 {
		t.Error("ClearAppenders() left appenders behind")
	}
}

func TestLogger_AppenderInheritsFormatter(t *testing.T) {
	var buf bytes.Buffer
	a := appender.NewConsoleAppender(appender.ConsoleConfig{Writer: &buf})

	logger := NewBuilder().WithPattern("<%p> %m").Build()
	logger.AddAppender(a)

	if a.Formatter() != logger.Formatter() {
		t.Fatal("appender without formatter should receive the logger formatter")
	}
	logger.Warn(newEvent("shared"))
	if buf.String() != "<WARN> shared" {
		t.Errorf("output = %q", buf.String())
	}

	// SetPattern recompiles the shared formatter in place
	buf.Reset()
	if err := logger.SetPattern("%p|%m"); err != nil {
		t.Fatalf("SetPattern() error = %v", err)
	}
	logger.Warn(newEvent("swapped"))
	if buf.String() != "WARN|swapped" {
		t.Errorf("output after SetPattern = %q", buf.String())
	}
}

func TestLogger_OwnFormatterKept(t *testing.T) {
	var buf bytes.Buffer
	a := bufferAppender(&buf, "own:%m")

	logger := NewBuilder().WithPattern("logger:%m").WithAppender(a).Build()
	logger.Info(newEvent("x"))
	if buf.String() != "own:x" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_SetPatternReplacesForeignFormatter(t *testing.T) {
	logger := NewBuilder().WithFormatter(stubFormatter{}).Build()
	if err := logger.SetPattern("%m"); err != nil {
		t.Fatalf("SetPattern() error = %v", err)
	}
	if _, ok := logger.Formatter().(*formatter.PatternFormatter); !ok {
		t.Errorf("Formatter() = %T, want *formatter.PatternFormatter", logger.Formatter())
	}
}

type stubFormatter struct{}

func (stubFormatter) Format(string, core.Level, *core.Event) string { return "stub" }

func TestLogger_ParentFallback(t *testing.T) {
	var buf bytes.Buffer
	root := NewBuilder().WithAppender(bufferAppender(&buf, "%c %m\n")).Build()
	child := NewBuilder().WithName("child").WithParent(root).Build()

	child.Info(newEvent("via root"))
	if buf.String() != "child via root\n" {
		t.Errorf("output = %q", buf.String())
	}

	var own bytes.Buffer
	child.AddAppender(bufferAppender(&own, "%m\n"))
	child.Info(newEvent("own"))
	if own.String() != "own\n" {
		t.Errorf("own appender output = %q", own.String())
	}
	if strings.Contains(buf.String(), "own") {
		t.Error("root appenders should not be used once child has its own")
	}
}

type brokenAppender struct {
	appender.ConsoleAppender
}

func (*brokenAppender) Log(string, core.Level, *core.Event) error {
	return errBroken
}

var errBroken = errors.New("broken sink")

func TestLogger_AppenderFailureReported(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	prev := core.Diagnostics()
	core.SetDiagnostics(zap.New(obs))
	defer core.SetDiagnostics(prev)

	var buf bytes.Buffer
	logger := NewBuilder().
		WithName("svc").
		WithAppender(&brokenAppender{}).
		WithAppender(bufferAppender(&buf, "%m")).
		Build()

	logger.Error(newEvent("still delivered"))

	if buf.String() != "still delivered" {
		t.Errorf("second appender output = %q", buf.String())
	}
	if logs.Len() != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", logs.Len())
	}
	if logs.All()[0].ContextMap()["logger"] != "svc" {
		t.Errorf("diagnostic fields = %v", logs.All()[0].ContextMap())
	}
}

func TestLogger_ConcurrentAppenderChanges(t *testing.T) {
	logger := NewBuilder().Build()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				logger.Info(newEvent("x"))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			a := bufferAppender(&bytes.Buffer{}, "%m")
			logger.AddAppender(a)
			logger.DelAppender(a)
		}
	}()
	wg.Wait()
}

func TestLogger_Close(t *testing.T) {
	dir := t.TempDir()
	fa, err := appender.NewFileAppender(appender.FileConfig{Filename: dir + "/a.log"})
	if err != nil {
		t.Fatal(err)
	}
	logger := NewBuilder().WithAppender(fa).Build()

	if err := logger.Reopen(); err != nil {
		t.Errorf("Reopen() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
