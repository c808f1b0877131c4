package core

import (
	"strings"
	"testing"
)

func TestNewEvent(t *testing.T) {
	e := NewEvent("a.go", 42, 7, 100, 200, 1705276800)

	if e.File() != "a.go" {
		t.Errorf("File() = %q, want %q", e.File(), "a.go")
	}
	if e.Line() != 42 {
		t.Errorf("Line() = %d, want 42", e.Line())
	}
	if e.Elapsed() != 7 {
		t.Errorf("Elapsed() = %d, want 7", e.Elapsed())
	}
	if e.ThreadID() != 100 || e.FiberID() != 200 {
		t.Errorf("ids = %d/%d, want 100/200", e.ThreadID(), e.FiberID())
	}
	if e.Time() != 1705276800 {
		t.Errorf("Time() = %d", e.Time())
	}
	if e.Message() != "" {
		t.Errorf("Message() = %q, want empty", e.Message())
	}
}

func TestEventStreamingAppend(t *testing.T) {
	e := NewEvent("a.go", 1, 0, 0, 0, 0)
	e.WriteString("hello")
	e.Write([]byte(", "))
	e.Printf("%s #%d", "world", 2)

	if got := e.Message(); got != "hello, world #2" {
		t.Errorf("Message() = %q", got)
	}

	e.SetMessage("replaced")
	if got := e.Message(); got != "replaced" {
		t.Errorf("Message() after SetMessage = %q", got)
	}
}

func TestEventPool(t *testing.T) {
	e1 := GetEvent()
	if e1 == nil {
		t.Fatal("GetEvent() returned nil")
	}
	e1.SetSource("x.go", 9)
	e1.WriteString("test")
	PutEvent(e1)

	e2 := GetEvent()
	if e2.Message() != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message())
	}
	if e2.File() != "" || e2.Line() != 0 {
		t.Errorf("Expected zero source after pool reset, got %s:%d", e2.File(), e2.Line())
	}

	// Must not panic
	PutEvent(nil)
}

func TestCaptureEvent(t *testing.T) {
	e := CaptureEvent(0)
	defer PutEvent(e)

	if !strings.HasSuffix(e.File(), "event_test.go") {
		t.Errorf("File() = %q, want suffix event_test.go", e.File())
	}
	if e.Line() == 0 {
		t.Error("Expected non-zero line number")
	}
	if e.Time() == 0 {
		t.Error("Expected non-zero timestamp")
	}
	if e.FiberID() == 0 {
		t.Error("Expected non-zero goroutine id")
	}
}

func TestGoroutineIDDiffers(t *testing.T) {
	main := GoroutineID()
	ch := make(chan uint64)
	go func() { ch <- GoroutineID() }()
	other := <-ch

	if main == 0 || other == 0 {
		t.Fatalf("GoroutineID() returned 0 (main=%d, other=%d)", main, other)
	}
	if main == other {
		t.Errorf("Expected distinct goroutine ids, both %d", main)
	}
}

func BenchmarkCaptureEvent(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := CaptureEvent(0)
		PutEvent(e)
	}
}
