package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/philipp01105/plog/appender"
)

func testManager(buf *bytes.Buffer) *Manager {
	root := NewBuilder().WithAppender(bufferAppender(buf, "%c [%p] %m\n")).Build()
	return NewManagerWithRoot(root)
}

func TestManager_GetCreatesOnce(t *testing.T) {
	var buf bytes.Buffer
	m := testManager(&buf)

	a := m.Get("db")
	b := m.Get("db")
	if a != b {
		t.Error("Get() should return the same logger for the same name")
	}
	if m.Get("") != m.Root() || m.Get(RootName) != m.Root() {
		t.Error("empty name and RootName should resolve to the root logger")
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Error("Lookup() should not create loggers")
	}

	if got := m.Names(); !reflect.DeepEqual(got, []string{"db", "root"}) {
		t.Errorf("Names() = %v", got)
	}
	if got := m.Loggers(); len(got) != 2 || got[0].Name() != "db" {
		t.Errorf("Loggers() = %v", got)
	}
}

func TestManager_ChildUsesRootAppenders(t *testing.T) {
	var buf bytes.Buffer
	m := testManager(&buf)

	m.Get("http").Info(newEvent("request"))
	if buf.String() != "http [INFO] request\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestManager_ReopenAndClose(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "app.log")
	fa, err := appender.NewFileAppender(appender.FileConfig{Filename: filename})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	m := testManager(&buf)
	// Shared between two loggers; must be reopened and closed once
	m.Get("a").AddAppender(fa)
	m.Get("b").AddAppender(fa)

	m.Get("a").Info(newEvent("one"))
	if err := os.Rename(filename, filename+".1"); err != nil {
		t.Fatal(err)
	}
	if err := m.Reopen(); err != nil {
		t.Fatalf("Reopen() error = %v", err)
	}
	m.Get("b").Info(newEvent("two"))

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("two")) || bytes.Contains(data, []byte("one")) {
		t.Errorf("reopened file content = %q", data)
	}
}

func TestNewManager_Defaults(t *testing.T) {
	m := NewManager()
	root := m.Root()
	if root.Name() != RootName {
		t.Errorf("root name = %q", root.Name())
	}
	if root.Level() != DebugLevel {
		t.Errorf("root level = %v", root.Level())
	}
	if len(root.Appenders()) != 1 {
		t.Fatalf("root should have one stdout appender, has %d", len(root.Appenders()))
	}
}

func TestDefaultManager(t *testing.T) {
	prev := DefaultManager()
	defer SetDefaultManager(prev)

	var buf bytes.Buffer
	SetDefaultManager(testManager(&buf))

	Infof("hello %s", "world")
	Named("svc").Info(newEvent("named"))
	At(WarnLevel).Print("streamed").Commit()
	Debugf("d")
	Warnf("w")
	Errorf("e")
	Fatalf("f")

	want := "root [INFO] hello world\nsvc [INFO] named\nroot [WARN] streamed\n" +
		"root [DEBUG] d\nroot [WARN] w\nroot [ERROR] e\nroot [FATAL] f\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if Default() != DefaultManager().Root() {
		t.Error("Default() should be the default manager's root")
	}
}
