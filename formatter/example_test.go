package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
)

func ExampleNewPatternFormatter() {
	f := formatter.NewPatternFormatter(formatter.Config{
		Pattern:  "%d{%Y-%m-%d} [%p] %c %f:%l %m",
		Location: time.UTC,
	})

	ev := core.NewEvent("main.go", 12, 0, 1, 1, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC).Unix())
	ev.WriteString("hello world")

	fmt.Println(f.Format("app", core.InfoLevel, ev))
	// Output:
	// 2026-01-15 [INFO] app main.go:12 hello world
}

func ExamplePatternFormatter_unknownDirective() {
	f := formatter.New("%q|%%|%m")
	ev := core.NewEvent("", 0, 0, 0, 0, 0)
	ev.WriteString("msg")

	fmt.Println(f.Format("app", core.InfoLevel, ev))
	// Output:
	// <<error_format %q>>|%|msg
}
