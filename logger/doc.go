// Package logger is the public API of plog. Most users only need to
// import this package.
//
// A Logger has a name, a level threshold and an ordered list of
// appenders. An event logged at a level at or above the threshold is
// handed to each appender, which applies its own threshold and renders the
// event with its pattern formatter. Level and appender changes use atomic
// copy-on-write updates, so they are safe while other goroutines log.
//
// The package initializes a default Manager in init(). Its root logger
// writes DEBUG and above to stdout using formatter.DefaultPattern. The
// package-level functions delegate to it, so simple programs can log
// without any setup:
//
//	logger.Infof("listening on %s", addr)
//
// Events can also be built incrementally; the call site is captured by At
// and nothing is logged until Commit:
//
//	w := log.At(logger.WarnLevel)
//	fmt.Fprintf(w, "retry %d of %d", n, max)
//	w.Commit()
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithName("db").
//	    WithLevel(logger.InfoLevel).
//	    WithPattern("%d{%H:%M:%S} %c [%p] %m%n").
//	    WithAppender(appender.NewStdoutAppender()).
//	    Build()
//
// Loggers obtained from a Manager with Get fall back to the root logger's
// appenders until appenders of their own are added.
package logger
