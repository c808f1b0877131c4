// Package appender provides the output destinations of plog.
//
// An Appender receives an event together with the name of the logger and
// the level it was logged at, applies its own level threshold, renders the
// event with its formatter and writes the result. Writes are synchronous
// and serialised per appender.
//
// Built-in appenders:
//
//   - ConsoleAppender writes to any io.Writer (default: stdout) and can
//     colour lines by level.
//   - FileAppender appends to a file and supports Reopen, which closes
//     and reopens the file so that external rotation tools can move it
//     away.
//
// An appender without a formatter renders with formatter.Default(). Loggers
// hand their own formatter to appenders that have none when the appender
// is added.
//
// Appenders count processed, filtered and failed writes in a Stats value
// that can be read through StatsProvider.
package appender
