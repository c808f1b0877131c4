// Package formatter turns log events into text using printf-like patterns.
//
// A pattern mixes literal text with %-directives:
//
//	%m  message            %p  level name        %r  elapsed ms
//	%c  logger name        %t  thread id         %F  goroutine id
//	%n  newline            %d  timestamp         %f  source file
//	%l  source line        %%  literal percent
//
// %d takes an optional strftime layout in braces, e.g. %d{%H:%M:%S}; the
// default layout is %Y-%m-%d %H:%M:%S. Unknown directives render as a
// visible <<error_format %X>> marker rather than failing, and an unclosed
// brace is reported to the diagnostic logger while the part of the pattern
// before it keeps working.
//
// A pattern is compiled once into an ordered list of items. Items are
// immutable, so a PatternFormatter can be shared by any number of
// goroutines. SetPattern compiles a new list and publishes it atomically;
// concurrent Format calls see either the old or the new list, never a mix.
//
// Rendering uses a pooled bytes.Buffer. Buffers larger than 64 KiB are not
// returned to the pool.
package formatter
