// Package config loads logger definitions from TOML or JSON5 files and
// applies them to a logger.Manager.
//
// A TOML definition:
//
//	[[loggers]]
//	name = "root"
//	level = "info"
//	pattern = "%d [%p] %c %f:%l %m%n"
//
//	  [[loggers.appenders]]
//	  type = "stdout"
//	  color = true
//
//	  [[loggers.appenders]]
//	  type = "file"
//	  path = "/var/log/app/root.log"
//	  level = "warn"
//
// The same structure is accepted as JSON5 for files ending in .json or
// .json5.
package config
