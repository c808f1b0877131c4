// Command plogd configures loggers from a file, writes a sample event and
// keeps running so log files can be reopened on SIGHUP and loggers
// adjusted through an optional admin HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipp01105/plog/config"
	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "plogd:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("plogd", flag.ContinueOnError)
	configPath := fs.String("config", "", "logger definitions (.toml, .json or .json5)")
	adminAddr := fs.String("admin", "", "listen address of the admin API, disabled when empty")
	once := fs.Bool("once", false, "write the sample event and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	core.StartCoarseClock()

	m := logger.DefaultManager()
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		if err := cfg.Apply(m); err != nil {
			return err
		}
	}
	defer m.Close()

	// Empty sample event from this call site
	ev := core.CaptureEvent(0)
	m.Get("test").Log(core.DebugLevel, ev)
	core.PutEvent(ev)

	log := m.Get("plogd")
	if *once {
		return nil
	}

	var srv *http.Server
	if *adminAddr != "" {
		srv = &http.Server{
			Addr:              *adminAddr,
			Handler:           NewRouter(m, log),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Infof("admin API listening on %s", *adminAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Errorf("admin API: %v", err)
			}
		}()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	for sig := range sigs {
		if sig == syscall.SIGHUP {
			if err := m.Reopen(); err != nil {
				log.Errorf("reopen: %v", err)
				continue
			}
			log.Infof("log files reopened")
			continue
		}
		break
	}

	log.Infof("shutting down")
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
