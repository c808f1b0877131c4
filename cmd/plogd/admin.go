package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/philipp01105/plog/appender"
	"github.com/philipp01105/plog/core"
	"github.com/philipp01105/plog/formatter"
	"github.com/philipp01105/plog/logger"
)

// LoggerStatus describes one logger in GET /loggers
type LoggerStatus struct {
	Name      string           `json:"name"`
	Level     string           `json:"level"`
	Pattern   string           `json:"pattern,omitempty"`
	Appenders []AppenderStatus `json:"appenders"`
}

// AppenderStatus describes one appender of a logger
type AppenderStatus struct {
	Type      string `json:"type"`
	Path      string `json:"path,omitempty"`
	Level     string `json:"level"`
	Processed uint64 `json:"processed"`
	Filtered  uint64 `json:"filtered"`
	Failed    uint64 `json:"failed"`
}

type levelRequest struct {
	Level string `json:"level"`
}

type patternRequest struct {
	Pattern string `json:"pattern"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type admin struct {
	m   *logger.Manager
	log *logger.Logger
}

// NewRouter returns the admin API for m. Requests are logged through log.
func NewRouter(m *logger.Manager, log *logger.Logger) http.Handler {
	a := &admin{m: m, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(a.requestLog)

	r.Get("/loggers", a.listLoggers)
	r.Put("/loggers/{name}/level", a.setLevel)
	r.Put("/loggers/{name}/pattern", a.setPattern)
	r.Post("/reopen", a.reopen)
	return r
}

func (a *admin) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.log.Debugf("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func (a *admin) listLoggers(w http.ResponseWriter, r *http.Request) {
	loggers := a.m.Loggers()
	resp := make([]LoggerStatus, 0, len(loggers))
	for _, l := range loggers {
		resp = append(resp, loggerStatus(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

func loggerStatus(l *logger.Logger) LoggerStatus {
	st := LoggerStatus{
		Name:      l.Name(),
		Level:     l.Level().String(),
		Appenders: []AppenderStatus{},
	}
	if pf, ok := l.Formatter().(*formatter.PatternFormatter); ok {
		st.Pattern = pf.Pattern()
	}
	for _, ap := range l.Appenders() {
		as := AppenderStatus{Level: ap.Level().String()}
		switch x := ap.(type) {
		case *appender.FileAppender:
			as.Type = "file"
			as.Path = x.Filename()
		case *appender.ConsoleAppender:
			as.Type = "console"
		default:
			as.Type = "custom"
		}
		if sp, ok := ap.(appender.StatsProvider); ok {
			snap := sp.Stats()
			as.Processed, as.Filtered, as.Failed = snap.Processed, snap.Filtered, snap.Failed
		}
		st.Appenders = append(st.Appenders, as)
	}
	return st
}

func (a *admin) lookup(w http.ResponseWriter, r *http.Request) (*logger.Logger, bool) {
	name := chi.URLParam(r, "name")
	l, ok := a.m.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no logger named " + name})
	}
	return l, ok
}

func (a *admin) setLevel(w http.ResponseWriter, r *http.Request) {
	l, ok := a.lookup(w, r)
	if !ok {
		return
	}
	var req levelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body: " + err.Error()})
		return
	}
	level, err := core.ParseLevel(req.Level)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	l.SetLevel(level)
	a.log.Infof("logger %s level set to %s", l.Name(), level)
	writeJSON(w, http.StatusOK, loggerStatus(l))
}

func (a *admin) setPattern(w http.ResponseWriter, r *http.Request) {
	l, ok := a.lookup(w, r)
	if !ok {
		return
	}
	var req patternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body: " + err.Error()})
		return
	}
	// A malformed pattern is still applied as far as it parses; report it
	if err := l.SetPattern(req.Pattern); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	a.log.Infof("logger %s pattern set to %q", l.Name(), req.Pattern)
	writeJSON(w, http.StatusOK, loggerStatus(l))
}

func (a *admin) reopen(w http.ResponseWriter, r *http.Request) {
	if err := a.m.Reopen(); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	a.log.Infof("log files reopened")
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
