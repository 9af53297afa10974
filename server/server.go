// Package server implements the flag server: one reserved path answered
// from the process environment, static files for everything else.
package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/ctfsh/flagserv/config"
)

// FlagPath is the reserved path answered by the flag handler.
const FlagPath = "/flag"

var (
	// ErrNilConfig is returned when the config is nil.
	ErrNilConfig = errors.New("config cannot be nil")
	// ErrNilLogger is returned when the logger is nil.
	ErrNilLogger = errors.New("logger cannot be nil")
	// ErrNilLookup is returned when the lookup func is nil.
	ErrNilLookup = errors.New("lookup cannot be nil")
)

// Server dispatches requests between the flag handler and the
// static-file delegate rooted at the document root.
type Server struct {
	config *config.Config
	logger *log.Logger
	lookup config.LookupFunc
	files  http.Handler
}

// New creates a new Server serving files from config.Root.
// The flag value is read through lookup on every request to FlagPath.
func New(cfg *config.Config, logger *log.Logger, lookup config.LookupFunc) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if lookup == nil {
		return nil, ErrNilLookup
	}
	return &Server{
		config: cfg,
		logger: logger,
		lookup: lookup,
		files:  http.FileServer(http.Dir(cfg.Root)),
	}, nil
}

// Config returns the server configuration.
func (s *Server) Config() *config.Config {
	return s.config
}
