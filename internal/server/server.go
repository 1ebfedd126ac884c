// Package server runs the window manager behind a unix socket. A single
// event-loop goroutine owns the manager; connections hand it requests
// and wait for the reply, so requests are applied one at a time in
// arrival order.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yourusername/deskwm/internal/client"
	"github.com/yourusername/deskwm/internal/config"
	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/models"
	"github.com/yourusername/deskwm/internal/state"
	"github.com/yourusername/deskwm/internal/taskbar"
	"github.com/yourusername/deskwm/internal/wm"
)

// Version is reported by ping
const Version = "0.1.0"

// Options configures a Server
type Options struct {
	SocketPath  string // defaults to client.DefaultSocketPath
	SessionPath string // defaults to state.GetSessionPath()
	Restore     bool   // reopen the saved session on start
	Persist     bool   // save the session on shutdown
}

// Server owns a window manager and serves it over a unix socket
type Server struct {
	opts     Options
	mgr      *wm.Manager
	taskbar  *taskbar.Model
	launcher *Launcher
	handlers map[string]handlerFunc

	jobs    chan job
	ready   chan struct{}
	started time.Time
}

type job struct {
	req   *models.Request
	reply chan *models.MessageEnvelope
}

// New builds a server from cfg, registering every configured app.
func New(cfg *config.Config, opts Options) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.SocketPath == "" {
		opts.SocketPath = cfg.Server.Socket
	}
	if opts.SocketPath == "" {
		opts.SocketPath = client.DefaultSocketPath
	}
	if opts.SessionPath == "" {
		opts.SessionPath = state.GetSessionPath()
	}

	mopts, err := cfg.ManagerOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	tb := taskbar.New(cfg.Launchers()...)
	mopts.Taskbar = tb
	mgr := wm.New(mopts)
	launcher := NewLauncher(mgr)

	for _, app := range cfg.Apps {
		wc, err := app.WindowConfig()
		if err != nil {
			return nil, fmt.Errorf("app %s: %w", app.ID, err)
		}
		mgr.RegisterApplication(app.ID, wc)
		launcher.SetSingleton(app.ID, app.Singleton)
	}

	s := &Server{
		opts:     opts,
		mgr:      mgr,
		taskbar:  tb,
		launcher: launcher,
		jobs:     make(chan job),
		ready:    make(chan struct{}),
	}
	s.handlers = s.routes()
	return s, nil
}

// Ready is closed once the socket is listening
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// SocketPath returns the socket the server listens on
func (s *Server) SocketPath() string {
	return s.opts.SocketPath
}

// Run serves until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	if s.opts.Restore {
		if err := s.restoreSession(); err != nil {
			logging.Warn().Err(err).Msg("session restore failed")
		}
	}

	if err := os.Remove(s.opts.SocketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale socket: %w", err)
	}
	ln, err := net.Listen("unix", s.opts.SocketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.SocketPath, err)
	}
	defer os.Remove(s.opts.SocketPath)

	s.started = time.Now()
	logging.Info().Str("socket", s.opts.SocketPath).Msg("server listening")
	close(s.ready)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return ln.Close()
	})
	g.Go(func() error {
		return s.loop(ctx)
	})
	g.Go(func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("accept failed: %w", err)
			}
			g.Go(func() error {
				s.serveConn(ctx, conn)
				return nil
			})
		}
	})

	err = g.Wait()
	if errors.Is(err, net.ErrClosed) {
		err = nil
	}

	// The loop has exited, so the manager is ours again
	if s.opts.Persist {
		if serr := state.Capture(s.mgr).SaveTo(s.opts.SessionPath); serr != nil {
			logging.Error().Err(serr).Msg("failed to save session")
		} else {
			logging.Info().Str("path", s.opts.SessionPath).Msg("session saved")
		}
	}

	logging.Info().Msg("server stopped")
	return err
}

// loop is the only goroutine that touches the manager while serving
func (s *Server) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case j := <-s.jobs:
			j.reply <- s.dispatch(j.req)
		}
	}
}

// submit hands a request to the loop and waits for its reply
func (s *Server) submit(ctx context.Context, req *models.Request) (*models.MessageEnvelope, error) {
	j := job{req: req, reply: make(chan *models.MessageEnvelope, 1)}
	select {
	case s.jobs <- j:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case resp := <-j.reply:
		return resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}

		var env models.MessageEnvelope
		var resp *models.MessageEnvelope
		if err := json.Unmarshal(line, &env); err != nil || env.Type != "request" || env.Request == nil {
			resp = models.NewErrorResponse("", models.CodeBadRequest, "malformed request envelope")
		} else {
			resp, err = s.submit(ctx, env.Request)
			if err != nil {
				return
			}
		}

		data, err := json.Marshal(resp)
		if err != nil {
			logging.Error().Err(err).Msg("failed to marshal response")
			return
		}
		if _, err := conn.Write(append(data, '\n')); err != nil {
			return
		}
	}
}

func (s *Server) restoreSession() error {
	session, err := state.LoadSessionFrom(s.opts.SessionPath)
	if err != nil {
		return err
	}
	state.Restore(s.mgr, session)
	return nil
}
