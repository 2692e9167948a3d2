package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/textframe/pkg/buildinfo"
	"github.com/matzehuels/textframe/pkg/command"
	fterrors "github.com/matzehuels/textframe/pkg/errors"
)

const (
	// maxBodyBytes leaves room for JSON quoting around the largest accepted text.
	maxBodyBytes = 2*fterrors.MaxTextBytes + 4096

	shutdownTimeout = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr        string
	ReadTimeout time.Duration
}

// Server serves a command registry over HTTP.
type Server struct {
	registry *command.Registry
	logger   *log.Logger
	opts     Options
	router   chi.Router
}

// New builds a server around reg. A nil logger discards output.
func New(reg *command.Registry, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{registry: reg, logger: logger, opts: opts}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler, for use with httptest or a custom server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/commands", s.handleCommands)
	r.Post("/invoke/{command}", s.handleInvoke)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fterrors.Wrap(fterrors.ErrCodeUnavailable, err, "listen on %s", s.opts.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *Server) handleCommands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"commands": s.registry.Names()})
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "command")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fterrors.New(fterrors.ErrCodeInvalidInput, "request body too large (max %d bytes)", maxBodyBytes))
			return
		}
		writeError(w, http.StatusBadRequest, fterrors.Wrap(fterrors.ErrCodeInvalidArgs, err, "read request body"))
		return
	}

	result, err := s.registry.Invoke(r.Context(), name, body)
	if err != nil {
		id := RequestIDFrom(r.Context())
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.logger.Debug("invoke abandoned", "command", name, "id", id, "err", err)
			err = fterrors.Wrap(fterrors.ErrCodeUnavailable, err, "request ended before %q ran", name)
		}
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("invoke failed", "command", name, "id", id, "err", err)
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Result: result})
}
