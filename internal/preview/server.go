package preview

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/logfields"
	"git.home.luguber.info/inful/seostudio/internal/seo"
	"git.home.luguber.info/inful/seostudio/internal/workflow"
)

const (
	defaultShutdownTimeout = 5 * time.Second
	defaultDebounce        = 300 * time.Millisecond
)

// Options configures a Server.
type Options struct {
	// Addr is the listen address, e.g. "127.0.0.1:8080".
	Addr string
	// InputPath is the keyword file read on refresh. Empty uses the fallback list.
	InputPath string
	// Fallback is used when InputPath is empty or blank.
	Fallback string
	// Index selects which ranked record to generate.
	Index int
	// Watch regenerates whenever InputPath is written.
	Watch bool
	// Debounce coalesces bursts of file events. Zero uses a short default.
	Debounce time.Duration
	// Metrics serves /metrics when non-nil.
	Metrics http.Handler
	Auditor *seo.Auditor
	Logger  *slog.Logger
}

// Server wires a workflow session to HTTP.
type Server struct {
	session      *workflow.Session
	opts         Options
	logger       *slog.Logger
	errorAdapter *errors.HTTPErrorAdapter
	handler      http.Handler

	// refreshMu serializes regenerations triggered by /reset and the watcher.
	refreshMu sync.Mutex
	// onRefresh is called after every refresh attempt; tests hook it.
	onRefresh func(error)
}

// New constructs a Server. Call Refresh or ListenAndServe to produce the
// first article.
func New(session *workflow.Session, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Auditor == nil {
		opts.Auditor = seo.NewAuditor(seo.WithLogger(opts.Logger))
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	s := &Server{
		session:      session,
		opts:         opts,
		logger:       opts.Logger,
		errorAdapter: errors.NewHTTPErrorAdapter(opts.Logger),
		onRefresh:    func(error) {},
	}
	s.handler = chain(s.logger, s.errorAdapter)(s.routes())
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /markdown", s.handleMarkdown)
	mux.HandleFunc("GET /download", s.handleDownload)
	mux.HandleFunc("GET /keywords", s.handleKeywords)
	mux.HandleFunc("GET /audit", s.handleAudit)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.opts.Metrics != nil {
		mux.Handle("GET /metrics", s.opts.Metrics)
	}
	return mux
}

// Refresh reads the input and walks the session through all steps again.
func (s *Server) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	input, err := s.readInput()
	if err == nil {
		start := time.Now()
		_, err = s.session.Run(ctx, input, s.opts.Index)
		if err == nil {
			s.logger.Info("Preview refreshed", logfields.Duration(time.Since(start)))
		}
	}
	if err != nil {
		s.logger.Error("Preview refresh failed", logfields.Error(err))
	}
	s.onRefresh(err)
	return err
}

func (s *Server) readInput() (string, error) {
	if s.opts.InputPath == "" {
		return s.opts.Fallback, nil
	}
	data, err := os.ReadFile(filepath.Clean(s.opts.InputPath))
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to read keyword file").
			WithContext("path", s.opts.InputPath).
			Build()
	}
	return string(data), nil
}

// ListenAndServe generates the first article, starts the optional watcher
// and serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return err
	}

	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "failed to bind preview port").
			WithContext("addr", s.opts.Addr).
			Build()
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.opts.Watch && s.opts.InputPath != "" {
		w, err := newWatcher(s.opts.InputPath, s.opts.Debounce, s.logger, func() {
			_ = s.Refresh(ctx)
		})
		if err != nil {
			_ = ln.Close()
			return err
		}
		go w.run(ctx)
		defer w.close()
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("Preview server listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.WrapError(err, errors.CategoryRuntime, "preview server failed").Build()
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "preview server shutdown failed").Build()
	}
	s.logger.Info("Preview server stopped")
	return nil
}
