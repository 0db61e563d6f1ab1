// Package tui renders border previews in the terminal and serves them over SSH
// via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-borders/internal/config"
	"github.com/vovakirdan/tui-borders/internal/core"
	"github.com/vovakirdan/tui-borders/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.borders/host_key.
	HostKeyPath string

	// DBPath is the path to the sessions database. Empty disables recording.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Theme is the theme each session starts on; empty uses the catalog default.
	Theme string
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.borders/sessions.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that shows the border preview.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu       sync.RWMutex
	catalog  config.Catalog
	sessions sync.Map // ssh.Session -> *sessionInfo
}

// sessionInfo tracks what a session showed until it ends.
type sessionInfo struct {
	mu      sync.Mutex
	started time.Time
	theme   string
	width   int
	height  int
}

func (i *sessionInfo) setTheme(name string) {
	i.mu.Lock()
	i.theme = name
	i.mu.Unlock()
}

func (i *sessionInfo) snapshot() (theme string, w, h int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.theme, i.width, i.height
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger writes to stderr.
func NewSSHServer(cfg SSHServerConfig, cat config.Catalog, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "borders-ssh",
		})
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	if _, ok := cat.Lookup(cfg.Theme); !ok {
		return nil, fmt.Errorf("tui: unknown theme %q", cfg.Theme)
	}

	// Open storage
	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open sessions database", "error", err)
			// Continue without storage
			store = nil
		}
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		logger:  logger,
		catalog: cat,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".borders", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// SetCatalog replaces the catalog used for new sessions.
func (s *SSHServer) SetCatalog(cat config.Catalog) {
	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()
}

func (s *SSHServer) currentCatalog() config.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// teaHandler creates a preview program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height

	model, err := NewPreviewModel(s.currentCatalog(), s.config.Theme, cfg, bubbletea.MakeRenderer(sess))
	if err != nil {
		s.logger.Error("cannot create preview", "user", sess.User(), "error", err)
		return nil, nil
	}

	if v, found := s.sessions.Load(sess); found {
		info := v.(*sessionInfo)
		info.mu.Lock()
		info.width, info.height = cfg.ScreenW, cfg.ScreenH
		info.mu.Unlock()
		model = model.OnThemeChange(info.setTheme)
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events and records finished sessions.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		info := &sessionInfo{started: time.Now()}
		s.sessions.Store(sess, info)
		defer s.sessions.Delete(sess)

		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)

		theme, w, h := info.snapshot()
		duration := time.Since(info.started)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"theme", theme,
			"duration", duration.Round(time.Millisecond),
		)

		if s.store == nil || theme == "" {
			return
		}
		_, err := s.store.SaveSession(storage.Session{
			User:      sess.User(),
			Remote:    sess.RemoteAddr().String(),
			Theme:     theme,
			Width:     w,
			Height:    h,
			StartedAt: info.started,
			Duration:  duration,
		})
		if err != nil {
			s.logger.Warn("could not record session", "user", sess.User(), "error", err)
		}
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
