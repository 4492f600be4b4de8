package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/lox/chipstack/internal/bets"
	"github.com/lox/chipstack/internal/casino"
	"github.com/lox/chipstack/internal/chips"
)

// Server exposes the casino shell over HTTP and WebSocket. Every mutation
// runs under one lock so the shell sees a single caller.
type Server struct {
	shell    *casino.Shell
	table    *chips.Table
	logger   *log.Logger
	upgrader websocket.Upgrader
	router   chi.Router

	mu sync.Mutex // guards shell

	connMu      sync.RWMutex
	connections map[*Connection]bool
}

// NewServer creates a server for the shell. The table is used by the
// split endpoint.
func NewServer(shell *casino.Shell, table *chips.Table, logger *log.Logger) *Server {
	s := &Server{
		shell:  shell,
		table:  table,
		logger: logger.WithPrefix("remote"),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         60 * 15,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/ws", s.handleWebSocket)
	r.Route("/api", func(rr chi.Router) {
		rr.Get("/state", s.handleState)
		rr.Get("/split", s.handleSplit)
	})
	return r
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down server")
		s.closeConnections()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// apply runs fn against the shell and pushes the new state to every client.
// The broadcast happens under the lock so clients see states in mutation
// order.
func (s *Server) apply(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn()
	s.broadcast(s.shell.Snapshot())
	return err
}

func (s *Server) snapshot() casino.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Snapshot()
}

func (s *Server) statusText(err error) string {
	return bets.StatusText(err)
}

func (s *Server) broadcast(snap casino.Snapshot) {
	msg, err := NewMessage(MessageTypeState, snap)
	if err != nil {
		s.logger.Error("Failed to encode state", "error", err)
		return
	}

	s.connMu.RLock()
	defer s.connMu.RUnlock()
	for conn := range s.connections {
		_ = conn.SendMessage(msg)
	}
}

func (s *Server) register(conn *Connection) {
	s.connMu.Lock()
	s.connections[conn] = true
	total := len(s.connections)
	s.connMu.Unlock()
	s.logger.Info("Client connected", "total", total)
}

func (s *Server) unregister(conn *Connection) {
	s.connMu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.connMu.Unlock()
	s.logger.Info("Client disconnected", "total", total)
}

func (s *Server) closeConnections() {
	s.connMu.RLock()
	defer s.connMu.RUnlock()
	for conn := range s.connections {
		_ = conn.Close()
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(ws, s)

	// register and queue the first state together so no broadcast can
	// slip in ahead of it
	s.mu.Lock()
	s.register(conn)
	if msg, err := NewMessage(MessageTypeState, s.shell.Snapshot()); err == nil {
		_ = conn.SendMessage(msg)
	}
	s.mu.Unlock()
	conn.Start()

	go func() {
		<-conn.Done()
		s.unregister(conn)
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.Atoi(r.URL.Query().Get("amount"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorData{Code: "invalid_amount", Message: "amount must be a whole number"})
		return
	}

	ledger := chips.NewLedger(s.table)
	if err := s.table.Split(amount, ledger); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, chips.ErrNegativeAmount) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, ErrorData{Code: "split_failed", Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, SplitResponse{
		Amount: amount,
		Chips:  ledger.Chips(),
		Stacks: s.table.Stacks(ledger, false),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
