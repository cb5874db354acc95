package source

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/kgcore/kgcore/pkg/model"
	"github.com/kgcore/kgcore/pkg/utils"
)

func init() {
	Register(SourceTypeHTTP, NewHTTPSource)
}

// HTTPOptions holds HTTP source specific configuration.
type HTTPOptions struct {
	// ListenAddr is the address to listen on (e.g., ":8080").
	ListenAddr string

	// Path is the HTTP path for receiving query requests.
	Path string

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration

	// MaxBodySize is the maximum allowed request body size in bytes.
	MaxBodySize int64
}

// DefaultHTTPOptions returns the default options.
func DefaultHTTPOptions() *HTTPOptions {
	return &HTTPOptions{
		ListenAddr:   ":8080",
		Path:         "/queries",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxBodySize:  1 << 20, // 1MB
	}
}

// HTTPQueryRequest represents an incoming query submission. Queries is a
// batch so a single HTTP round-trip can submit an entire (k,g) sweep.
type HTTPQueryRequest struct {
	Queries  []model.QueryRequest `json:"queries"`
	Priority int                  `json:"priority,omitempty"`
	Metadata map[string]string    `json:"metadata,omitempty"`
}

// HTTPQueryResponse represents the response for a query submission.
type HTTPQueryResponse struct {
	Success  bool   `json:"success"`
	Accepted int    `json:"accepted,omitempty"`
	Message  string `json:"message,omitempty"`
}

// HTTPSource implements QuerySource for HTTP-submitted query batches.
type HTTPSource struct {
	name    string
	options *HTTPOptions
	logger  utils.Logger

	server    *http.Server
	eventChan chan *QueryEvent
	stopCh    chan struct{}

	mu      sync.RWMutex
	running bool
}

// NewHTTPSource creates a new HTTP source from configuration.
func NewHTTPSource(cfg *SourceConfig) (QuerySource, error) {
	opts := &HTTPOptions{
		ListenAddr:   cfg.GetString("listen_addr", ":8080"),
		Path:         cfg.GetString("path", "/queries"),
		ReadTimeout:  cfg.GetDuration("read_timeout", 30*time.Second),
		WriteTimeout: cfg.GetDuration("write_timeout", 30*time.Second),
		MaxBodySize:  int64(cfg.GetInt("max_body_size", 1<<20)),
	}

	return &HTTPSource{
		name:      cfg.Name,
		options:   opts,
		eventChan: make(chan *QueryEvent, 100),
		stopCh:    make(chan struct{}),
	}, nil
}

// NewHTTPSourceWithOptions creates a new HTTP source with explicit options.
func NewHTTPSourceWithOptions(name string, opts *HTTPOptions, logger utils.Logger) *HTTPSource {
	if opts == nil {
		opts = DefaultHTTPOptions()
	}
	if logger == nil {
		logger = utils.NewDefaultLogger(utils.LevelInfo, nil)
	}

	return &HTTPSource{
		name:      name,
		options:   opts,
		logger:    logger,
		eventChan: make(chan *QueryEvent, 100),
		stopCh:    make(chan struct{}),
	}
}

// SetLogger sets the logger.
func (s *HTTPSource) SetLogger(logger utils.Logger) {
	s.logger = logger
}

// Type returns the source type.
func (s *HTTPSource) Type() SourceType {
	return SourceTypeHTTP
}

// Name returns the source instance name.
func (s *HTTPSource) Name() string {
	return s.name
}

// Start starts the HTTP server.
func (s *HTTPSource) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc(s.options.Path, s.handleQuery)
	mux.HandleFunc("/health", s.handleHealth)

	s.server = &http.Server{
		Addr:         s.options.ListenAddr,
		Handler:      mux,
		ReadTimeout:  s.options.ReadTimeout,
		WriteTimeout: s.options.WriteTimeout,
	}

	if s.logger != nil {
		s.logger.Info("HTTP source %s starting on %s%s", s.name, s.options.ListenAddr, s.options.Path)
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Error("HTTP source %s server error: %v", s.name, err)
			}
		}
	}()

	return nil
}

// Stop stops the HTTP server.
func (s *HTTPSource) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}

	return nil
}

// Events returns the query event channel.
func (s *HTTPSource) Events() <-chan *QueryEvent {
	return s.eventChan
}

// Ack acknowledges a query has been resolved. HTTP is synchronous so this is
// a no-op; the response was already sent when the request was admitted.
func (s *HTTPSource) Ack(ctx context.Context, event *QueryEvent) error {
	if s.logger != nil {
		s.logger.Debug("HTTP source %s acked query %s", s.name, event.ID)
	}
	return nil
}

// Nack indicates a query failed to resolve.
func (s *HTTPSource) Nack(ctx context.Context, event *QueryEvent, reason string) error {
	if s.logger != nil {
		s.logger.Warn("HTTP source %s nacked query %s: %s", s.name, event.ID, reason)
	}
	return nil
}

// HealthCheck checks if the HTTP server is running.
func (s *HTTPSource) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	running := s.running
	s.mu.RUnlock()

	if !running {
		return fmt.Errorf("HTTP source %s is not running", s.name)
	}
	return nil
}

// handleQuery handles incoming query batch submissions.
func (s *HTTPSource) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.sendError(w, http.StatusMethodNotAllowed, "only POST method is allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.options.MaxBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req HTTPQueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if len(req.Queries) == 0 {
		s.sendError(w, http.StatusBadRequest, "at least one query is required")
		return
	}

	accepted := 0
	for _, qr := range req.Queries {
		event := NewQueryEvent(qr, SourceTypeHTTP, s.name)
		event.ID = newEventID()
		if req.Priority > 0 {
			event.Priority = req.Priority
		}
		for k, v := range req.Metadata {
			event.WithMetadata(k, v)
		}

		select {
		case s.eventChan <- event:
			accepted++
		default:
			s.sendError(w, http.StatusServiceUnavailable, "query queue is full")
			return
		}
	}

	if s.logger != nil {
		s.logger.Debug("HTTP source %s accepted %d queries", s.name, accepted)
	}
	s.sendSuccess(w, accepted, "queries accepted")
}

// handleHealth handles health check requests.
func (s *HTTPSource) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "healthy",
		"source": s.name,
		"type":   string(SourceTypeHTTP),
	})
}

// sendError sends an error response.
func (s *HTTPSource) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(HTTPQueryResponse{
		Success: false,
		Message: message,
	})
}

// sendSuccess sends a success response.
func (s *HTTPSource) sendSuccess(w http.ResponseWriter, accepted int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(HTTPQueryResponse{
		Success:  true,
		Accepted: accepted,
		Message:  message,
	})
}

func newEventID() string {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	return hex.EncodeToString(buf[:])
}
