// Package source abstracts the places (k,g)-core query requests can arrive
// from — HTTP, a message broker, or any other strategy registered at init
// time — behind a single QuerySource interface that the scheduler fans in
// through an Aggregator.
package source

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SourceType identifies a query source strategy.
type SourceType string

const (
	SourceTypeHTTP  SourceType = "http"
	SourceTypeKafka SourceType = "kafka"
)

// QuerySource is implemented by every strategy that can feed query requests
// into the scheduler.
type QuerySource interface {
	// Type returns the source's strategy type.
	Type() SourceType

	// Name returns the source instance's configured name.
	Name() string

	// Start begins emitting events onto the channel returned by Events.
	// It must return promptly; emission happens on a background goroutine.
	Start(ctx context.Context) error

	// Stop halts emission and releases any held resources.
	Stop() error

	// Events returns the channel this source emits QueryEvents on.
	Events() <-chan *QueryEvent

	// Ack reports that an event was resolved successfully.
	Ack(ctx context.Context, event *QueryEvent) error

	// Nack reports that an event failed to resolve, with a reason.
	Nack(ctx context.Context, event *QueryEvent, reason string) error

	// HealthCheck reports whether the source is able to accept work.
	HealthCheck(ctx context.Context) error
}

// SourceConfig configures a single source instance. Options carries
// strategy-specific settings read via the typed getters below so that
// individual sources need not depend on a config decoding library.
type SourceConfig struct {
	Type    SourceType
	Name    string
	Enabled bool
	Options map[string]interface{}
}

// GetString returns a string option or def if absent or of the wrong type.
func (c *SourceConfig) GetString(key, def string) string {
	if v, ok := c.Options[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetInt returns an int option or def if absent or of the wrong type.
func (c *SourceConfig) GetInt(key string, def int) int {
	if v, ok := c.Options[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return def
}

// GetDuration returns a duration option or def if absent or of the wrong type.
func (c *SourceConfig) GetDuration(key string, def time.Duration) time.Duration {
	if v, ok := c.Options[key]; ok {
		switch d := v.(type) {
		case time.Duration:
			return d
		case string:
			if parsed, err := time.ParseDuration(d); err == nil {
				return parsed
			}
		}
	}
	return def
}

// GetBool returns a bool option or def if absent or of the wrong type.
func (c *SourceConfig) GetBool(key string, def bool) bool {
	if v, ok := c.Options[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// GetStringSlice returns a []string option or def if absent or of the wrong type.
func (c *SourceConfig) GetStringSlice(key string, def []string) []string {
	if v, ok := c.Options[key]; ok {
		if s, ok := v.([]string); ok {
			return s
		}
	}
	return def
}

// SourceCreator builds a QuerySource from a SourceConfig.
type SourceCreator func(cfg *SourceConfig) (QuerySource, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[SourceType]SourceCreator)
)

// Register adds a creator function for a source type. Intended to be called
// from package init functions.
func Register(t SourceType, creator SourceCreator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = creator
}

// IsRegistered reports whether a creator is registered for t.
func IsRegistered(t SourceType) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[t]
	return ok
}

// RegisteredTypes returns all currently registered source types.
func RegisteredTypes() []SourceType {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]SourceType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	return types
}

// CreateSource instantiates a single source from its configuration.
func CreateSource(cfg *SourceConfig) (QuerySource, error) {
	registryMu.RLock()
	creator, ok := registry[cfg.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("source: no creator registered for type %q", cfg.Type)
	}
	return creator(cfg)
}

// CreateSources instantiates every enabled config, skipping disabled ones.
func CreateSources(cfgs []*SourceConfig) ([]QuerySource, error) {
	sources := make([]QuerySource, 0, len(cfgs))
	for _, cfg := range cfgs {
		if !cfg.Enabled {
			continue
		}
		src, err := CreateSource(cfg)
		if err != nil {
			return nil, fmt.Errorf("source: creating %q: %w", cfg.Name, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}
