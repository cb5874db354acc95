package source

import (
	"github.com/kgcore/kgcore/pkg/model"
)

// QueryEvent wraps a QueryRequest with the provenance and bookkeeping the
// scheduler needs to route, prioritize, and acknowledge it.
type QueryEvent struct {
	ID         string
	Request    model.QueryRequest
	SourceType SourceType
	SourceName string
	Priority   int
	Metadata   map[string]string
	AckToken   interface{}
}

// highPriorityGMax is the ceiling at or below which a query is considered cheap
// enough to jump the queue ahead of deep-g requests.
const highPriorityGMax = 2

// NewQueryEvent builds a QueryEvent from a request, assigning priority by
// how shallow the requested g level is — shallow (k,g) queries resolve
// against small prefix slices of the index and are cheap to admit first.
func NewQueryEvent(req model.QueryRequest, sourceType SourceType, sourceName string) *QueryEvent {
	priority := 0
	if req.G <= highPriorityGMax {
		priority = 1
	}
	return &QueryEvent{
		Request:    req,
		SourceType: sourceType,
		SourceName: sourceName,
		Priority:   priority,
		Metadata:   make(map[string]string),
	}
}

// WithMetadata attaches a metadata key/value and returns the event for chaining.
func (e *QueryEvent) WithMetadata(key, value string) *QueryEvent {
	e.Metadata[key] = value
	return e
}

// WithAckToken attaches a source-specific acknowledgement token.
func (e *QueryEvent) WithAckToken(token interface{}) *QueryEvent {
	e.AckToken = token
	return e
}

// GetMetadata returns a metadata value, or "" if absent.
func (e *QueryEvent) GetMetadata(key string) string {
	return e.Metadata[key]
}
