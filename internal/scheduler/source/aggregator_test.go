package source

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgcore/kgcore/pkg/model"
	"github.com/kgcore/kgcore/pkg/utils"
)

// fakeSource is a minimal in-memory QuerySource used to exercise the
// Aggregator without a real network or broker dependency.
type fakeSource struct {
	typ       SourceType
	name      string
	eventChan chan *QueryEvent
	stopped   chan struct{}
	acked     []*QueryEvent
	nacked    []*QueryEvent
}

func newFakeSource(typ SourceType, name string) *fakeSource {
	return &fakeSource{
		typ:       typ,
		name:      name,
		eventChan: make(chan *QueryEvent, 10),
		stopped:   make(chan struct{}),
	}
}

func (f *fakeSource) Type() SourceType          { return f.typ }
func (f *fakeSource) Name() string              { return f.name }
func (f *fakeSource) Start(ctx context.Context) error { return nil }
func (f *fakeSource) Stop() error {
	close(f.stopped)
	return nil
}
func (f *fakeSource) Events() <-chan *QueryEvent { return f.eventChan }
func (f *fakeSource) Ack(ctx context.Context, e *QueryEvent) error {
	f.acked = append(f.acked, e)
	return nil
}
func (f *fakeSource) Nack(ctx context.Context, e *QueryEvent, reason string) error {
	f.nacked = append(f.nacked, e)
	return nil
}
func (f *fakeSource) HealthCheck(ctx context.Context) error { return nil }

func TestAggregatorForwardsEvents(t *testing.T) {
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	src := newFakeSource(SourceTypeHTTP, "primary")
	agg := NewAggregator([]QuerySource{src}, 10, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, agg.Start(ctx))

	event := NewQueryEvent(model.QueryRequest{K: 2, G: 1}, "", "")
	src.eventChan <- event

	select {
	case got := <-agg.Events():
		assert.Equal(t, SourceTypeHTTP, got.SourceType)
		assert.Equal(t, "primary", got.SourceName)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for forwarded event")
	}

	require.NoError(t, agg.Stop())
}

func TestAggregatorAckNackDelegation(t *testing.T) {
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	src := newFakeSource(SourceTypeHTTP, "primary")
	agg := NewAggregator([]QuerySource{src}, 10, logger)

	event := NewQueryEvent(model.QueryRequest{K: 1, G: 1}, SourceTypeHTTP, "primary")

	require.NoError(t, agg.Ack(context.Background(), event))
	require.NoError(t, agg.Nack(context.Background(), event, "boom"))

	assert.Len(t, src.acked, 1)
	assert.Len(t, src.nacked, 1)
}

func TestAggregatorSourcesAndCount(t *testing.T) {
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	a := newFakeSource(SourceTypeHTTP, "a")
	b := newFakeSource(SourceTypeKafka, "b")
	agg := NewAggregator([]QuerySource{a, b}, 10, logger)

	assert.Equal(t, 2, agg.SourceCount())
	assert.Equal(t, a, agg.GetSource(SourceTypeHTTP, "a"))
	assert.Nil(t, agg.GetSource(SourceTypeHTTP, "missing"))
}

func TestAggregatorHealthCheck(t *testing.T) {
	logger := utils.NewDefaultLogger(utils.LevelDebug, io.Discard)
	agg := NewAggregator([]QuerySource{newFakeSource(SourceTypeHTTP, "a")}, 10, logger)
	assert.NoError(t, agg.HealthCheck(context.Background()))
}
