package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/tickets", "POST", 201, 2*time.Millisecond)
	m.RecordRequest("/tickets", "POST", 201, 4*time.Millisecond)
	m.RecordError("/tickets", "POST", "INVALID_TICKET")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/tickets|POST|201"])
	assert.Equal(t, int64(1), snap.Errors["/tickets|POST|INVALID_TICKET"])
	assert.InDelta(t, 3.0, snap.AvgLatencyMS["/tickets|POST|201"], 0.001)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}
