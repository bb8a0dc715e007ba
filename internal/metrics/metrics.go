package metrics

import (
	"sync"
)

// Metrics counts request outcomes for the lifetime of the process. It is
// safe for concurrent use; handlers only ever add to it.
type Metrics struct {
	mu sync.RWMutex

	totalRequests int64
	staticHits    int64
	indexHits     int64
	notFound      int64
	errors        int64
}

func (m *Metrics) add(counter *int64) {
	m.mu.Lock()
	*counter++
	m.mu.Unlock()
}

// NewMetrics returns zeroed counters
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncrementTotalRequests is called once per request, whatever its outcome
func (m *Metrics) IncrementTotalRequests() {
	m.add(&m.totalRequests)
}

// IncrementStaticHits counts a file served from the static directory
func (m *Metrics) IncrementStaticHits() {
	m.add(&m.staticHits)
}

func (m *Metrics) IncrementIndexHits() {
	m.add(&m.indexHits)
}

// IncrementNotFound counts 404 responses, traversal rejections included
func (m *Metrics) IncrementNotFound() {
	m.add(&m.notFound)
}

// IncrementErrors counts 500 responses
func (m *Metrics) IncrementErrors() {
	m.add(&m.errors)
}

// GetSnapshot copies the counters into a map keyed by snake_case name, ready
// for logging
func (m *Metrics) GetSnapshot() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]int64{
		"total_requests": m.totalRequests,
		"static_hits":    m.staticHits,
		"index_hits":     m.indexHits,
		"not_found":      m.notFound,
		"errors":         m.errors,
	}
}
