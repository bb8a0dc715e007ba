package metrics

import (
	"sync"
	"testing"
)

func TestMetrics_IncrementTotalRequests(t *testing.T) {
	m := NewMetrics()
	m.IncrementTotalRequests()

	snapshot := m.GetSnapshot()
	if snapshot["total_requests"] != 1 {
		t.Errorf("expected total_requests 1, got %d", snapshot["total_requests"])
	}
}

func TestMetrics_IncrementStaticHits(t *testing.T) {
	m := NewMetrics()
	m.IncrementStaticHits()

	snapshot := m.GetSnapshot()
	if snapshot["static_hits"] != 1 {
		t.Errorf("expected static_hits 1, got %d", snapshot["static_hits"])
	}
}

func TestMetrics_IncrementIndexHits(t *testing.T) {
	m := NewMetrics()
	m.IncrementIndexHits()

	snapshot := m.GetSnapshot()
	if snapshot["index_hits"] != 1 {
		t.Errorf("expected index_hits 1, got %d", snapshot["index_hits"])
	}
}

func TestMetrics_IncrementNotFound(t *testing.T) {
	m := NewMetrics()
	m.IncrementNotFound()

	snapshot := m.GetSnapshot()
	if snapshot["not_found"] != 1 {
		t.Errorf("expected not_found 1, got %d", snapshot["not_found"])
	}
}

func TestMetrics_IncrementErrors(t *testing.T) {
	m := NewMetrics()
	m.IncrementErrors()
	m.IncrementErrors()

	snapshot := m.GetSnapshot()
	if snapshot["errors"] != 2 {
		t.Errorf("expected errors 2, got %d", snapshot["errors"])
	}
	if snapshot["total_requests"] != 0 {
		t.Errorf("expected total_requests 0, got %d", snapshot["total_requests"])
	}
}

func TestMetrics_ConcurrentAccess(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrementTotalRequests()
			m.IncrementStaticHits()
			m.IncrementIndexHits()
			m.IncrementNotFound()
			m.IncrementErrors()
		}()
	}

	wg.Wait()

	snapshot := m.GetSnapshot()
	if snapshot["total_requests"] != 100 {
		t.Errorf("expected total_requests 100, got %d", snapshot["total_requests"])
	}
	if snapshot["errors"] != 100 {
		t.Errorf("expected errors 100, got %d", snapshot["errors"])
	}
}

func TestMetrics_GetSnapshot(t *testing.T) {
	m := NewMetrics()
	m.IncrementTotalRequests()
	m.IncrementTotalRequests()
	m.IncrementTotalRequests()
	m.IncrementStaticHits()
	m.IncrementIndexHits()
	m.IncrementNotFound()

	snapshot := m.GetSnapshot()

	expected := map[string]int64{
		"total_requests": 3,
		"static_hits":    1,
		"index_hits":     1,
		"not_found":      1,
		"errors":         0,
	}

	for key, expectedValue := range expected {
		if snapshot[key] != expectedValue {
			t.Errorf("expected %s %d, got %d", key, expectedValue, snapshot[key])
		}
	}
}
