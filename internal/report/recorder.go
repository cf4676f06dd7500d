package report

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// Recorder keeps emissions in memory. With a positive limit only the most
// recent limit entries of each kind are retained.
type Recorder struct {
	mu     sync.RWMutex
	limit  int
	events []domain.Event
	checks []domain.ServiceCheck
	gauges []domain.Gauge
}

func NewRecorder(limit int) *Recorder {
	if limit < 0 {
		limit = 0
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) EmitEvent(ctx context.Context, e domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = trim(append(r.events, e), r.limit)
	return nil
}

func (r *Recorder) EmitServiceCheck(ctx context.Context, sc domain.ServiceCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = trim(append(r.checks, sc), r.limit)
	return nil
}

func (r *Recorder) EmitGauge(ctx context.Context, g domain.Gauge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gauges = trim(append(r.gauges, g), r.limit)
	return nil
}

func (r *Recorder) Events() []domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Event(nil), r.events...)
}

func (r *Recorder) ServiceChecks() []domain.ServiceCheck {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.ServiceCheck(nil), r.checks...)
}

func (r *Recorder) Gauges() []domain.Gauge {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Gauge(nil), r.gauges...)
}

// LatestChecks returns the last service check per name and tag set, sorted
// by series key.
func (r *Recorder) LatestChecks() []domain.ServiceCheck {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[string]domain.ServiceCheck)
	for _, sc := range r.checks {
		latest[SeriesKey(sc.Name, sc.Tags)] = sc
	}
	keys := sortedKeys(latest)
	out := make([]domain.ServiceCheck, 0, len(keys))
	for _, k := range keys {
		out = append(out, latest[k])
	}
	return out
}

// LatestGauges returns the last sample per gauge name and tag set.
func (r *Recorder) LatestGauges() []domain.Gauge {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := make(map[string]domain.Gauge)
	for _, g := range r.gauges {
		latest[SeriesKey(g.Name, g.Tags)] = g
	}
	keys := sortedKeys(latest)
	out := make([]domain.Gauge, 0, len(keys))
	for _, k := range keys {
		out = append(out, latest[k])
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events, r.checks, r.gauges = nil, nil, nil
}

// SeriesKey identifies a metric series independent of tag order.
func SeriesKey(name string, tags []string) string {
	return name + "|" + JoinTags(tags)
}

// JoinTags renders tags as a sorted, comma separated string.
func JoinTags(tags []string) string {
	cp := append([]string(nil), tags...)
	sort.Strings(cp)
	return strings.Join(cp, ",")
}

func trim[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return append(s[:0:0], s[len(s)-limit:]...)
	}
	return s
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ Reporter = (*Recorder)(nil)
