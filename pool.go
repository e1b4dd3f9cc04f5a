package bizarromath

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// poolAlignment is the multiple of limbs every pooled buffer's capacity is
// rounded up to, per spec 4.C.
const poolAlignment = 8

// Pool is a size-keyed free-list of limb buffers. get/return are safe for
// concurrent use (a mutex around the free-list map); a buffer itself is
// not safe to use from more than one goroutine while lent out. This is the
// "explicit thread-safe singleton" option recorded in DESIGN.md's
// package-singleton pool decision, exposed as a constructible type so callers who need an isolated
// pool (e.g. per-benchmark-run in tests) are not forced to share the
// package default.
type Pool struct {
	mu   sync.Mutex
	free map[int][]limbs

	// idleLimbs is the live sum of len() across every buffer currently
	// resident in free, i.e. spec 4.C's "peak_memory" source value; put
	// raises the gauge below whenever it reaches a new high-water mark.
	idleLimbs int

	hits         prometheus.Counter
	misses       prometheus.Counter
	peakMemory   prometheus.Gauge
	strategyTime *prometheus.CounterVec
}

// NewPool builds an independent buffer pool with its own Prometheus
// collectors registered under the given namespace (empty namespace is
// fine; Prometheus collectors from two pools with the same namespace must
// not share a registry).
func NewPool(namespace string) *Pool {
	p := &Pool{free: make(map[int][]limbs)}
	p.hits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "pool", Name: "block_hits_total",
		Help: "Buffer requests satisfied from the free list.",
	})
	p.misses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "pool", Name: "cache_misses_total",
		Help: "Buffer requests that required a fresh allocation.",
	})
	p.peakMemory = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: "pool", Name: "peak_memory_limbs",
		Help: "High-water mark of limbs resident in the idle free list.",
	})
	p.strategyTime = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "mul", Name: "strategy_seconds_total",
		Help: "Cumulative wall-clock time spent in each multiplier strategy.",
	}, []string{"strategy"})
	return p
}

// Collectors returns the pool's Prometheus collectors for registration,
// e.g. registry.MustRegister(pool.Collectors()...).
func (p *Pool) Collectors() []prometheus.Collector {
	return []prometheus.Collector{p.hits, p.misses, p.peakMemory, p.strategyTime}
}

func alignedSize(n int) int {
	if n <= 0 {
		return poolAlignment
	}
	return ((n + poolAlignment - 1) / poolAlignment) * poolAlignment
}

// get returns a zeroed buffer of at least n limbs capacity, recording a
// hit or a miss.
func (p *Pool) get(n int) limbs {
	size := alignedSize(n)
	p.mu.Lock()
	stack := p.free[size]
	if len(stack) > 0 {
		buf := stack[len(stack)-1]
		p.free[size] = stack[:len(stack)-1]
		p.idleLimbs -= size
		p.mu.Unlock()
		p.hits.Inc()
		for i := range buf {
			buf[i] = 0
		}
		return buf
	}
	p.mu.Unlock()
	p.misses.Inc()
	return make(limbs, size)
}

// put returns buf to the free list, keyed by its capacity (already an
// aligned size since every buffer originated from get).
func (p *Pool) put(buf limbs) {
	size := cap(buf)
	p.mu.Lock()
	p.free[size] = append(p.free[size], buf[:size])
	p.idleLimbs += size
	if p.idleLimbs > 0 {
		cur, _ := extractGaugeValue(p.peakMemory)
		if float64(p.idleLimbs) > cur {
			p.peakMemory.Set(float64(p.idleLimbs))
		}
	}
	p.mu.Unlock()
}

// recordStrategyTime adds elapsed seconds to the named strategy's
// cumulative timer (schoolbook, karatsuba or toom3).
func (p *Pool) recordStrategyTime(strategy string, seconds float64) {
	p.strategyTime.WithLabelValues(strategy).Add(seconds)
}

// Stats is a point-in-time snapshot of the pool's counters, used by tests
// and by the bench CLI; Prometheus counters don't expose a cheap read API
// so this re-derives the same numbers via the DTO path.
type Stats struct {
	BlockHits   uint64
	CacheMisses uint64
	PeakMemory  uint64
}

func (p *Pool) Stats() Stats {
	return Stats{
		BlockHits:   counterValue(p.hits),
		CacheMisses: counterValue(p.misses),
		PeakMemory:  uint64(gaugeValue(p.peakMemory)),
	}
}

var (
	defaultPoolOnce sync.Once
	defaultPoolVal  *Pool
)

// defaultPool is the package-wide singleton used by every BigNumber/
// Rational/Multiplier operation that does not thread an explicit *Pool
// through construction, per DESIGN.md's "explicit thread-safe
// singleton" choice.
func defaultPool() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPoolVal = NewPool("bizarromath")
	})
	return defaultPoolVal
}

// DefaultPool exposes the package singleton pool so callers can register
// its collectors or inspect its Stats without constructing their own.
func DefaultPool() *Pool {
	return defaultPool()
}
