// Package instrument provides ready-made hooks for timing cipher phases.
package instrument

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/drjonah/applications-of-aes/pkg/aes"
)

// Stats are the cumulative figures for one phase.
type Stats struct {
	Count int
	Total time.Duration
	Max   time.Duration
}

// Timer times every phase it is hooked into, logs one record per phase
// at debug level and keeps running totals. A Timer may be shared by
// several ciphers and goroutines.
type Timer struct {
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	stats map[aes.Phase]Stats
}

// NewTimer returns a Timer logging to logger, or to slog.Default() when
// logger is nil.
func NewTimer(logger *slog.Logger) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Timer{
		logger: logger,
		now:    time.Now,
		stats:  make(map[aes.Phase]Stats),
	}
}

// Hook returns the aes.Hook to pass to aes.WithHook.
func (t *Timer) Hook() aes.Hook {
	return func(p aes.Phase) func() {
		start := t.now()
		return func() {
			t.record(p, t.now().Sub(start))
		}
	}
}

func (t *Timer) record(p aes.Phase, elapsed time.Duration) {
	t.mu.Lock()
	s := t.stats[p]
	s.Count++
	s.Total += elapsed
	if elapsed > s.Max {
		s.Max = elapsed
	}
	t.stats[p] = s
	t.mu.Unlock()

	t.logger.Debug("aes phase finished", "phase", p.String(), "elapsed", elapsed)
}

// Stats returns a copy of the totals gathered so far.
func (t *Timer) Stats() map[aes.Phase]Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[aes.Phase]Stats, len(t.stats))
	for p, s := range t.stats {
		out[p] = s
	}
	return out
}

// Reset clears the totals.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.stats = make(map[aes.Phase]Stats)
	t.mu.Unlock()
}

// Report logs the totals at info level, one record per phase in phase
// order. Each record carries whether the CPU has AES instructions, which
// the standard library would use and this package never does.
func (t *Timer) Report() {
	stats := t.Stats()
	phases := make([]aes.Phase, 0, len(stats))
	for p := range stats {
		phases = append(phases, p)
	}
	sort.Slice(phases, func(i, j int) bool { return phases[i] < phases[j] })

	hw := HardwareAES()
	for _, p := range phases {
		s := stats[p]
		var mean time.Duration
		if s.Count > 0 {
			mean = s.Total / time.Duration(s.Count)
		}
		t.logger.Info("aes phase totals",
			"phase", p.String(),
			"count", s.Count,
			"total", s.Total,
			"mean", mean,
			"max", s.Max,
			"hw_aes", hw,
		)
	}
}

// HardwareAES is the hw_aes attribute of Report: whether this CPU has the
// AES instructions crypto/aes would use instead of pure Go.
func HardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}
