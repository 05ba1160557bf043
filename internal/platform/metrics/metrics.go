package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request and attendance counters with atomics; Snapshot is
// safe to call from the metrics endpoint while traffic is flowing.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	checkIns        uint64
	checkInRejects  uint64
	checkOuts       uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordCheckIn(accepted bool) {
	if accepted {
		atomic.AddUint64(&c.checkIns, 1)
		return
	}
	atomic.AddUint64(&c.checkInRejects, 1)
}

func (c *Collector) RecordCheckOut() {
	atomic.AddUint64(&c.checkOuts, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      atomic.LoadUint64(&c.errorRequests),
		"rateLimitedTotal": atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":    avg,
		"checkInsTotal":    atomic.LoadUint64(&c.checkIns),
		"checkInRejects":   atomic.LoadUint64(&c.checkInRejects),
		"checkOutsTotal":   atomic.LoadUint64(&c.checkOuts),
	}
}
