// Package metric publishes expvar counters for transforms.
package metric

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const transformsLabel = "spiral.transforms"

const (
	// CallCounter measures number of transform calls.
	CallCounter = "Calls"
	// PixelCounter measures number of produced pixels.
	PixelCounter = "Pixels"
	// LatencyCounter measures duration of the latest call.
	LatencyCounter = "Latency"
	// DurationCounter measures total duration of all calls.
	DurationCounter = "Duration"
)

var (
	transforms = metrics{
		m: make(map[string]metric),
	}

	counters = []string{
		CallCounter,
		PixelCounter,
		LatencyCounter,
		DurationCounter,
	}
)

// Get metrics values for provided transform name.
func Get(name string) map[string]string {
	m := make(map[string]string)
	for _, counter := range counters {
		v := expvar.Get(key(name, counter))
		if v != nil {
			m[counter] = v.String()
		}
	}
	return m
}

// GetAll returns counters for all measured transforms.
func GetAll() map[string]map[string]string {
	m := make(map[string]map[string]string)
	transforms.Lock()
	defer transforms.Unlock()
	for name := range transforms.m {
		m[name] = Get(name)
	}
	return m
}

// ResetFunc returns new Measure closure. This closure is needed to postpone
// metrics capture until transform is actually called.
type ResetFunc func() MeasureFunc

// MeasureFunc captures metrics when transform call is done.
type MeasureFunc func(pixels int64)

// Meter creates new meter closure to capture transform counters.
func Meter(name string) ResetFunc {
	metric := transforms.get(name)
	return func() MeasureFunc {
		calledAt := time.Now()
		return func(pixels int64) {
			elapsed := time.Since(calledAt)
			metric.latency.set(elapsed)
			metric.duration.add(elapsed)
			metric.calls.Add(1)
			metric.pixels.Add(pixels)
		}
	}
}

type metrics struct {
	sync.Mutex
	m map[string]metric
}

func (m *metrics) get(name string) metric {
	m.Lock()
	defer m.Unlock()
	if metric, ok := m.m[name]; ok {
		return metric
	}
	metric := newMetric(name)
	m.m[name] = metric
	return metric
}

type metric struct {
	calls    *expvar.Int
	pixels   *expvar.Int
	latency  *duration
	duration *duration
}

func newMetric(name string) metric {
	m := metric{
		calls:    expvar.NewInt(key(name, CallCounter)),
		pixels:   expvar.NewInt(key(name, PixelCounter)),
		latency:  &duration{},
		duration: &duration{},
	}
	expvar.Publish(key(name, LatencyCounter), m.latency)
	expvar.Publish(key(name, DurationCounter), m.duration)
	return m
}

func key(name, counter string) string {
	return fmt.Sprintf("%s.%s.%s", transformsLabel, name, counter)
}

// duration allows to format time.Duration metric values.
type duration struct {
	d int64
}

func (v *duration) String() string {
	return fmt.Sprintf("%q", time.Duration(atomic.LoadInt64(&v.d)))
}

func (v *duration) add(delta time.Duration) {
	atomic.AddInt64(&v.d, int64(delta))
}

func (v *duration) set(value time.Duration) {
	atomic.StoreInt64(&v.d, int64(value))
}
