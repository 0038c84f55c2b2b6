package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is what the parking service reports to. Nop satisfies it for
// tests and for the CLI.
type Recorder interface {
	MessageComposed(zone, duration, platform string)
	SnapshotFallback()
	SessionExpired()
}

// Prom records parking activity in Prometheus metrics.
type Prom struct {
	composed  *prometheus.CounterVec
	fallbacks prometheus.Counter
	expired   prometheus.Counter
}

var _ Recorder = (*Prom)(nil)

// NewProm registers parking metrics on reg (the default registerer when nil).
// Collectors that are already registered are reused.
func NewProm(reg prometheus.Registerer) (*Prom, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	composed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_sms_composed_total",
		Help: "Total number of confirmed SMS sends",
	}, []string{"zone", "duration", "platform"})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parking_snapshot_fallbacks_total",
		Help: "Snapshots that could not be decoded and were replaced by the default state",
	})
	expired := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parking_sessions_expired_total",
		Help: "Sessions the watcher has seen expire",
	})

	if err := reg.Register(composed); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		composed = are.ExistingCollector.(*prometheus.CounterVec)
	}
	var err error
	if fallbacks, err = registerCounter(reg, fallbacks); err != nil {
		return nil, err
	}
	if expired, err = registerCounter(reg, expired); err != nil {
		return nil, err
	}

	return &Prom{composed: composed, fallbacks: fallbacks, expired: expired}, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter), nil
		}
		return nil, err
	}
	return c, nil
}

func (p *Prom) MessageComposed(zone, duration, platform string) {
	p.composed.WithLabelValues(zone, duration, platform).Inc()
}

func (p *Prom) SnapshotFallback() { p.fallbacks.Inc() }

func (p *Prom) SessionExpired() { p.expired.Inc() }

// Nop discards everything.
type Nop struct{}

func (Nop) MessageComposed(string, string, string) {}
func (Nop) SnapshotFallback()                      {}
func (Nop) SessionExpired()                        {}
