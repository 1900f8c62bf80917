// Package promhook implements resolvex.Hooks as prometheus counters.
package promhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/unkn0wn-root/resolvex"
)

type Hooks struct {
	storeFaults   *prometheus.CounterVec
	selfHeals     prometheus.Counter
	storeRejected prometheus.Counter
}

var _ resolvex.Hooks = (*Hooks)(nil)

// New registers the hook counters with reg. Pass
// prometheus.DefaultRegisterer for the usual global registry.
func New(reg prometheus.Registerer) *Hooks {
	f := promauto.With(reg)
	return &Hooks{
		storeFaults: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resolvex_store_faults_total",
				Help: "Errors absorbed by cache backends instead of surfacing",
			},
			[]string{"operation"}, // "lookup", "store", "delete"
		),
		selfHeals: f.NewCounter(
			prometheus.CounterOpts{
				Name: "resolvex_self_heals_total",
				Help: "Corrupt or undecodable entries deleted on read",
			},
		),
		storeRejected: f.NewCounter(
			prometheus.CounterOpts{
				Name: "resolvex_store_rejected_total",
				Help: "Writes rejected by the backend under pressure",
			},
		),
	}
}

func (h *Hooks) StoreFault(_ string, op string, _ error) {
	h.storeFaults.WithLabelValues(op).Inc()
}

func (h *Hooks) SelfHeal(string, string) { h.selfHeals.Inc() }

func (h *Hooks) StoreRejected(string) { h.storeRejected.Inc() }
