// Package metrics holds the Prometheus collectors of the resume service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	ResultOK          = "ok"
	ResultClientError = "client_error"
	ResultError       = "error"
)

type Metrics struct {
	Saves   *prometheus.CounterVec
	Fetches *prometheus.CounterVec
	Renders *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume",
			Name:      "saves_total",
			Help:      "Resume save requests by result.",
		}, []string{"result"}),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume",
			Name:      "fetches_total",
			Help:      "Resume fetch requests by result.",
		}, []string{"result"}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume",
			Name:      "renders_total",
			Help:      "Rendered documents by template and output format.",
		}, []string{"template", "format"}),
	}
	reg.MustRegister(m.Saves, m.Fetches, m.Renders)
	return m
}
