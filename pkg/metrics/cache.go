package metrics

import "github.com/prometheus/client_golang/prometheus"

// MethodsCacheLookups counts availability lookups by result: hit, miss, soft_fail or rejected.
var MethodsCacheLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "methods_cache",
		Name:      "lookups_total",
		Help:      "Payment methods cache lookups by result",
	},
	[]string{"result"},
)

func init() {
	Registry.MustRegister(MethodsCacheLookups)
}
