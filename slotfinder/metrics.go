package slotfinder

import "github.com/prometheus/client_golang/prometheus"

func init() {
	prometheus.MustRegister(metrics_rpcRequestsByMethod)
	prometheus.MustRegister(metrics_rpcMethodToSuccessOrFailure)
	prometheus.MustRegister(metrics_rpcResponseTimeHistogram)
}

var metrics_rpcRequestsByMethod = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "slotfinder_rpc_requests_by_method",
		Help: "Upstream RPC requests by method",
	},
	[]string{"method"},
)

var metrics_rpcMethodToSuccessOrFailure = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "slotfinder_rpc_method_to_success_or_failure",
		Help: "Upstream RPC transport outcome by method",
	},
	[]string{"method", "status"},
)

var metrics_rpcResponseTimeHistogram = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "slotfinder_rpc_response_time_histogram",
		Help: "Upstream RPC response time by method",
	},
	[]string{"method"},
)
