package clients

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	apiRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistanat_api_requests_total",
		Help: "Requêtes émises vers l'API, par méthode et statut.",
	}, []string{"method", "status"})

	apiDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "assistanat_api_request_duration_seconds",
		Help:    "Durée des requêtes vers l'API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(apiRequests, apiDuration)
}

func observe(method string, resp *http.Response, err error, elapsed time.Duration) {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	apiRequests.WithLabelValues(method, status).Inc()
	apiDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
