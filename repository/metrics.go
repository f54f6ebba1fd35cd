package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "vaulting_sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})

func observe(query string, start time.Time) {
	queryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}
