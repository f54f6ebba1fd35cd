package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScoreSheetsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vaulting_scoresheets_submitted_total",
	Help: "The number of score sheets stored, by how they were stored",
}, []string{"source"})

var ScoreMismatches = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vaulting_score_mismatch_total",
	Help: "The number of score sheets rejected because front end and back end totals differ",
})

var FormulaUsage = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vaulting_formula_usage_total",
	Help: "The number of score sheets evaluated by each formula",
}, []string{"formula"})

var SyncOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vaulting_score_sync_total",
	Help: "The number of score synchronizations by outcome",
}, []string{"outcome"})

var AggregationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "vaulting_result_aggregation_duration_s",
	Help: "Duration of result aggregation by level",
	Buckets: []float64{
		0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5,
	},
}, []string{"level"})

var DroppedResults = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vaulting_results_dropped_total",
	Help: "The number of entries left out of a blended result because one side had no score",
}, []string{"level"})
