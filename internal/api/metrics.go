package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cookietrack_builds_total",
		Help: "Number of unification builds completed.",
	})

	buildFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cookietrack_build_failures_total",
		Help: "Number of unification builds that failed before producing a dataset.",
	})

	buildWarnings = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cookietrack_build_warnings",
		Help: "Warning count of the most recent build.",
	})

	scoutsResolved = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cookietrack_scouts_resolved",
		Help: "Resolved scout count of the most recent build.",
	})
)
