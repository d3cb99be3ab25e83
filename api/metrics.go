package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	verdictValid     = "valid"
	verdictInvalid   = "invalid"
	verdictMalformed = "malformed"
)

var (
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "battleship",
		Name:      "validations_total",
		Help:      "Number of validated boards by verdict",
	}, []string{"verdict"})

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "battleship",
		Name:      "sessions_active",
		Help:      "Number of open websocket sessions",
	})
)

func observeVerdict(valid bool) {
	if valid {
		validationsTotal.WithLabelValues(verdictValid).Inc()
		return
	}
	validationsTotal.WithLabelValues(verdictInvalid).Inc()
}
