package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalysesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyses_started_total",
		Help: "Total resume analyses started",
	})

	AnalysesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyses_completed_total",
		Help: "Total resume analyses completed",
	})

	AnalysesFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analyses_failed_total",
		Help: "Total resume analyses failed",
	}, []string{"reason"})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Duration of the full ingest-score-persist pipeline",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	})

	ReportEmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_emails_sent_total",
		Help: "Total analysis report emails sent",
	})

	ReportEmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_emails_failed_total",
		Help: "Total analysis report emails that failed to send",
	})
)

// Handler exposes the Prometheus scrape endpoint as a gin handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
