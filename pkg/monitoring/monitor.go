package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// ImportedQuestions 成功入库的题目数
	ImportedQuestions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questionbank_imported_questions_total",
			Help: "Total number of questions imported from docx files",
		},
		[]string{"source", "strategy"},
	)

	// ImportFailures 提取或入库失败的导入次数
	ImportFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questionbank_import_failures_total",
			Help: "Total number of failed docx imports",
		},
		[]string{"source", "stage"},
	)

	ParseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "questionbank_parse_duration_seconds",
			Help:    "Duration of docx text extraction and question parsing",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"strategy"},
	)

	// AnswerSubmissions 作答提交次数
	AnswerSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exercise_answer_submissions_total",
			Help: "Total number of submitted exercise answers",
		},
		[]string{"correct"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ImportedQuestions)
		prometheus.MustRegister(ImportFailures)
		prometheus.MustRegister(ParseDuration)
		prometheus.MustRegister(AnswerSubmissions)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
