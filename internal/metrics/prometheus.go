package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuestionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edu_assistant_question_duration_seconds",
			Help:    "Question processing duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	QuestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edu_assistant_questions_total",
			Help: "Total number of questions processed",
		},
		[]string{"status"},
	)

	SubjectDetected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edu_assistant_subject_detected_total",
			Help: "Detected subjects across questions",
		},
		[]string{"subject"},
	)

	QuestionTypeDetected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edu_assistant_question_type_total",
			Help: "Detected question types across questions",
		},
		[]string{"type"},
	)

	ConfidenceScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edu_assistant_confidence_score",
			Help:    "Response confidence scores",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	RankedResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edu_assistant_ranked_results_count",
			Help:    "Number of ranked matches per question",
			Buckets: []float64{0, 1, 2, 3, 5},
		},
	)

	FallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "edu_assistant_fallback_total",
			Help: "Questions answered through the fallback path",
		},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "edu_assistant_cache_hits_total",
			Help: "Answer cache hits",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "edu_assistant_cache_misses_total",
			Help: "Answer cache misses",
		},
	)

	FeedbackRating = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edu_assistant_feedback_rating",
			Help:    "Submitted feedback ratings",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	KnowledgeEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "edu_assistant_knowledge_entries",
			Help: "Knowledge entries in the store",
		},
	)
)

func Init() {
	prometheus.MustRegister(QuestionDuration)
	prometheus.MustRegister(QuestionsTotal)
	prometheus.MustRegister(SubjectDetected)
	prometheus.MustRegister(QuestionTypeDetected)
	prometheus.MustRegister(ConfidenceScore)
	prometheus.MustRegister(RankedResults)
	prometheus.MustRegister(FallbackTotal)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(FeedbackRating)
	prometheus.MustRegister(KnowledgeEntries)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
