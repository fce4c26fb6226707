// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラーやシーダーから利用する。
type MetricsCollector interface {
	RecordHTTPStatus(statusCode int)
	RecordRequestDuration(duration time.Duration)
	RecordReviewCreated(sentiment string)
	RecordSentimentAnalysis(sentiment string)
	RecordSeedRun()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpStatus        *prometheus.CounterVec
	requestDuration   prometheus.Histogram
	reviewsCreated    *prometheus.CounterVec
	sentimentAnalyses *prometheus.CounterVec
	seedRuns          prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bestcars_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bestcars_request_duration_seconds",
			Help:    "リクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		reviewsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bestcars_reviews_created_total",
			Help: "作成されたレビューの感情ラベル別の合計数",
		}, []string{"sentiment"}),
		sentimentAnalyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bestcars_sentiment_analyses_total",
			Help: "感情分析APIの実行回数（結果ラベル別）",
		}, []string{"sentiment"}),
		seedRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bestcars_seed_runs_total",
			Help: "サンプルデータの実投入回数（冪等no-opは含まない）",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestDuration,
		c.reviewsCreated,
		c.sentimentAnalyses,
		c.seedRuns,
	)

	return c
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

// RecordReviewCreated はレビュー作成を感情ラベル付きで記録する。
func (c *Collector) RecordReviewCreated(sentiment string) {
	c.reviewsCreated.WithLabelValues(sentiment).Inc()
}

// RecordSentimentAnalysis は感情分析APIの実行を記録する。
func (c *Collector) RecordSentimentAnalysis(sentiment string) {
	c.sentimentAnalyses.WithLabelValues(sentiment).Inc()
}

// RecordSeedRun はサンプルデータの実投入を記録する。
func (c *Collector) RecordSeedRun() {
	c.seedRuns.Inc()
}

// Handler は指定レジストリのメトリクスを公開するHTTPハンドラーを返す。
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ MetricsCollector = (*Collector)(nil)
