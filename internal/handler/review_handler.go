package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/bestcars/internal/middleware"
	"github.com/hitoshi/bestcars/internal/model"
	"github.com/hitoshi/bestcars/internal/review"
	"github.com/hitoshi/bestcars/internal/sentiment"
)

// ReviewServiceInterface はレビューハンドラーが必要とするサービスインターフェース。
type ReviewServiceInterface interface {
	// ListByDealer は指定販売店のレビューを新しい順で返す。
	// 販売店が存在しない場合はreview.ErrDealerNotFoundを返す。
	ListByDealer(ctx context.Context, dealerID int64) ([]model.Review, error)
	// Add は認証済みユーザーのレビューを作成する。
	Add(ctx context.Context, user *model.User, params review.AddParams) (*model.Review, error)
}

// AnalysisMetricsRecorder は感情分析APIの実行記録に必要なインターフェース。
type AnalysisMetricsRecorder interface {
	RecordSentimentAnalysis(sentiment string)
}

// ReviewHandler はレビュー参照・作成と感情分析のHTTPハンドラー。
type ReviewHandler struct {
	service ReviewServiceInterface
	seeder  Seeder
	metrics AnalysisMetricsRecorder
}

// NewReviewHandler はReviewHandlerを生成する。metricsはnilでもよい。
func NewReviewHandler(service ReviewServiceInterface, seeder Seeder, metrics AnalysisMetricsRecorder) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		seeder:  seeder,
		metrics: metrics,
	}
}

// ListByDealer は指定販売店のレビュー一覧を返す。
// GET /reviews/dealer/{id}
func (h *ReviewHandler) ListByDealer(w http.ResponseWriter, r *http.Request) {
	if !ensureSeeded(w, r, h.seeder) {
		return
	}

	dealerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeStatusMessage(w, http.StatusNotFound, "Dealer not found")
		return
	}

	reviews, err := h.service.ListByDealer(r.Context(), dealerID)
	if err != nil {
		if errors.Is(err, review.ErrDealerNotFound) {
			writeStatusMessage(w, http.StatusNotFound, "Dealer not found")
			return
		}
		writeStatusMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]reviewResponse, len(reviews))
	for i, rv := range reviews {
		resp[i] = toReviewResponse(rv)
	}
	writeJSON(w, reviewListResponse{Status: http.StatusOK, Reviews: resp})
}

// addReviewRequest はレビュー作成リクエストのボディ。キーは旧API互換。
type addReviewRequest struct {
	Dealership   int64  `json:"dealership"`
	Review       string `json:"review"`
	Purchase     bool   `json:"purchase"`
	PurchaseDate string `json:"purchase_date"`
	CarMake      string `json:"car_make"`
	CarModel     string `json:"car_model"`
	CarYear      *int   `json:"car_year"`
}

// Add はレビューを作成する。認証済みの呼び出し元のみ許可する。
// POST /add_review
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())
	if !caller.Authenticated() {
		writeStatusMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatusMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	rv, err := h.service.Add(r.Context(), caller.User, review.AddParams{
		DealerID:     req.Dealership,
		Text:         req.Review,
		Purchase:     req.Purchase,
		PurchaseDate: req.PurchaseDate,
		CarMake:      req.CarMake,
		CarModel:     req.CarModel,
		CarYear:      req.CarYear,
	})
	if err != nil {
		if errors.Is(err, review.ErrDealerNotFound) {
			writeStatusMessage(w, http.StatusNotFound, "Dealer not found")
			return
		}
		writeStatusMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, reviewDetailResponse{Status: http.StatusOK, Review: toReviewResponse(*rv)})
}

// analyzeResponse は感情分析APIのレスポンス。
type analyzeResponse struct {
	Status    int    `json:"status"`
	Sentiment string `json:"sentiment"`
	Text      string `json:"text"`
}

// Analyze は任意のテキストの感情を分類して返す。
// GET /analyze_review?text=...
func (h *ReviewHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		writeStatusMessage(w, http.StatusBadRequest, "No text provided")
		return
	}

	label := sentiment.Classify(text)
	if h.metrics != nil {
		h.metrics.RecordSentimentAnalysis(string(label))
	}

	writeJSON(w, analyzeResponse{
		Status:    http.StatusOK,
		Sentiment: string(label),
		Text:      text,
	})
}
