package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/bestcars/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	IdentityResolver  middleware.IdentityResolver
	CORSAllowedOrigin string
	Logger            *slog.Logger
	RequestMetrics    middleware.RequestMetricsRecorder

	// 運用系
	HealthChecker  HealthChecker
	MetricsHandler http.Handler

	// ドメイン
	Seeder          Seeder
	DealerService   DealerServiceInterface
	ReviewService   ReviewServiceInterface
	CarService      CarServiceInterface
	AnalysisMetrics AnalysisMetricsRecorder

	// 認証
	AuthService AuthServiceInterface
	AuthConfig  AuthHandlerConfig
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成した
// chi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → CORS → Identity → Logging → Metrics
//
// Identityは全ルートに匿名可のCallerIdentityを注入し、
// 認証の要否は各ハンドラーが判断する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewIdentityMiddleware(deps.IdentityResolver))
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.RequestMetrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.RequestMetrics))
	}

	// POST専用エンドポイントへの誤メソッドは、唯一トランスポートレベルで
	// 405を返すケースとなる（ボディは他と同じstatus/message形式）
	r.MethodNotAllowed(methodNotAllowedHandler)

	dealerHandler := NewDealerHandler(deps.DealerService, deps.Seeder)
	reviewHandler := NewReviewHandler(deps.ReviewService, deps.Seeder, deps.AnalysisMetrics)
	carHandler := NewCarHandler(deps.CarService, deps.Seeder)
	authHandler := NewAuthHandler(deps.AuthService, deps.AuthConfig)

	// --- 運用系 ---
	r.Get("/health", NewHealthHandler(deps.HealthChecker))
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// --- 販売店・レビュー・カタログ ---
	r.Get("/get_dealers", dealerHandler.List)
	r.Get("/get_dealers/{state}", dealerHandler.List)
	r.Get("/dealer/{id}", dealerHandler.Get)
	r.Get("/reviews/dealer/{id}", reviewHandler.ListByDealer)
	r.Post("/add_review", reviewHandler.Add)
	r.Get("/get_cars", carHandler.List)
	r.Get("/analyze_review", reviewHandler.Analyze)

	// --- 認証 ---
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)
	r.Post("/register", authHandler.Register)

	return r
}

// methodNotAllowedHandler は405をJSONボディ付きで返す。
func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	if err := json.NewEncoder(w).Encode(statusMessageResponse{
		Status:  http.StatusMethodNotAllowed,
		Message: "Method not allowed",
	}); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
