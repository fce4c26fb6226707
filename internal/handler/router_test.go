package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/bestcars/internal/model"
	"github.com/hitoshi/bestcars/internal/repository"
)

func newTestRouter() http.Handler {
	return NewRouter(&RouterDeps{
		IdentityResolver:  &fakeIdentityResolver{},
		CORSAllowedOrigin: "http://localhost:3000",
		HealthChecker:     &fakeHealthChecker{},
		Seeder:            &fakeSeeder{},
		DealerService: &fakeDealerService{
			listDealersFunc: func(ctx context.Context, state string) ([]model.Dealer, error) {
				return []model.Dealer{{ID: 1, FullName: "Sunshine Toyota"}}, nil
			},
			getDealerFunc: func(ctx context.Context, id int64) (*model.Dealer, error) {
				return &model.Dealer{ID: id, FullName: "Sunshine Toyota"}, nil
			},
		},
		ReviewService: &fakeReviewService{
			listByDealerFunc: func(ctx context.Context, dealerID int64) ([]model.Review, error) {
				return nil, nil
			},
		},
		CarService: &fakeCarService{
			listCarsFunc: func(ctx context.Context) ([]repository.CarModelWithMake, error) {
				return nil, nil
			},
		},
		AuthService: &fakeAuthService{
			loginFunc: func(ctx context.Context, username, password string) (*model.User, *model.Session, error) {
				return nil, nil, nil
			},
		},
		AuthConfig: AuthHandlerConfig{SessionMaxAge: 3600},
	})
}

// 登録済みGETルートがトランスポート200で応答することを検証
func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	targets := []string{
		"/get_dealers",
		"/get_dealers/Kansas",
		"/dealer/1",
		"/reviews/dealer/1",
		"/get_cars",
		"/analyze_review?text=great",
		"/logout",
		"/health",
	}
	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
			if rec.Code != http.StatusOK {
				t.Errorf("GET %s transport status = %d, want 200", target, rec.Code)
			}
		})
	}
}

// POST専用エンドポイントへのGETは唯一トランスポート405を返すことを検証
func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/add_review", "/login", "/register"} {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("GET %s transport status = %d, want 405", target, rec.Code)
			}
			var body statusMessageResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Status != 405 {
				t.Errorf("body status = %d, want 405", body.Status)
			}
			if body.Message != "Method not allowed" {
				t.Errorf("message = %q, want %q", body.Message, "Method not allowed")
			}
		})
	}
}

// CORSヘッダーが全ルートに付与されることを検証
func TestRouter_CORSHeaders(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_dealers", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q, want %q", got, "http://localhost:3000")
	}
}

// ヘルスチェックはDB疎通失敗時に実際のトランスポート503を返すことを検証
func TestHealthHandler_Unhealthy(t *testing.T) {
	h := NewHealthHandler(&fakeHealthChecker{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "unhealthy" {
		t.Errorf("status = %q, want %q", body["status"], "unhealthy")
	}
}
