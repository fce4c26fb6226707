package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/bestcars/internal/repository"
)

// CarServiceInterface は車カタログハンドラーが必要とするサービスインターフェース。
type CarServiceInterface interface {
	ListCars(ctx context.Context) ([]repository.CarModelWithMake, error)
}

// CarHandler は車カタログ参照のHTTPハンドラー。
type CarHandler struct {
	service CarServiceInterface
	seeder  Seeder
}

// NewCarHandler はCarHandlerを生成する。
func NewCarHandler(service CarServiceInterface, seeder Seeder) *CarHandler {
	return &CarHandler{
		service: service,
		seeder:  seeder,
	}
}

// List は全車モデルをメーカー名付きで返す。
// GET /get_cars
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	if !ensureSeeded(w, r, h.seeder) {
		return
	}

	models, err := h.service.ListCars(r.Context())
	if err != nil {
		writeStatusMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]carModelResponse, len(models))
	for i, m := range models {
		resp[i] = toCarModelResponse(m)
	}
	writeJSON(w, carListResponse{CarModels: resp})
}
