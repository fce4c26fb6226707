package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/bestcars/internal/model"
)

// DealerServiceInterface は販売店ハンドラーが必要とするサービスインターフェース。
type DealerServiceInterface interface {
	// ListDealers は販売店一覧を返す。stateが空の場合は全件。
	ListDealers(ctx context.Context, state string) ([]model.Dealer, error)
	// GetDealer は指定IDの販売店を返す。見つからない場合は(nil, nil)。
	GetDealer(ctx context.Context, id int64) (*model.Dealer, error)
}

// DealerHandler は販売店参照のHTTPハンドラー。
type DealerHandler struct {
	service DealerServiceInterface
	seeder  Seeder
}

// NewDealerHandler はDealerHandlerを生成する。
func NewDealerHandler(service DealerServiceInterface, seeder Seeder) *DealerHandler {
	return &DealerHandler{
		service: service,
		seeder:  seeder,
	}
}

// List は販売店一覧を返す。
// GET /get_dealers
// GET /get_dealers/{state}
func (h *DealerHandler) List(w http.ResponseWriter, r *http.Request) {
	if !ensureSeeded(w, r, h.seeder) {
		return
	}

	state := chi.URLParam(r, "state")

	dealers, err := h.service.ListDealers(r.Context(), state)
	if err != nil {
		writeStatusMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]dealerResponse, len(dealers))
	for i, d := range dealers {
		resp[i] = toDealerResponse(d)
	}
	writeJSON(w, dealerListResponse{Status: http.StatusOK, Dealers: resp})
}

// Get は販売店の詳細を返す。
// GET /dealer/{id}
func (h *DealerHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !ensureSeeded(w, r, h.seeder) {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeStatusMessage(w, http.StatusNotFound, "Dealer not found")
		return
	}

	d, err := h.service.GetDealer(r.Context(), id)
	if err != nil {
		writeStatusMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	if d == nil {
		writeStatusMessage(w, http.StatusNotFound, "Dealer not found")
		return
	}

	writeJSON(w, dealerDetailResponse{Status: http.StatusOK, Dealer: toDealerResponse(*d)})
}
