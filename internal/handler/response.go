// Package handler はHTTPハンドラーを提供する。
//
// 旧実装のクライアントはトランスポートのステータスコードではなく、
// ボディ内のstatusフィールドで結果を判定する。互換性のため、
// メソッド不許可を除く全レスポンスはトランスポート200で返し、
// アプリケーションレベルの結果（200/400/403/404/500）はボディで表現する。
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hitoshi/bestcars/internal/model"
	"github.com/hitoshi/bestcars/internal/repository"
)

// writeJSON はトランスポート200でJSONボディを書き込む。
func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// statusMessageResponse はアプリケーションレベルのエラーペイロード。
type statusMessageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// writeStatusMessage はアプリケーションレベルのstatus/messageペイロードを書き込む。
func writeStatusMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, statusMessageResponse{Status: status, Message: message})
}

// --- 販売店 ---

// dealerResponse は販売店のワイヤーフォーマット。フィールド名は旧API互換。
type dealerResponse struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	ShortName string  `json:"short_name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	St        string  `json:"st"`
	Zip       string  `json:"zip"`
	Lat       float64 `json:"lat"`
	Long      float64 `json:"long"`
}

func toDealerResponse(d model.Dealer) dealerResponse {
	return dealerResponse{
		ID:        d.ID,
		FullName:  d.FullName,
		ShortName: d.ShortName,
		Address:   d.Address,
		City:      d.City,
		State:     d.State,
		St:        d.St,
		Zip:       d.ZipCode,
		Lat:       d.Lat,
		Long:      d.Lng,
	}
}

type dealerListResponse struct {
	Status  int              `json:"status"`
	Dealers []dealerResponse `json:"dealers"`
}

type dealerDetailResponse struct {
	Status int            `json:"status"`
	Dealer dealerResponse `json:"dealer"`
}

// --- レビュー ---

// reviewResponse はレビューのワイヤーフォーマット。
// purchase_dateは未設定の場合に空文字列、car_yearは未設定の場合にnullとなる。
type reviewResponse struct {
	ID           int64  `json:"id"`
	Dealership   int64  `json:"dealership"`
	Name         string `json:"name"`
	Review       string `json:"review"`
	Purchase     bool   `json:"purchase"`
	PurchaseDate string `json:"purchase_date"`
	CarMake      string `json:"car_make"`
	CarModel     string `json:"car_model"`
	CarYear      *int   `json:"car_year"`
	Sentiment    string `json:"sentiment"`
}

func toReviewResponse(rv model.Review) reviewResponse {
	purchaseDate := ""
	if rv.PurchaseDate != nil {
		purchaseDate = rv.PurchaseDate.Format("2006-01-02")
	}
	return reviewResponse{
		ID:           rv.ID,
		Dealership:   rv.DealerID,
		Name:         rv.Name,
		Review:       rv.Text,
		Purchase:     rv.Purchase,
		PurchaseDate: purchaseDate,
		CarMake:      rv.CarMake,
		CarModel:     rv.CarModel,
		CarYear:      rv.CarYear,
		Sentiment:    string(rv.Sentiment),
	}
}

type reviewListResponse struct {
	Status  int              `json:"status"`
	Reviews []reviewResponse `json:"reviews"`
}

type reviewDetailResponse struct {
	Status int            `json:"status"`
	Review reviewResponse `json:"review"`
}

// --- 車カタログ ---

// carModelResponse は車カタログのワイヤーフォーマット。
// キーのケーシングは旧API互換（PascalCase）。
type carModelResponse struct {
	CarMake   string `json:"CarMake"`
	CarModel  string `json:"CarModel"`
	CarType   string `json:"CarType"`
	ModelYear int    `json:"ModelYear"`
}

func toCarModelResponse(m repository.CarModelWithMake) carModelResponse {
	return carModelResponse{
		CarMake:   m.MakeName,
		CarModel:  m.Name,
		CarType:   m.CarType.Label(),
		ModelYear: m.Year,
	}
}

type carListResponse struct {
	CarModels []carModelResponse `json:"CarModels"`
}
