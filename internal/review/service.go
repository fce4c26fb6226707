// Package review はレビューの作成・参照のビジネスロジックを提供する。
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hitoshi/bestcars/internal/model"
	"github.com/hitoshi/bestcars/internal/repository"
	"github.com/hitoshi/bestcars/internal/sentiment"
)

// ErrDealerNotFound は対象の販売店が存在しないことを表す。
var ErrDealerNotFound = errors.New("dealer not found")

// purchaseDateLayout はpurchase_dateのISOカレンダー日付フォーマット。
const purchaseDateLayout = "2006-01-02"

// TextSanitizer はレビュー本文の保存前サニタイズに必要なインターフェース。
type TextSanitizer interface {
	Sanitize(raw string) string
}

// MetricsRecorder はレビュー作成の記録に必要なインターフェース。
type MetricsRecorder interface {
	RecordReviewCreated(sentiment string)
}

// AddParams はレビュー作成のパラメータ。車種フィールドはレビュアーの
// 申告値であり、カタログとの整合は要求しない。
type AddParams struct {
	DealerID     int64
	Text         string
	Purchase     bool
	PurchaseDate string // ISOカレンダー日付。不正な値は黙って無視する
	CarMake      string
	CarModel     string
	CarYear      *int
}

// Service はレビューのビジネスロジックを提供する。
type Service struct {
	reviews   repository.ReviewRepository
	dealers   repository.DealerRepository
	sanitizer TextSanitizer
	metrics   MetricsRecorder
}

// NewService はServiceを生成する。metricsはnilでもよい。
func NewService(
	reviews repository.ReviewRepository,
	dealers repository.DealerRepository,
	sanitizer TextSanitizer,
	metrics MetricsRecorder,
) *Service {
	return &Service{
		reviews:   reviews,
		dealers:   dealers,
		sanitizer: sanitizer,
		metrics:   metrics,
	}
}

// ListByDealer は指定販売店のレビューを新しい順で返す。
// 販売店が存在しない場合はErrDealerNotFoundを返す。
func (s *Service) ListByDealer(ctx context.Context, dealerID int64) ([]model.Review, error) {
	d, err := s.dealers.FindByID(ctx, dealerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dealer: %w", err)
	}
	if d == nil {
		return nil, ErrDealerNotFound
	}

	reviews, err := s.reviews.ListByDealerID(ctx, dealerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// Add は認証済みユーザーのレビューを作成する。
// 表示名はユーザーの姓名（空ならユーザー名）から導出し、
// sentimentは本文から分類器で一度だけ導出する（以後再計算されない）。
func (s *Service) Add(ctx context.Context, user *model.User, params AddParams) (*model.Review, error) {
	d, err := s.dealers.FindByID(ctx, params.DealerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dealer: %w", err)
	}
	if d == nil {
		return nil, ErrDealerNotFound
	}

	text := s.sanitizer.Sanitize(params.Text)
	label := sentiment.Classify(text)

	rv := &model.Review{
		DealerID:     d.ID,
		UserID:       &user.ID,
		Name:         user.DisplayName(),
		Text:         text,
		Purchase:     params.Purchase,
		PurchaseDate: parsePurchaseDate(params.PurchaseDate),
		CarMake:      params.CarMake,
		CarModel:     params.CarModel,
		CarYear:      normalizeCarYear(params.CarYear),
		Sentiment:    model.Sentiment(label),
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, fmt.Errorf("failed to persist review: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordReviewCreated(string(rv.Sentiment))
	}
	return rv, nil
}

// parsePurchaseDate はISOカレンダー日付をパースする。
// 空・不正な値はnilを返す（エラーにはしない）。
func parsePurchaseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	d, err := time.Parse(purchaseDateLayout, value)
	if err != nil {
		return nil
	}
	return &d
}

// normalizeCarYear は0をnil扱いに正規化する。
func normalizeCarYear(year *int) *int {
	if year == nil || *year == 0 {
		return nil
	}
	return year
}
