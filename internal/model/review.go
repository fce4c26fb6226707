package model

import "time"

// Sentiment はレビュー本文から導出される感情ラベルを表す。
// 作成時に一度だけ分類され、以後再計算されない。
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Review は販売店に対する顧客レビューを表す。
// 車種フィールド（CarMake等）はレビュアーの申告をそのまま記録する
// 非正規化スナップショットであり、カタログ（car_makes/car_models）とは独立している。
type Review struct {
	ID           int64
	DealerID     int64
	UserID       *string // 投稿ユーザー。ユーザー削除後もレビューは残るためnullable
	Name         string
	Text         string
	Purchase     bool
	PurchaseDate *time.Time
	CarMake      string
	CarModel     string
	CarYear      *int
	Sentiment    Sentiment
	CreatedAt    time.Time
}
