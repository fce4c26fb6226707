// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/bestcars/internal/model"
)

// DealerRepository は販売店データの永続化インターフェース。
type DealerRepository interface {
	// ListAll は全販売店をID昇順で返す。
	ListAll(ctx context.Context) ([]model.Dealer, error)

	// ListByState は州名の大文字小文字を無視した完全一致で販売店を返す。
	ListByState(ctx context.Context, state string) ([]model.Dealer, error)

	// FindByID は指定IDの販売店を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Dealer, error)

	// Exists は販売店が1件以上存在するかを返す。シーダーの冪等性チェックに使う。
	Exists(ctx context.Context) (bool, error)
}

// ReviewRepository はレビューデータの永続化インターフェース。
type ReviewRepository interface {
	// ListByDealerID は指定販売店のレビューを作成日時の降順（新しい順）で返す。
	ListByDealerID(ctx context.Context, dealerID int64) ([]model.Review, error)

	// Create はレビューを作成し、採番されたIDとサーバー付与のCreatedAtを書き戻す。
	Create(ctx context.Context, review *model.Review) error
}

// CarModelWithMake は車モデルとメーカー名を結合した読み取り用の構造体。
type CarModelWithMake struct {
	model.CarModel
	MakeName string
}

// CarRepository は車カタログデータの永続化インターフェース。
type CarRepository interface {
	// ListModelsWithMake は全車モデルをメーカー名付きでID昇順で返す。
	ListModelsWithMake(ctx context.Context) ([]CarModelWithMake, error)
}

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByUsername は指定ユーザー名のユーザーを取得する。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// ExistsByUsername は指定ユーザー名が既に登録済みかを返す。
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create はユーザーを作成する。
	// ユーザー名が既に存在する場合はErrUsernameTakenを返す。
	Create(ctx context.Context, user *model.User) error
}

// SessionRepository はセッションデータの永続化インターフェース。
type SessionRepository interface {
	// Create はセッションを作成する。
	Create(ctx context.Context, session *model.Session) error

	// FindByID は指定IDのセッションを取得する。期限切れ・未存在の場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Session, error)

	// DeleteByID は指定IDのセッションを削除する。存在しなくてもエラーにしない。
	DeleteByID(ctx context.Context, id string) error
}
