package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// Seeder はサンプルデータの冪等な初期投入のインターフェース。
// seed.Serviceの部分集合として定義する。
type Seeder interface {
	EnsureSeeded(ctx context.Context) error
}

// ensureSeeded はシード済み状態を保証する。
// 失敗時は500ペイロードを書き込み、falseを返す。
// シード対象エンティティ（販売店・車・レビュー）を読む操作の先頭で呼ぶこと。
// 認証系の操作では呼ばない。
func ensureSeeded(w http.ResponseWriter, r *http.Request, seeder Seeder) bool {
	if err := seeder.EnsureSeeded(r.Context()); err != nil {
		slog.Error("failed to ensure sample data", slog.String("error", err.Error()))
		writeStatusMessage(w, http.StatusInternalServerError, err.Error())
		return false
	}
	return true
}
