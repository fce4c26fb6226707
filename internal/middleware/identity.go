// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hitoshi/bestcars/internal/model"
)

// SessionCookieName はセッションIDを保持するHTTP Only Cookieの名前。
const SessionCookieName = "session_id"

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// callerContextKey はリクエストコンテキストにCallerIdentityを格納するためのキー。
var callerContextKey = contextKey("caller_identity")

// IdentityResolver はセッションIDから現在のユーザーを解決するインターフェース。
// auth.Serviceの部分集合として定義する。
type IdentityResolver interface {
	CurrentUser(ctx context.Context, sessionID string) (*model.User, error)
}

// NewIdentityMiddleware はHTTP Only CookieからCallerIdentityを解決し、
// リクエストコンテキストに注入するミドルウェアを返す。
//
// 未認証リクエストを拒否はしない。匿名のCallerIdentityを注入し、
// 認証の要否は各ハンドラーが判断する（読み取り系は匿名可、書き込み系は要認証）。
func NewIdentityMiddleware(resolver IdentityResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := model.Anonymous()

			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				user, err := resolver.CurrentUser(r.Context(), cookie.Value)
				if err != nil {
					// 解決失敗は匿名として続行する。ここで落とすと読み取り系まで道連れになる
					slog.Error("failed to resolve caller identity",
						slog.String("error", err.Error()),
					)
				} else if user != nil {
					caller = model.CallerIdentity{User: user, SessionID: cookie.Value}
				}
			}

			ctx := context.WithValue(r.Context(), callerContextKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext はリクエストコンテキストからCallerIdentityを取得する。
// ミドルウェアを通過していないコンテキストでは匿名を返す。
func CallerFromContext(ctx context.Context) model.CallerIdentity {
	if caller, ok := ctx.Value(callerContextKey).(model.CallerIdentity); ok {
		return caller
	}
	return model.Anonymous()
}

// ContextWithCaller はコンテキストにCallerIdentityを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithCaller(ctx context.Context, caller model.CallerIdentity) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}
