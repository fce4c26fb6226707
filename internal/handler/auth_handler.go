package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/bestcars/internal/auth"
	"github.com/hitoshi/bestcars/internal/middleware"
	"github.com/hitoshi/bestcars/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Login は資格情報を検証し、成功時にセッションを発行する。
	// 資格情報が一致しない場合は(nil, nil, nil)を返す。
	Login(ctx context.Context, username, password string) (*model.User, *model.Session, error)
	// Register は新規ユーザーを作成しセッションを発行する。
	// 登録済みユーザー名の場合はauth.ErrAlreadyRegisteredを返す。
	Register(ctx context.Context, params auth.RegisterParams) (*model.User, *model.Session, error)
	// Logout はセッションを破棄する。冪等。
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlerConfig は認証ハンドラーの設定。
type AuthHandlerConfig struct {
	CookieDomain  string
	CookieSecure  bool
	SessionMaxAge int // セッションCookieの有効期間（秒）
}

// AuthHandler は認証関連のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	config  AuthHandlerConfig
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, config AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
	}
}

// --- ワイヤーフォーマット（旧API互換） ---

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type registerRequest struct {
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// profileResponse は認証成功時のレスポンス。
type profileResponse struct {
	UserName  string `json:"userName"`
	Status    string `json:"status"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// loginFailedResponse は資格情報不一致時のレスポンス。
type loginFailedResponse struct {
	UserName string `json:"userName"`
	Status   string `json:"status"`
}

// registerConflictResponse は登録済みユーザー名での登録試行時のレスポンス。
type registerConflictResponse struct {
	UserName string `json:"userName"`
	Error    string `json:"error"`
}

// authErrorResponse は内部エラー時のレスポンス。
type authErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Login はユーザーを認証しセッションを確立する。
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, authErrorResponse{Status: "Error", Message: err.Error()})
		return
	}

	user, session, err := h.service.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		slog.Error("login failed", slog.String("error", err.Error()))
		writeJSON(w, authErrorResponse{Status: "Error", Message: err.Error()})
		return
	}
	if user == nil {
		// 資格情報不一致。セッションは発行されず、呼び出し元は匿名のまま
		writeJSON(w, loginFailedResponse{UserName: req.UserName, Status: "Failed"})
		return
	}

	h.setSessionCookie(w, session.ID)
	writeJSON(w, profileResponse{
		UserName:  user.Username,
		Status:    "Authenticated",
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}

// logoutResponse はログアウトのレスポンス。
// userNameは呼び出し元が未認証だった場合に空文字列となる。
type logoutResponse struct {
	UserName string `json:"userName"`
	Status   string `json:"status"`
}

// Logout はセッションを破棄する。常に成功する。
// GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if logoutErr := h.service.Logout(r.Context(), cookie.Value); logoutErr != nil {
			// ログアウト失敗してもCookieはクリアする
			slog.Error("failed to logout", slog.String("error", logoutErr.Error()))
		}
	}

	h.clearSessionCookie(w)
	writeJSON(w, logoutResponse{UserName: caller.Username(), Status: "Logged out"})
}

// Register は新規ユーザーを作成しセッションを確立する。
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, authErrorResponse{Status: "Error", Message: err.Error()})
		return
	}

	user, session, err := h.service.Register(r.Context(), auth.RegisterParams{
		Username:  req.UserName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrAlreadyRegistered) {
			writeJSON(w, registerConflictResponse{UserName: req.UserName, Error: "Already Registered"})
			return
		}
		slog.Error("registration failed", slog.String("error", err.Error()))
		writeJSON(w, authErrorResponse{Status: "Error", Message: err.Error()})
		return
	}

	h.setSessionCookie(w, session.ID)
	writeJSON(w, profileResponse{
		UserName:  user.Username,
		Status:    "Authenticated",
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}

// setSessionCookie はセッションCookieを設定する（HTTP Only）。
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   h.config.SessionMaxAge,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie はセッションCookieをクリアする。
func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
