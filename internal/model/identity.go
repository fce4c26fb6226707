package model

// CallerIdentity はリクエストに紐づく呼び出し元の識別情報を表す。
// 認証済みの場合はUserにプロフィールが入り、匿名の場合はnilとなる。
// グローバルなリクエスト状態に頼らず、各ハンドラーへ明示的に渡す。
type CallerIdentity struct {
	User      *User
	SessionID string
}

// Anonymous は匿名の呼び出し元を返す。
func Anonymous() CallerIdentity {
	return CallerIdentity{}
}

// Authenticated は呼び出し元が認証済みかどうかを返す。
func (c CallerIdentity) Authenticated() bool {
	return c.User != nil
}

// Username は認証済みの場合はユーザー名を、匿名の場合は空文字列を返す。
func (c CallerIdentity) Username() string {
	if c.User == nil {
		return ""
	}
	return c.User.Username
}
