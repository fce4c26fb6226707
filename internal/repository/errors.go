package repository

import "errors"

// ErrUsernameTaken はユーザー名の一意制約違反を表す。
// 登録APIの競合判定に使用する。
var ErrUsernameTaken = errors.New("username already taken")
