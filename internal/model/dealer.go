// Package model はドメインモデルを定義する。
package model

// Dealer は販売店の所在地レコードを表す。
// シード投入後は不変として扱う。
type Dealer struct {
	ID        int64
	FullName  string
	ShortName string
	Address   string
	City      string
	State     string
	St        string // 州の略称（"KS"など）
	ZipCode   string
	Lat       float64
	Lng       float64
}
