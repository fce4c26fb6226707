package model

// CarType は車種区分を表す。
type CarType string

const (
	CarTypeSedan       CarType = "SEDAN"
	CarTypeSUV         CarType = "SUV"
	CarTypeTruck       CarType = "TRUCK"
	CarTypeCoupe       CarType = "COUPE"
	CarTypeHatchback   CarType = "HATCHBACK"
	CarTypeConvertible CarType = "CONVERTIBLE"
	CarTypeVan         CarType = "VAN"
)

// carTypeLabels は車種区分の表示用ラベル。
var carTypeLabels = map[CarType]string{
	CarTypeSedan:       "Sedan",
	CarTypeSUV:         "SUV",
	CarTypeTruck:       "Truck",
	CarTypeCoupe:       "Coupe",
	CarTypeHatchback:   "Hatchback",
	CarTypeConvertible: "Convertible",
	CarTypeVan:         "Van",
}

// Label は表示用ラベルを返す。未知の値はそのまま返す。
func (t CarType) Label() string {
	if label, ok := carTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// CarMake は車メーカーのカタログエントリを表す。名前はカタログ内で一意。
type CarMake struct {
	ID          int64
	Name        string
	Description string
	Country     string
}

// CarModel は車モデルのカタログエントリを表す。
// (CarMakeID, Name) の組が自然キーであり、シーダーの重複回避に使われる。
type CarModel struct {
	ID        int64
	CarMakeID int64
	Name      string
	CarType   CarType
	Year      int
}
