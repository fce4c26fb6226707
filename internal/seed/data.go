package seed

import "github.com/hitoshi/bestcars/internal/model"

// サンプルデータセット。初回シード時に一括投入される。
// レビューのsentimentは投入時に分類器で導出するため、ここには持たない。

type dealerSeed struct {
	fullName  string
	shortName string
	address   string
	city      string
	state     string
	st        string
	zipCode   string
	lat       float64
	lng       float64
}

type reviewSeed struct {
	dealerIndex int // dealerSeeds内のインデックス
	name        string
	text        string
	purchase    bool
	carMake     string
	carModel    string
	carYear     int
}

type makeSeed struct {
	name    string
	country string
}

type modelSeed struct {
	makeName string
	name     string
	carType  model.CarType
	year     int
}

var dealerSeeds = []dealerSeed{
	{"Sunshine Toyota", "Sunshine", "123 Main St", "Wichita", "Kansas", "KS", "67201", 37.69, -97.34},
	{"Prairie Ford", "Prairie", "456 Elm Ave", "Topeka", "Kansas", "KS", "66601", 39.05, -95.68},
	{"Bluegrass Hyundai", "Bluegrass", "147 West St", "Overland Park", "Kansas", "KS", "66204", 38.98, -94.67},
	{"Lakeside Honda", "Lakeside", "789 Oak Blvd", "Austin", "Texas", "TX", "73301", 30.27, -97.74},
	{"Metro Chevrolet", "Metro", "321 Pine Rd", "Houston", "Texas", "TX", "77001", 29.76, -95.37},
	{"Coastal BMW", "Coastal", "654 Sunset Blvd", "Los Angeles", "California", "CA", "90001", 34.05, -118.24},
	{"Empire Mercedes", "Empire", "987 Fifth Ave", "New York", "New York", "NY", "10001", 40.71, -74.01},
	{"Gateway VW", "Gateway", "258 Michigan Ave", "Chicago", "Illinois", "IL", "60601", 41.88, -87.63},
	{"Rocky Mountain Subaru", "Rocky", "50 Peak Ave", "Denver", "Colorado", "CO", "80201", 39.74, -104.98},
	{"Sunshine Nissan", "Sun Nissan", "900 Beach Rd", "Miami", "Florida", "FL", "33101", 25.77, -80.19},
}

var reviewSeeds = []reviewSeed{
	{0, "John Smith", "Fantastic services and very friendly staff! I love this place.", true, "Toyota", "Camry", 2023},
	{0, "Jane Doe", "Great experience overall. Would definitely recommend to friends!", false, "Toyota", "RAV4", 2022},
	{1, "Bob Johnson", "Excellent service and very fair pricing. Very happy with my purchase.", true, "Ford", "F-150", 2023},
	{2, "Alice Williams", "Amazing dealership! The team was very helpful and professional.", true, "Hyundai", "Tucson", 2022},
	{3, "Charlie Brown", "Terrible experience. Rude staff and overpriced vehicles. Never coming back.", false, "Honda", "Civic", 2021},
	{4, "Emma Davis", "Good selection of cars. The salesman was helpful and patient.", true, "Chevrolet", "Equinox", 2023},
}

var makeSeeds = []makeSeed{
	{"Toyota", "Japan"},
	{"Ford", "USA"},
	{"Honda", "Japan"},
	{"Chevrolet", "USA"},
	{"BMW", "Germany"},
	{"Mercedes-Benz", "Germany"},
	{"Hyundai", "South Korea"},
	{"Volkswagen", "Germany"},
	{"Nissan", "Japan"},
	{"Subaru", "Japan"},
}

var modelSeeds = []modelSeed{
	{"Toyota", "Camry", model.CarTypeSedan, 2023},
	{"Toyota", "RAV4", model.CarTypeSUV, 2022},
	{"Toyota", "Corolla", model.CarTypeSedan, 2021},
	{"Ford", "F-150", model.CarTypeTruck, 2023},
	{"Ford", "Explorer", model.CarTypeSUV, 2022},
	{"Ford", "Mustang", model.CarTypeCoupe, 2023},
	{"Honda", "Civic", model.CarTypeSedan, 2023},
	{"Honda", "CR-V", model.CarTypeSUV, 2022},
	{"Honda", "Accord", model.CarTypeSedan, 2021},
	{"Chevrolet", "Silverado", model.CarTypeTruck, 2023},
	{"Chevrolet", "Equinox", model.CarTypeSUV, 2022},
	{"BMW", "3 Series", model.CarTypeSedan, 2023},
	{"BMW", "X5", model.CarTypeSUV, 2022},
	{"Mercedes-Benz", "C-Class", model.CarTypeSedan, 2023},
	{"Mercedes-Benz", "GLE", model.CarTypeSUV, 2022},
	{"Hyundai", "Elantra", model.CarTypeSedan, 2023},
	{"Hyundai", "Tucson", model.CarTypeSUV, 2022},
	{"Volkswagen", "Jetta", model.CarTypeSedan, 2023},
	{"Volkswagen", "Tiguan", model.CarTypeSUV, 2022},
	{"Nissan", "Altima", model.CarTypeSedan, 2023},
	{"Nissan", "Rogue", model.CarTypeSUV, 2022},
	{"Subaru", "Outback", model.CarTypeSUV, 2023},
	{"Subaru", "Forester", model.CarTypeSUV, 2022},
}
