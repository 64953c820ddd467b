package shop

// Category define las categorías del catálogo.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryAccessory Category = "Accessory"
	CategoryGrooming  Category = "Grooming"
	CategoryMedicine  Category = "Medicine"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryFood, CategoryAccessory, CategoryGrooming, CategoryMedicine:
		return Category(s), true
	}
	return "", false
}

// Item es un producto del shop. Price siempre >= 0 (viene del seed).
type Item struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Category    Category
}
