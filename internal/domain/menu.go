package domain

// Menu groups meals under a named section of the catalog.
type Menu struct {
	MenuID   string `json:"menuID"`
	MenuName string `json:"menuName"`
	Meals    []Meal `json:"meals"`
}

// Meal is a single orderable catalog item.
type Meal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
}
