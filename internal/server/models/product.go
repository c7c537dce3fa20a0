package models

// Product is a sellable item. Healthy marks items surfaced by the
// recommendation endpoint. Category is populated on reads via join;
// writes reference CategoryID only.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Healthy     bool      `json:"healthy"`
	CategoryID  int64     `json:"category_id"`
	UserID      int64     `json:"user_id,omitempty"`
	Category    *Category `json:"category,omitempty"`
}
