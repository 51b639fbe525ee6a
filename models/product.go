package models

// Product mirrors the backend's catalog entry. Only the fields the client
// renders or prices with are decoded.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Images      []string `json:"images,omitempty"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category,omitempty"`
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products   []Product `json:"products"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	Total      int       `json:"total"`
}

// ProductQuery carries the optional catalog filters the client may send.
type ProductQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}
