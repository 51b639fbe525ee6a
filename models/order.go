package models

import "time"

// OrderItem is a priced line item captured at order placement.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a placed order as reported by the backend.
type Order struct {
	ID              string      `json:"_id"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Discount        float64     `json:"discount"`
	ShippingFee     float64     `json:"shippingFee"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"` // pending, shipped, delivered, cancelled
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Address is the shipping address submitted at checkout.
type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}
