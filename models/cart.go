package models

// CartItem is one line of the server-owned cart. Product uniqueness by ID is
// enforced by the backend and not re-validated here.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Coupon is the coupon currently attached to the cart, if any.
type Coupon struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discountType"` // "percentage" or "fixed"
	DiscountValue float64 `json:"discountValue"`
}

// Cart is the authoritative, backend-owned cart. Every mutation replaces the
// local copy wholesale with the backend's response; Discount is the backend's
// number and is never recomputed client-side.
type Cart struct {
	Items    []CartItem `json:"items"`
	Coupon   *Coupon    `json:"coupon,omitempty"`
	Discount float64    `json:"discount"`
}
