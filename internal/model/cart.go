package model

// LineItem is one row in the cart. Name, image, collection and both
// prices are snapshots taken when the product was first added; they are
// deliberately not refreshed from the catalogue afterwards.
type LineItem struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	CollectionID  string  `json:"collectionId"`
	UnitPrice     float64 `json:"unitPrice"`
	OriginalPrice float64 `json:"originalPrice"`
	Quantity      int     `json:"quantity"`
}

// Totals holds the computed order totals for a cart.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}
