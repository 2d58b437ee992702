package model

// Product represents a single item in the shop catalogue.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	SalePrice        *float64 `json:"salePrice,omitempty"`
	CollectionID     string   `json:"collectionId"`
	Image            string   `json:"image"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
}

// Collection groups products for display. ProductIDs is derived by the
// catalogue store from Product.CollectionID matches in declaration order;
// it is never read from the data source.
type Collection struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Image            string   `json:"image"`
	ProductIDs       []string `json:"productIds,omitempty"`
}

// Dataset is the document shape served by the catalogue data source.
type Dataset struct {
	Products    []Product    `json:"products"`
	Collections []Collection `json:"collections"`
}
