package catalog

import "shopfront/internal/model"

// fallbackDataset returns the minimal built-in catalogue used when the
// configured data source cannot be loaded. It keeps every page of the
// shop navigable in a degraded state.
func fallbackDataset() *model.Dataset {
	sale := func(v float64) *float64 { return &v }

	return &model.Dataset{
		Collections: []model.Collection{
			{
				ID:               "signature",
				Name:             "Signature Collection",
				Description:      "The pieces that started it all: small-batch candles poured in our studio.",
				ShortDescription: "Our founding line of studio-poured candles.",
				Image:            "/images/collections/signature.jpg",
			},
			{
				ID:               "seasonal",
				Name:             "Seasonal Edit",
				Description:      "Limited runs that follow the calendar, retired when the season turns.",
				ShortDescription: "Limited seasonal runs.",
				Image:            "/images/collections/seasonal.jpg",
			},
		},
		Products: []model.Product{
			{
				ID:               "cedar-smoke",
				Name:             "Cedar & Smoke",
				Price:            38.00,
				CollectionID:     "signature",
				Image:            "/images/products/cedar-smoke.jpg",
				ShortDescription: "Charred cedarwood with a trace of campfire.",
				LongDescription:  "Charred cedarwood, vetiver and a trace of campfire. Poured in a reusable amber glass vessel with a 55-hour burn time.",
			},
			{
				ID:               "sea-salt-fig",
				Name:             "Sea Salt & Fig",
				Price:            38.00,
				SalePrice:        sale(29.00),
				CollectionID:     "signature",
				Image:            "/images/products/sea-salt-fig.jpg",
				ShortDescription: "Green fig brightened with mineral salt.",
				LongDescription:  "Green fig leaf brightened with mineral sea salt and a soft musk base. A year-round favourite.",
			},
			{
				ID:               "winter-birch",
				Name:             "Winter Birch",
				Price:            42.00,
				CollectionID:     "seasonal",
				Image:            "/images/products/winter-birch.jpg",
				ShortDescription: "Birch bark, frost and white pine.",
				LongDescription:  "Birch bark, frost and white pine, our coldest-weather pour. Available until the first thaw.",
			},
		},
	}
}
