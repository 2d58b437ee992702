package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"shopfront/internal/model"
)

// generateCatalog writes a sample catalogue dataset to data/catalog.json
// so the API can be run locally without pointing at a real data source.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	sale := func(v float64) *float64 { return &v }

	dataset := model.Dataset{
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
			{
				ID:               "home",
				Name:             "Home Goods",
				Description:      "Matches, trays and snuffers to go with the candles.",
				ShortDescription: "Accessories for the ritual.",
				Image:            "/images/collections/home.jpg",
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
				ID:               "amber-noir",
				Name:             "Amber Noir",
				Price:            44.00,
				CollectionID:     "signature",
				Image:            "/images/products/amber-noir.jpg",
				ShortDescription: "Dark amber, labdanum and worn leather.",
				LongDescription:  "Dark amber, labdanum and worn leather. The heaviest pour in the line, made for winter evenings.",
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
			{
				ID:               "orchard-bloom",
				Name:             "Orchard Bloom",
				Price:            42.00,
				SalePrice:        sale(33.00),
				CollectionID:     "seasonal",
				Image:            "/images/products/orchard-bloom.jpg",
				ShortDescription: "Apple blossom over cut grass.",
				LongDescription:  "Apple blossom over cut grass and rain-damp stone. The spring edit, on its way out for the year.",
			},
			{
				ID:               "brass-snuffer",
				Name:             "Brass Snuffer",
				Price:            18.00,
				CollectionID:     "home",
				Image:            "/images/products/brass-snuffer.jpg",
				ShortDescription: "Solid brass, ages with use.",
				LongDescription:  "A solid brass snuffer that takes on a patina with use. Ends a burn without smoke.",
			},
		},
	}

	raw, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalogue: %v", err)
	}

	outPath := filepath.Join(dataDir, "catalog.json")
	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", outPath, err)
	}

	fmt.Printf("Created %s with %d products in %d collections\n",
		outPath, len(dataset.Products), len(dataset.Collections))
}
