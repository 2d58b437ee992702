// Package render turns catalogue data into HTML fragments. Every
// helper is a pure function of its inputs: identical input produces
// byte-identical output, and unknown or missing data renders as empty
// output rather than failing the page.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/model"
)

var (
	priceBlockTmpl = template.Must(template.New("priceBlock").Parse(
		`<div class="price{{if .OnSale}} price--sale{{end}}">` +
			`{{if .OnSale}}<span class="price__original">{{.Original}}</span>{{end}}` +
			`<span class="price__current">{{.Current}}</span>` +
			`{{if .ShowBadge}}<span class="price__badge">{{.PercentOff}}% off</span>{{end}}` +
			`</div>`))

	productCardTmpl = template.Must(template.New("productCard").Parse(
		`<a class="product-card" href="{{.URL}}">` +
			`<img class="product-card__image" src="{{.Image}}" alt="{{.Name}}">` +
			`<h3 class="product-card__name">{{.Name}}</h3>` +
			`{{.Price}}` +
			`</a>`))
)

// Renderer builds display fragments using the shop's currency symbol.
type Renderer struct {
	shop config.ShopConfig
}

// New creates a renderer for the given shop configuration.
func New(shop config.ShopConfig) *Renderer {
	return &Renderer{shop: shop}
}

// FormatPrice formats an amount with the currency symbol and exactly
// two decimal places.
func (r *Renderer) FormatPrice(amount float64) string {
	return fmt.Sprintf("%s%.2f", r.shop.CurrencySymbol, amount)
}

// PriceBlock renders a product's price, distinguishing sale from
// non-sale state. When the product is on sale the original price is
// shown struck through next to the sale price, with a percent-off
// badge when showSaleLabel is set.
func (r *Renderer) PriceBlock(p model.Product, showSaleLabel bool) string {
	onSale := catalog.IsOnSale(p)

	data := struct {
		OnSale     bool
		Original   string
		Current    string
		ShowBadge  bool
		PercentOff int
	}{
		OnSale:  onSale,
		Current: r.FormatPrice(catalog.EffectivePrice(p)),
	}
	if onSale {
		data.Original = r.FormatPrice(p.Price)
		data.ShowBadge = showSaleLabel
		data.PercentOff = catalog.PercentOff(p.Price, p.SalePrice)
	}

	var b strings.Builder
	if err := priceBlockTmpl.Execute(&b, data); err != nil {
		return ""
	}
	return b.String()
}

// ProductCard renders a self-contained clickable card for a product,
// suitable for grids. basePath prefixes the link target.
func (r *Renderer) ProductCard(p model.Product, basePath string) string {
	data := struct {
		URL   string
		Image string
		Name  string
		Price template.HTML
	}{
		URL:   basePath + "/products/" + p.ID,
		Image: p.Image,
		Name:  p.Name,
		Price: template.HTML(r.PriceBlock(p, true)),
	}

	var b strings.Builder
	if err := productCardTmpl.Execute(&b, data); err != nil {
		return ""
	}
	return b.String()
}

// CollectionGrid renders the product cards of a collection in order.
// Unknown collections and collections with no resolvable products
// render as an empty string.
func (r *Renderer) CollectionGrid(store *catalog.Store, collectionID, basePath string) string {
	products := store.CollectionProducts(collectionID)
	if len(products) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="product-grid">`)
	for _, p := range products {
		b.WriteString(r.ProductCard(p, basePath))
	}
	b.WriteString(`</div>`)
	return b.String()
}
