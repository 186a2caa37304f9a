// Package searchindex defines the deterministic projection from catalog
// entities into flat search documents, plus the index schema the search
// client's filter and sort vocabulary must match.
package searchindex

import "github.com/goliatone/go-storefront/catalog"

// Document is the flattened, locale-tagged projection of a Product stored in
// the search index. It is derived, never hand-edited, and regenerable from
// the source product at any time. Optional fields stay present as null in the
// serialized form: the index schema requires stable field presence.
type Document struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	ShortDescription *string `json:"shortDescription"`
	Description      *string `json:"description"`
	ModelNumber      *string `json:"modelNumber"`
	SKU              *string `json:"sku"`
	IsFeatured       bool    `json:"isFeatured"`
	SortOrder        int     `json:"sortOrder"`
	Locale           string  `json:"locale"`
	Category         *string `json:"category"`
	CategorySlug     *string `json:"categorySlug"`
}

// Transform projects a product into its search document. Pure and total for
// well-formed products: missing optional fields map to nil, and the same
// input always yields a structurally identical document.
func Transform(p *catalog.Product) Document {
	doc := Document{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		ModelNumber:      p.ModelNumber,
		SKU:              p.SKU,
		IsFeatured:       p.IsFeatured,
		SortOrder:        p.SortOrder,
		Locale:           p.Locale,
	}
	if p.Category != nil {
		name := p.Category.Name
		slug := p.Category.Slug
		doc.Category = &name
		doc.CategorySlug = &slug
	}
	return doc
}
