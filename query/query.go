// Package query builds filter/population/sort/pagination descriptors for the
// content service's REST query language. Descriptors are plain values with no
// transport knowledge; equal logical queries always encode to identical query
// strings so gateway cache keys can be derived from them.
package query

// Op enumerates the supported filter operators. The content service exposes a
// richer predicate language, but the storefront only ever filters on equality.
type Op string

const (
	// OpEq matches when the addressed field equals the value exactly.
	OpEq Op = "$eq"
)

// Filter is a single predicate leaf addressing a (possibly nested) attribute
// path. Multiple filters on a Query are combined with logical AND.
type Filter struct {
	Path  []string
	Op    Op
	Value any
}

// Eq builds an equality filter on the given attribute path.
func Eq(value any, path ...string) Filter {
	return Filter{Path: path, Op: OpEq, Value: value}
}

// Populate selects a relation to include in the response, optionally limited
// to specific fields or expanded recursively.
type Populate struct {
	Relation string
	Fields   []string
	Nested   []Populate
	// All requests every nested relation of the target ("populate=*").
	All bool
}

// Direction orders a sort key.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is one sort key; keys are applied in declaration order.
type Sort struct {
	Field     string
	Direction Direction
}

// Pagination requests a 1-indexed page window.
type Pagination struct {
	Page     int
	PageSize int
}

// Query is the full request descriptor consumed by the content gateway.
type Query struct {
	Locale     string
	Fields     []string
	Filters    []Filter
	Populate   []Populate
	Sort       []Sort
	Pagination *Pagination
}

// DefaultPageSize is the listing window used when a caller leaves PageSize
// unset.
const DefaultPageSize = 25

// ProductListParams captures the typed domain filters for product listings.
type ProductListParams struct {
	Category string
	Featured bool
	Page     int
	PageSize int
}

// productSort is the fixed listing order: explicit ordering first, name as the
// tiebreak.
func productSort() []Sort {
	return []Sort{
		{Field: "sortOrder", Direction: Asc},
		{Field: "name", Direction: Asc},
	}
}

func imageFields() []string {
	return []string{"url", "alternativeText", "width", "height"}
}

// ProductList describes a paginated, locale-scoped product listing.
func ProductList(locale string, params ProductListParams) Query {
	q := Query{
		Locale: locale,
		Populate: []Populate{
			{Relation: "featuredImage", Fields: imageFields()},
			{Relation: "category", Fields: []string{"name", "slug"}},
			{Relation: "seo", All: true},
		},
		Sort: productSort(),
		Pagination: &Pagination{
			Page:     params.Page,
			PageSize: params.PageSize,
		},
	}
	if q.Pagination.Page == 0 {
		q.Pagination.Page = 1
	}
	if q.Pagination.PageSize == 0 {
		q.Pagination.PageSize = DefaultPageSize
	}
	if params.Category != "" {
		q.Filters = append(q.Filters, Eq(params.Category, "category", "slug"))
	}
	if params.Featured {
		q.Filters = append(q.Filters, Eq(true, "isFeatured"))
	}
	return q
}

// ProductBySlug describes a single-product lookup within one locale, with the
// full relation set a detail view needs.
func ProductBySlug(slug, locale string) Query {
	detailImage := append(imageFields(), "formats")
	return Query{
		Locale:  locale,
		Filters: []Filter{Eq(slug, "slug")},
		Populate: []Populate{
			{Relation: "featuredImage", Fields: detailImage},
			{Relation: "gallery", Fields: detailImage},
			{Relation: "category", Fields: []string{"name", "slug"}},
			{Relation: "specifications"},
			{Relation: "documents", Nested: []Populate{
				{Relation: "file", Fields: []string{"url", "name", "size", "mime"}},
			}},
			{Relation: "seo", Nested: []Populate{
				{Relation: "ogImage", Fields: []string{"url", "width", "height"}},
			}},
		},
	}
}

// ProductSlugs describes the minimal listing used to enumerate slugs for one
// locale page by page.
func ProductSlugs(locale string, page, pageSize int) Query {
	return Query{
		Locale: locale,
		Fields: []string{"slug"},
		Pagination: &Pagination{
			Page:     page,
			PageSize: pageSize,
		},
	}
}

// CategoryList describes the ordered category listing for a locale.
func CategoryList(locale string) Query {
	return Query{
		Locale: locale,
		Populate: []Populate{
			{Relation: "image", Fields: imageFields()},
		},
		Sort: productSort(),
	}
}

// PageBySlug describes a single presentational page lookup.
func PageBySlug(slug, locale string) Query {
	return Query{
		Locale:  locale,
		Filters: []Filter{Eq(slug, "slug")},
		Populate: []Populate{
			{Relation: "heroImage", Fields: imageFields()},
			{Relation: "seo", Nested: []Populate{
				{Relation: "ogImage", Fields: []string{"url", "width", "height"}},
			}},
		},
	}
}

// Navigation describes the singleton navigation lookup.
func Navigation(locale string) Query {
	return Query{Locale: locale}
}

// SiteSettings describes the singleton site settings lookup.
func SiteSettings(locale string) Query {
	return Query{
		Locale: locale,
		Populate: []Populate{
			{Relation: "logo", Fields: imageFields()},
			{Relation: "favicon", Fields: []string{"url"}},
		},
	}
}
