package catalog

import (
	"math"
	"strings"
	"time"
)

// Image is a media asset attached to catalog content. URL may be relative to
// the content service origin; see ResolveAssetURL.
type Image struct {
	ID              int           `json:"id"`
	URL             string        `json:"url"`
	AlternativeText *string       `json:"alternativeText"`
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	Formats         *ImageFormats `json:"formats,omitempty"`
}

// ImageFormats lists the pre-rendered size variants for an image.
type ImageFormats struct {
	Thumbnail *ImageFormat `json:"thumbnail,omitempty"`
	Small     *ImageFormat `json:"small,omitempty"`
	Medium    *ImageFormat `json:"medium,omitempty"`
	Large     *ImageFormat `json:"large,omitempty"`
}

// ImageFormat is one pre-rendered variant.
type ImageFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// FileRef points at a downloadable file owned by the content service.
type FileRef struct {
	ID   int    `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
}

// Specification is one row in a product's specification table. Group is a
// free-text label used to cluster rows in the rendered table.
type Specification struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Value string  `json:"value"`
	Unit  *string `json:"unit,omitempty"`
	Group *string `json:"group,omitempty"`
}

// DocumentAttachment is a downloadable document (manual, datasheet, ...)
// attached to a product.
type DocumentAttachment struct {
	ID    int      `json:"id"`
	Title string   `json:"title"`
	Type  string   `json:"type"`
	File  *FileRef `json:"file,omitempty"`
}

// SEO carries per-entry metadata for page heads.
type SEO struct {
	ID              int     `json:"id"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
	OGImage         *Image  `json:"ogImage,omitempty"`
	CanonicalURL    *string `json:"canonicalUrl,omitempty"`
}

// Product is the locale variant of one catalog product. The same logical
// product exists once per locale, each variant with its own ID and slug;
// DocumentID is the stable cross-locale identifier.
type Product struct {
	ID               int                  `json:"id"`
	DocumentID       string               `json:"documentId"`
	Name             string               `json:"name"`
	Slug             string               `json:"slug"`
	ShortDescription *string              `json:"shortDescription,omitempty"`
	Description      *string              `json:"description,omitempty"`
	ModelNumber      *string              `json:"modelNumber,omitempty"`
	SKU              *string              `json:"sku,omitempty"`
	Category         *ProductCategory     `json:"category,omitempty"`
	FeaturedImage    *Image               `json:"featuredImage,omitempty"`
	Gallery          []Image              `json:"gallery,omitempty"`
	Specifications   []Specification      `json:"specifications,omitempty"`
	Documents        []DocumentAttachment `json:"documents,omitempty"`
	SEO              *SEO                 `json:"seo,omitempty"`
	IsFeatured       bool                 `json:"isFeatured"`
	SortOrder        int                  `json:"sortOrder"`
	Locale           string               `json:"locale"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
	PublishedAt      time.Time            `json:"publishedAt"`
}

// ProductCategory groups products within one locale.
type ProductCategory struct {
	ID          int     `json:"id"`
	DocumentID  string  `json:"documentId"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Image       *Image  `json:"image,omitempty"`
	SortOrder   int     `json:"sortOrder"`
	Locale      string  `json:"locale"`
}

// Pagination is the 1-indexed page window echoed by listing reads.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// DefaultPagination is the empty window callers fall back to when a listing
// read degrades.
func DefaultPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return Pagination{Page: page, PageSize: pageSize, PageCount: 1, Total: 0}
}

// PageCountFor computes ceil(total / pageSize) with a floor of 1.
func PageCountFor(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	count := int(math.Ceil(float64(total) / float64(pageSize)))
	if count < 1 {
		return 1
	}
	return count
}

// ProductList is a page of products plus its pagination metadata.
type ProductList struct {
	Items      []*Product
	Pagination Pagination
}

// SlugRef names one locale variant's slug for link and sitemap generation.
type SlugRef struct {
	Slug   string
	Locale string
}

// ResolveAssetURL returns an absolute URL for a possibly-relative asset path
// by prefixing the content service origin. Absolute inputs pass through, so
// resolving twice yields the same value as resolving once.
func ResolveAssetURL(origin, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	origin = strings.TrimRight(origin, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return origin + path
}
