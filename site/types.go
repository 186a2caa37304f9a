package site

import "github.com/goliatone/go-storefront/catalog"

// Page is a slug-addressed presentational page. Content is raw rich text; the
// renderer above this layer owns its interpretation.
type Page struct {
	ID           int            `json:"id"`
	DocumentID   string         `json:"documentId"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Content      *string        `json:"content,omitempty"`
	HeroImage    *catalog.Image `json:"heroImage,omitempty"`
	HeroTitle    *string        `json:"heroTitle,omitempty"`
	HeroSubtitle *string        `json:"heroSubtitle,omitempty"`
	SEO          *catalog.SEO   `json:"seo,omitempty"`
	Locale       string         `json:"locale"`
}

// NavigationItem is one menu entry; Children nest one level per item.
type NavigationItem struct {
	Label    string           `json:"label"`
	Href     string           `json:"href"`
	Children []NavigationItem `json:"children,omitempty"`
}

// Navigation is the singleton menu structure for a locale.
type Navigation struct {
	ID         int              `json:"id"`
	MainMenu   []NavigationItem `json:"mainMenu"`
	FooterMenu []NavigationItem `json:"footerMenu"`
	Locale     string           `json:"locale"`
}

// SocialLinks lists the site's social profiles.
type SocialLinks struct {
	Twitter  *string `json:"twitter,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	YouTube  *string `json:"youtube,omitempty"`
	Facebook *string `json:"facebook,omitempty"`
}

// SiteSetting is the singleton site chrome configuration for a locale.
type SiteSetting struct {
	ID             int            `json:"id"`
	SiteName       string         `json:"siteName"`
	Logo           *catalog.Image `json:"logo,omitempty"`
	Favicon        *catalog.Image `json:"favicon,omitempty"`
	FooterText     *string        `json:"footerText,omitempty"`
	Copyright      *string        `json:"copyright,omitempty"`
	SocialLinks    *SocialLinks   `json:"socialLinks,omitempty"`
	ContactEmail   *string        `json:"contactEmail,omitempty"`
	ContactPhone   *string        `json:"contactPhone,omitempty"`
	ContactAddress *string        `json:"contactAddress,omitempty"`
	Locale         string         `json:"locale"`
}
