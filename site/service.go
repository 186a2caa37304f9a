package site

import "context"

// Service reads presentational site content from the content service. The
// same failure policy as the catalog gateway applies: transport failures
// surface as catalog.ErrUnavailable and missing entries as catalog.ErrNotFound.
type Service interface {
	GetPageBySlug(ctx context.Context, slug, locale string) (*Page, error)
	GetNavigation(ctx context.Context, locale string) (*Navigation, error)
	GetSiteSettings(ctx context.Context, locale string) (*SiteSetting, error)
}
