package gateway

import (
	"context"

	"github.com/goliatone/go-storefront/catalog"
	"github.com/goliatone/go-storefront/query"
	"github.com/goliatone/go-storefront/site"
)

const (
	pagesPath        = "/pages"
	navigationPath   = "/navigation"
	siteSettingsPath = "/site-setting"
)

// SiteService implements site.Service on top of the cached HTTP client.
type SiteService struct {
	client  *Client
	locales []string
}

var _ site.Service = (*SiteService)(nil)

// NewSiteService builds the site-content gateway.
func NewSiteService(client *Client, locales []string) *SiteService {
	return &SiteService{client: client, locales: locales}
}

// GetPageBySlug resolves a presentational page by slug within one locale.
func (s *SiteService) GetPageBySlug(ctx context.Context, slug, locale string) (*site.Page, error) {
	q := query.PageBySlug(slug, locale)
	if err := q.Validate(s.locales...); err != nil {
		return nil, err
	}

	body, err := s.client.fetch(ctx, pagesPath, q, 0)
	if err != nil {
		return nil, err
	}

	items, _, err := decodeList[*site.Page](pagesPath, body)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &catalog.NotFoundError{Resource: "page", Key: slug, Locale: locale}
	}
	return items[0], nil
}

// GetNavigation reads the singleton navigation entry for a locale.
func (s *SiteService) GetNavigation(ctx context.Context, locale string) (*site.Navigation, error) {
	q := query.Navigation(locale)
	if err := q.Validate(s.locales...); err != nil {
		return nil, err
	}

	body, err := s.client.fetch(ctx, navigationPath, q, 0)
	if err != nil {
		return nil, err
	}

	nav, err := decodeSingle[site.Navigation](navigationPath, body)
	if err != nil {
		return nil, err
	}
	if nav == nil {
		return nil, &catalog.NotFoundError{Resource: "navigation", Key: "navigation", Locale: locale}
	}
	return nav, nil
}

// GetSiteSettings reads the singleton site settings entry for a locale.
func (s *SiteService) GetSiteSettings(ctx context.Context, locale string) (*site.SiteSetting, error) {
	q := query.SiteSettings(locale)
	if err := q.Validate(s.locales...); err != nil {
		return nil, err
	}

	body, err := s.client.fetch(ctx, siteSettingsPath, q, 0)
	if err != nil {
		return nil, err
	}

	settings, err := decodeSingle[site.SiteSetting](siteSettingsPath, body)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, &catalog.NotFoundError{Resource: "site-setting", Key: "site-setting", Locale: locale}
	}
	return settings, nil
}
