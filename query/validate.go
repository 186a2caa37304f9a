package query

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// Validate checks the descriptor for malformed caller input. When locales is
// non-empty the query's locale must be a member of the set.
func (q Query) Validate(locales ...string) error {
	errs := validation.Errors{}

	if strings.TrimSpace(q.Locale) == "" {
		errs["locale"] = validation.NewError("storefront.query.locale_required", "locale is required")
	} else if len(locales) > 0 && !localeAllowed(locales, q.Locale) {
		errs["locale"] = validation.NewError("storefront.query.locale_unknown", "locale is not configured")
	}

	if q.Pagination != nil {
		if q.Pagination.Page < 1 {
			errs["page"] = validation.NewError("storefront.query.page_invalid", "page must be 1 or greater")
		}
		if q.Pagination.PageSize < 1 {
			errs["page_size"] = validation.NewError("storefront.query.page_size_invalid", "pageSize must be 1 or greater")
		}
	}

	for _, filter := range q.Filters {
		if len(filter.Path) == 0 {
			errs["filters"] = validation.NewError("storefront.query.filter_path_required", "filter path must not be empty")
			continue
		}
		if filter.Path[len(filter.Path)-1] != "slug" {
			continue
		}
		value, ok := filter.Value.(string)
		if !ok || !slug.IsValid(value) {
			errs["filters"] = validation.NewError("storefront.query.slug_invalid", "slug filters must carry a valid slug")
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &InvalidQueryError{Err: errs.Filter()}
}

func localeAllowed(locales []string, locale string) bool {
	needle := strings.ToLower(strings.TrimSpace(locale))
	for _, candidate := range locales {
		if strings.ToLower(strings.TrimSpace(candidate)) == needle {
			return true
		}
	}
	return false
}
