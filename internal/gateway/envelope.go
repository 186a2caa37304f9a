package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-storefront/catalog"
)

// The content service wraps every payload in a data/meta envelope.
// Collections carry a pagination block under meta; single types do not.

type paginationMeta struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type responseMeta struct {
	Pagination *paginationMeta `json:"pagination"`
}

func decodeList[T any](url string, body []byte) ([]T, *paginationMeta, error) {
	var envelope struct {
		Data []T          `json:"data"`
		Meta responseMeta `json:"meta"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, nil, &catalog.UnavailableError{URL: url, Err: fmt.Errorf("decode response: %w", err)}
	}
	return envelope.Data, envelope.Meta.Pagination, nil
}

func decodeSingle[T any](url string, body []byte) (*T, error) {
	var envelope struct {
		Data *T `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &catalog.UnavailableError{URL: url, Err: fmt.Errorf("decode response: %w", err)}
	}
	return envelope.Data, nil
}

func toPagination(meta *paginationMeta, page, pageSize, count int) catalog.Pagination {
	if meta == nil {
		return catalog.Pagination{
			Page:      page,
			PageSize:  pageSize,
			PageCount: catalog.PageCountFor(count, pageSize),
			Total:     count,
		}
	}
	p := catalog.Pagination{
		Page:      meta.Page,
		PageSize:  meta.PageSize,
		PageCount: meta.PageCount,
		Total:     meta.Total,
	}
	if p.PageCount == 0 {
		p.PageCount = catalog.PageCountFor(p.Total, p.PageSize)
	}
	return p
}
