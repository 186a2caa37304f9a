package query

import (
	"fmt"
	"net/url"
	"strconv"
)

// Encode renders the descriptor into the content service's bracketed query
// string syntax. url.Values.Encode sorts keys, and every list position is part
// of its key, so structurally equal descriptors produce identical strings.
func (q Query) Encode() url.Values {
	values := url.Values{}

	if q.Locale != "" {
		values.Set("locale", q.Locale)
	}

	for i, field := range q.Fields {
		values.Set(fmt.Sprintf("fields[%d]", i), field)
	}

	for _, filter := range q.Filters {
		key := "filters"
		for _, segment := range filter.Path {
			key += "[" + segment + "]"
		}
		key += "[" + string(filter.Op) + "]"
		values.Set(key, encodeScalar(filter.Value))
	}

	for _, populate := range q.Populate {
		encodePopulate(values, "populate", populate)
	}

	for i, sort := range q.Sort {
		direction := sort.Direction
		if direction == "" {
			direction = Asc
		}
		values.Set(fmt.Sprintf("sort[%d]", i), sort.Field+":"+string(direction))
	}

	if q.Pagination != nil {
		values.Set("pagination[page]", strconv.Itoa(q.Pagination.Page))
		values.Set("pagination[pageSize]", strconv.Itoa(q.Pagination.PageSize))
	}

	return values
}

// String returns the canonical encoded form. Gateway cache keys derive from it.
func (q Query) String() string {
	return q.Encode().Encode()
}

func encodePopulate(values url.Values, prefix string, p Populate) {
	key := prefix + "[" + p.Relation + "]"

	if p.All {
		values.Set(key+"[populate]", "*")
		return
	}

	for i, field := range p.Fields {
		values.Set(fmt.Sprintf("%s[fields][%d]", key, i), field)
	}

	for _, nested := range p.Nested {
		encodePopulate(values, key+"[populate]", nested)
	}

	if len(p.Fields) == 0 && len(p.Nested) == 0 {
		values.Set(key, "true")
	}
}

func encodeScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
