package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wversluys/fetcharr/pkg/pagination"
)

// ParsePaginationParams reads page and pageSize from the query string.
// Without a pageSize the whole result set is returned.
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{Page: 1}

	qp := r.URL.Query()

	if v := qp.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, fmt.Errorf("page must be a positive integer, got %q", v)
		}
		params.Page = page
	}

	if v := qp.Get("pageSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 0 {
			return params, fmt.Errorf("pageSize must be a non-negative integer, got %q", v)
		}
		params.PageSize = size
	}

	return params, nil
}
