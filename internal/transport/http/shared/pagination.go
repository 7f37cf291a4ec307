package shared

import (
	"net/http"
	"strconv"
)

type Page struct {
	Limit  int
	Offset int
}

// ParsePagination reads limit/offset from the query string. Missing or
// malformed values fall back to the defaults; limit is capped at maxLimit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) Page {
	page := Page{Limit: defaultLimit}

	if v := queryInt(r, "limit"); v > 0 {
		page.Limit = v
	}
	if v := queryInt(r, "offset"); v > 0 {
		page.Offset = v
	}
	if maxLimit > 0 && page.Limit > maxLimit {
		page.Limit = maxLimit
	}
	return page
}

func queryInt(r *http.Request, key string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
