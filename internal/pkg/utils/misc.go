package utils

import "strings"

// MatchesSearch reports whether any of the candidate fields contains the
// query, case-insensitively. An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// MatchesFilter reports whether value equals the filter; an empty filter
// means "all".
func MatchesFilter(filter, value string) bool {
	return filter == "" || filter == value
}

// PageSlice returns the bounds for gateway-side page slicing over an
// already-fetched list.
func PageSlice(total, page, pageSize int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start = (page - 1) * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
