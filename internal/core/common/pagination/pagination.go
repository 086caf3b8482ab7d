package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params carries the page/limit pair parsed from a list request.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination block attached to list responses.
type Meta struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalRecords int64 `json:"total_records"`
	PerPage      int   `json:"per_page"`
}

// FromRequest parses page and limit query parameters, falling back to the
// defaults on anything missing or unusable.
func FromRequest(r *http.Request) Params {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= MaxLimit {
			p.Limit = limit
		}
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// MetaFor computes the response block; total pages is a ceiling division.
func (p Params) MetaFor(totalRecords int64) Meta {
	totalPages := int((totalRecords + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		PerPage:      p.Limit,
	}
}
