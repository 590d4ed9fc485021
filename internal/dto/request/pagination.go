package request

import (
	"net/url"

	"movie-theater/pkg/utils"
)

// Catalog pages default to ten cards, the movies grid never shows more than 100.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PageRequest selects one page of a list by 1-based page number and size.
type PageRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// PageFromQuery reads ?page= and ?per_page=, falling back to the first page of
// DefaultPerPage for missing or non-positive values.
func PageFromQuery(query url.Values) PageRequest {
	return PageRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), DefaultPerPage),
	}
}

func (p PageRequest) Number() int {
	return max(p.Page, 1)
}

func (p PageRequest) Size() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	return min(p.PerPage, MaxPerPage)
}

func (p PageRequest) Offset() int {
	return utils.CalculateOffset(p.Number(), p.Size())
}
