package domain

import (
	"math"
	"strings"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	// MaxPage mantém (page-1)*limit dentro de int
	MaxPage = math.MaxInt / MaxPageLimit
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PageParams são os parâmetros comuns das listagens
type PageParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
}

// Normalize aplica os valores padrão e limites de paginação
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if strings.EqualFold(string(p.SortOrder), string(SortAsc)) {
		p.SortOrder = SortAsc
	} else {
		p.SortOrder = SortDesc
	}
	return p
}

func (p PageParams) Offset() uint64 {
	if p.Page < 1 {
		return 0
	}
	return uint64(p.Page-1) * uint64(p.Limit)
}

// OrderBy devolve a cláusula de ordenação com a coluna validada contra a whitelist
func (p PageParams) OrderBy(allowed map[string]string, fallback string) string {
	column, ok := allowed[p.SortBy]
	if !ok {
		column = fallback
	}
	return column + " " + strings.ToUpper(string(p.SortOrder))
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(params PageParams, total int64) Pagination {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int((total + int64(params.Limit) - 1) / int64(params.Limit))
	}
	return Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Page é o resultado paginado de uma listagem
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
