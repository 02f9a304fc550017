package dto

import (
	"github.com/evmscan/explorer-gateway/internal/domain"
)

// DefaultOffset is the default number of records per page when paging is
// requested without an explicit offset.
const DefaultOffset = 100

// MaxOffset is the maximum allowed records per page, matching the
// upstream's own page-size ceiling.
const MaxOffset = 10000

// PageRequest carries the explorer paging and block-window parameters.
// All fields are optional; zero values are omitted from the upstream
// request so its own defaulting applies.
type PageRequest struct {
	// StartBlock is the inclusive lower bound of the block window.
	StartBlock string `form:"start_block" validate:"omitempty,number"`

	// EndBlock is the inclusive upper bound of the block window.
	EndBlock string `form:"end_block" validate:"omitempty,number"`

	// Page is the 1-based page number.
	Page int `form:"page" validate:"omitempty,gte=1"`

	// Offset is the number of records per page.
	Offset int `form:"offset" validate:"omitempty,gte=1,lte=10000"`

	// Sort orders results by block number.
	Sort string `form:"sort" validate:"omitempty,oneof=asc desc"`
}

// ToPageRange converts the request into the domain paging window,
// normalizing the page size when only a page number was given.
func (p *PageRequest) ToPageRange() domain.PageRange {
	offset := p.Offset
	if p.Page > 0 && offset == 0 {
		offset = DefaultOffset
	}

	if offset > MaxOffset {
		offset = MaxOffset
	}

	return domain.PageRange{
		StartBlock: p.StartBlock,
		EndBlock:   p.EndBlock,
		Page:       p.Page,
		Offset:     offset,
		Sort:       p.Sort,
	}
}

// ListResponse is the generic list envelope for paged explorer results.
type ListResponse[T any] struct {
	// Items is the array of records for this page.
	Items []T `json:"items"`

	// Count is the number of records in this page.
	Count int `json:"count"`
}

// NewListResponse creates a list response, normalizing a nil slice to an
// empty array so the JSON output is always a list.
func NewListResponse[T any](items []T) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &ListResponse[T]{
		Items: items,
		Count: len(items),
	}
}
