package util

import (
	"fmt"
	"strconv"
)

// ListFilter contains common filtering/pagination options for list endpoints
type ListFilter struct {
	// Filters parsed from query parameter
	Filters []QueryFilter
	// Order by clauses parsed from order parameter
	Order []OrderClause
	// Pagination. PerPage 0 means no limit.
	Page    int
	PerPage int
}

// ListParams is the raw, unparsed form of a list request as it arrives from
// an HTTP query string or CLI flags.
type ListParams struct {
	Query   string
	Order   string
	Page    string
	PerPage string
}

// FieldSet names the columns a resource exposes to list requests.
type FieldSet struct {
	Query []string
	Order []string
	// Text is the subset of Query that like may match against.
	Text []string
}

// ParseListFilter parses and validates raw list parameters against the
// fields a resource allows for filtering and ordering.
func ParseListFilter(p ListParams, fields FieldSet) (ListFilter, error) {
	filter := ListFilter{Page: 1}

	if p.Page != "" {
		page, err := strconv.Atoi(p.Page)
		if err != nil || page < 1 {
			return ListFilter{}, fmt.Errorf("invalid page: %s (expected a positive integer)", p.Page)
		}
		filter.Page = page
	}

	if p.PerPage != "" {
		perPage, err := strconv.Atoi(p.PerPage)
		if err != nil || perPage < 0 {
			return ListFilter{}, fmt.Errorf("invalid per_page: %s (expected a non-negative integer)", p.PerPage)
		}
		filter.PerPage = perPage
	}

	filters, err := ParseQueryString(p.Query)
	if err != nil {
		return ListFilter{}, err
	}
	if err := ValidateFilterFields(filters, fields.Query); err != nil {
		return ListFilter{}, err
	}
	if err := ValidateLikeFields(filters, fields.Text); err != nil {
		return ListFilter{}, err
	}
	filter.Filters = filters

	orders, err := ParseOrderString(p.Order)
	if err != nil {
		return ListFilter{}, err
	}
	if err := ValidateOrderFields(orders, fields.Order); err != nil {
		return ListFilter{}, err
	}
	filter.Order = orders

	return filter, nil
}
