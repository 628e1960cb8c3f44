package search

import (
	"sort"
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/getmockd/magemock/pkg/magento"
)

// Result is the envelope every listing endpoint answers with.
type Result struct {
	Items          []magento.Record `json:"items"`
	SearchCriteria Criteria         `json:"search_criteria"`
	TotalCount     int              `json:"total_count"`
}

// Apply filters, sorts and paginates items. TotalCount counts the matching
// items before pagination. items is not modified.
func Apply(items []magento.Record, c Criteria) (*Result, error) {
	matched := make([]magento.Record, 0, len(items))
	for _, item := range items {
		ok, err := matchGroups(item, c.FilterGroups)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}

	for i := len(c.SortOrders) - 1; i >= 0; i-- {
		order := c.SortOrders[i]
		desc := strings.EqualFold(order.Direction, "desc")
		sort.SliceStable(matched, func(a, b int) bool {
			va, vb := lookup(matched[a], order.Field), lookup(matched[b], order.Field)
			if desc {
				return less(vb, va)
			}
			return less(va, vb)
		})
	}

	total := len(matched)
	if c.FilterGroups == nil {
		c.FilterGroups = []FilterGroup{}
	}
	return &Result{
		Items:          paginate(matched, c.PageSize, c.CurrentPage),
		SearchCriteria: c,
		TotalCount:     total,
	}, nil
}

func matchGroups(item magento.Record, groups []FilterGroup) (bool, error) {
	for _, group := range groups {
		if len(group.Filters) == 0 {
			continue
		}
		hit := false
		for _, f := range group.Filters {
			ok, err := matchFilter(f, lookup(item, f.Field))
			if err != nil {
				return false, err
			}
			if ok {
				hit = true
				break
			}
		}
		if !hit {
			return false, nil
		}
	}
	return true, nil
}

// lookup resolves field in item, falling back to the custom attribute of
// the same code.
func lookup(item magento.Record, field string) any {
	if field == "" {
		return nil
	}
	if results := fieldPath(field).Get(map[string]any(item)); len(results) > 0 {
		return results[0]
	}
	if v, ok := magento.CustomAttribute(item, field); ok {
		return v
	}
	return nil
}

func fieldPath(field string) jp.Expr {
	path := field
	if !strings.HasPrefix(path, "$") {
		path = "$." + path
	}
	x, err := jp.ParseString(path)
	if err != nil {
		return jp.R().C(field)
	}
	return x
}

func less(a, b any) bool {
	if na, ok := numberOf(a); ok {
		if nb, ok := numberOf(b); ok {
			return na < nb
		}
	}
	return textOf(a) < textOf(b)
}

// paginate returns page currentPage (1-based) of pageSize items. A zero
// pageSize returns every item.
func paginate(items []magento.Record, pageSize, currentPage int) []magento.Record {
	if pageSize <= 0 {
		return items
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage-1 > len(items)/pageSize {
		return []magento.Record{}
	}
	start := (currentPage - 1) * pageSize
	if start >= len(items) {
		return []magento.Record{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
