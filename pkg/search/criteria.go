package search

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/getmockd/magemock/pkg/magento"
)

const rootParam = "searchCriteria"

// Filter is a single field condition.
type Filter struct {
	Field         string `json:"field"`
	Value         string `json:"value"`
	ConditionType string `json:"condition_type,omitempty"`
}

// FilterGroup is a set of filters of which at least one must match.
type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

// SortOrder orders results by a field.
type SortOrder struct {
	Field     string `json:"field"`
	Direction string `json:"direction,omitempty"`
}

// Criteria is a parsed searchCriteria query.
type Criteria struct {
	FilterGroups []FilterGroup `json:"filter_groups"`
	SortOrders   []SortOrder   `json:"sort_orders,omitempty"`
	PageSize     int           `json:"page_size,omitempty"`
	CurrentPage  int           `json:"current_page,omitempty"`
}

// Parse reads the searchCriteria parameters of a query string. Both the
// snake_case and the camelCase spellings of every key are accepted.
// Parameters outside searchCriteria are ignored.
func Parse(query url.Values) (Criteria, error) {
	var (
		c      Criteria
		groups = make(map[int]map[int]*Filter)
		sorts  = make(map[int]*SortOrder)
	)

	for key, values := range query {
		if len(values) == 0 || !strings.HasPrefix(key, rootParam+"[") {
			continue
		}
		value := values[0]
		segs, err := segments(strings.TrimPrefix(key, rootParam))
		if err != nil {
			return Criteria{}, err
		}

		switch {
		case len(segs) == 1 && isKey(segs[0], "page_size"):
			if c.PageSize, err = intParam(key, value); err != nil {
				return Criteria{}, err
			}
		case len(segs) == 1 && isKey(segs[0], "current_page"):
			if c.CurrentPage, err = intParam(key, value); err != nil {
				return Criteria{}, err
			}
		case len(segs) == 5 && isKey(segs[0], "filter_groups") && segs[2] == "filters":
			g, err := intParam(key, segs[1])
			if err != nil {
				return Criteria{}, err
			}
			f, err := intParam(key, segs[3])
			if err != nil {
				return Criteria{}, err
			}
			if groups[g] == nil {
				groups[g] = make(map[int]*Filter)
			}
			if groups[g][f] == nil {
				groups[g][f] = &Filter{}
			}
			setFilterField(groups[g][f], segs[4], value)
		case len(segs) == 3 && isKey(segs[0], "sort_orders"):
			n, err := intParam(key, segs[1])
			if err != nil {
				return Criteria{}, err
			}
			if sorts[n] == nil {
				sorts[n] = &SortOrder{}
			}
			switch segs[2] {
			case "field":
				sorts[n].Field = value
			case "direction":
				sorts[n].Direction = value
			}
		}
	}

	for _, g := range sortedKeys(groups) {
		var group FilterGroup
		for _, f := range sortedKeys(groups[g]) {
			group.Filters = append(group.Filters, *groups[g][f])
		}
		c.FilterGroups = append(c.FilterGroups, group)
	}
	for _, n := range sortedKeys(sorts) {
		c.SortOrders = append(c.SortOrders, *sorts[n])
	}
	if c.FilterGroups == nil {
		c.FilterGroups = []FilterGroup{}
	}
	return c, nil
}

// segments splits "[a][b][c]" into its bracketed parts.
func segments(s string) ([]string, error) {
	var out []string
	for s != "" {
		if s[0] != '[' {
			return nil, invalidParam(rootParam + s)
		}
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, invalidParam(rootParam + s)
		}
		out = append(out, s[1:end])
		s = s[end+1:]
	}
	return out, nil
}

// isKey matches a snake_case key against its spelling in either case style.
func isKey(seg, snake string) bool {
	if seg == snake {
		return true
	}
	return seg == camel(snake)
}

func camel(snake string) string {
	parts := strings.Split(snake, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func setFilterField(f *Filter, seg, value string) {
	switch {
	case seg == "field":
		f.Field = value
	case seg == "value":
		f.Value = value
	case isKey(seg, "condition_type"):
		f.ConditionType = value
	}
}

func intParam(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, invalidParam(key)
	}
	return n, nil
}

func invalidParam(key string) error {
	return &magento.ValidationError{
		Message: fmt.Sprintf("%q is not a valid search criteria parameter.", key),
		Field:   key,
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
