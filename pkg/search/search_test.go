package search

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/magemock/pkg/magento"
)

func docs(t *testing.T, s string) []magento.Record {
	t.Helper()
	var out []magento.Record
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

func skus(items []magento.Record) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it["sku"].(string))
	}
	return out
}

var catalog = `[
	{"sku": "A", "price": 10, "status": 1, "type_id": "simple", "name": "Red Shirt",
	 "extension_attributes": {"website_ids": [1]},
	 "custom_attributes": [{"attribute_code": "color", "value": "red"}, {"attribute_code": "tags", "value": "x,y"}]},
	{"sku": "B", "price": 25.5, "status": 2, "type_id": "configurable", "name": "Blue Pants",
	 "custom_attributes": [{"attribute_code": "color", "value": "blue"}]},
	{"sku": "C", "price": 5, "status": 1, "type_id": "simple", "name": "red hat", "special_price": null},
	{"sku": "D", "price": "100", "status": 1, "type_id": "virtual", "name": "Gift Card"}
]`

func TestParse(t *testing.T) {
	q, err := url.ParseQuery(
		"searchCriteria[filter_groups][0][filters][0][field]=sku" +
			"&searchCriteria[filter_groups][0][filters][0][value]=A" +
			"&searchCriteria[filter_groups][0][filters][1][field]=sku" +
			"&searchCriteria[filter_groups][0][filters][1][value]=B" +
			"&searchCriteria[filterGroups][1][filters][0][field]=price" +
			"&searchCriteria[filterGroups][1][filters][0][value]=5" +
			"&searchCriteria[filterGroups][1][filters][0][conditionType]=gt" +
			"&searchCriteria[sortOrders][0][field]=price" +
			"&searchCriteria[sortOrders][0][direction]=DESC" +
			"&searchCriteria[pageSize]=20" +
			"&searchCriteria[current_page]=2" +
			"&fields=items[sku]")
	require.NoError(t, err)

	c, err := Parse(q)
	require.NoError(t, err)
	assert.Equal(t, Criteria{
		FilterGroups: []FilterGroup{
			{Filters: []Filter{{Field: "sku", Value: "A"}, {Field: "sku", Value: "B"}}},
			{Filters: []Filter{{Field: "price", Value: "5", ConditionType: "gt"}}},
		},
		SortOrders:  []SortOrder{{Field: "price", Direction: "DESC"}},
		PageSize:    20,
		CurrentPage: 2,
	}, c)
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, []FilterGroup{}, c.FilterGroups)
	assert.Zero(t, c.PageSize)
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"searchCriteria[pageSize]=ten",
		"searchCriteria[currentPage]=-1",
		"searchCriteria[filter_groups][x][filters][0][field]=sku",
		"searchCriteria[filter_groups][0",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			q, err := url.ParseQuery(raw)
			require.NoError(t, err)
			_, err = Parse(q)
			require.Error(t, err)
			assert.True(t, magento.IsValidation(err))
		})
	}
}

func TestApply_Conditions(t *testing.T) {
	items := docs(t, catalog)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "default eq", filter: Filter{Field: "type_id", Value: "simple"}, want: []string{"A", "C"}},
		{name: "eq number", filter: Filter{Field: "price", Value: "25.5", ConditionType: "eq"}, want: []string{"B"}},
		{name: "neq", filter: Filter{Field: "status", Value: "1", ConditionType: "neq"}, want: []string{"B"}},
		{name: "like", filter: Filter{Field: "name", Value: "red%", ConditionType: "like"}, want: []string{"A", "C"}},
		{name: "like underscore", filter: Filter{Field: "sku", Value: "_", ConditionType: "like"}, want: []string{"A", "B", "C", "D"}},
		{name: "nlike", filter: Filter{Field: "name", Value: "%red%", ConditionType: "nlike"}, want: []string{"B", "D"}},
		{name: "in", filter: Filter{Field: "sku", Value: "A, D", ConditionType: "in"}, want: []string{"A", "D"}},
		{name: "nin", filter: Filter{Field: "sku", Value: "A,D", ConditionType: "nin"}, want: []string{"B", "C"}},
		{name: "gt numeric", filter: Filter{Field: "price", Value: "9", ConditionType: "gt"}, want: []string{"A", "B", "D"}},
		{name: "gteq", filter: Filter{Field: "price", Value: "10", ConditionType: "gteq"}, want: []string{"A", "B", "D"}},
		{name: "lt", filter: Filter{Field: "price", Value: "10", ConditionType: "lt"}, want: []string{"C"}},
		{name: "lteq", filter: Filter{Field: "price", Value: "10", ConditionType: "lteq"}, want: []string{"A", "C"}},
		{name: "null", filter: Filter{Field: "special_price", ConditionType: "null"}, want: []string{"A", "B", "C", "D"}},
		{name: "notnull", filter: Filter{Field: "custom_attributes", ConditionType: "notnull"}, want: []string{"A", "B"}},
		{name: "custom attribute", filter: Filter{Field: "color", Value: "blue"}, want: []string{"B"}},
		{name: "finset", filter: Filter{Field: "tags", Value: "y", ConditionType: "finset"}, want: []string{"A"}},
		{name: "nested path", filter: Filter{Field: "extension_attributes.website_ids[0]", Value: "1"}, want: []string{"A"}},
		{name: "upper case condition", filter: Filter{Field: "sku", Value: "C", ConditionType: "EQ"}, want: []string{"C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Apply(items, Criteria{FilterGroups: []FilterGroup{{Filters: []Filter{tt.filter}}}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, skus(res.Items))
			assert.Equal(t, len(tt.want), res.TotalCount)
		})
	}
}

func TestApply_GroupsAreAndedFiltersAreOred(t *testing.T) {
	items := docs(t, catalog)

	res, err := Apply(items, Criteria{FilterGroups: []FilterGroup{
		{Filters: []Filter{{Field: "sku", Value: "A"}, {Field: "sku", Value: "B"}, {Field: "sku", Value: "C"}}},
		{Filters: []Filter{{Field: "status", Value: "1"}}},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, skus(res.Items))
}

func TestApply_SortAndPaginate(t *testing.T) {
	items := docs(t, catalog)

	res, err := Apply(items, Criteria{
		SortOrders: []SortOrder{{Field: "price", Direction: "desc"}},
		PageSize:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B"}, skus(res.Items))
	assert.Equal(t, 4, res.TotalCount)

	res, err = Apply(items, Criteria{
		SortOrders:  []SortOrder{{Field: "price", Direction: "desc"}},
		PageSize:    2,
		CurrentPage: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, skus(res.Items))

	res, err = Apply(items, Criteria{PageSize: 2, CurrentPage: 5})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 4, res.TotalCount)
}

func TestApply_HugePageDoesNotOverflow(t *testing.T) {
	items := docs(t, catalog)
	q, err := url.ParseQuery("searchCriteria[pageSize]=4611686018427387904&searchCriteria[currentPage]=3")
	require.NoError(t, err)
	c, err := Parse(q)
	require.NoError(t, err)

	var res *Result
	require.NotPanics(t, func() {
		res, err = Apply(items, c)
	})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 4, res.TotalCount)
}

func TestApply_MultipleSortOrders(t *testing.T) {
	items := docs(t, catalog)

	res, err := Apply(items, Criteria{SortOrders: []SortOrder{
		{Field: "status", Direction: "ASC"},
		{Field: "name"},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "A", "C", "B"}, skus(res.Items))
}

func TestApply_UnknownCondition(t *testing.T) {
	_, err := Apply(docs(t, catalog), Criteria{FilterGroups: []FilterGroup{
		{Filters: []Filter{{Field: "sku", Value: "A", ConditionType: "regex"}}},
	}})
	require.Error(t, err)
	assert.True(t, magento.IsValidation(err))
}

func TestResult_JSON(t *testing.T) {
	res, err := Apply(nil, Criteria{})
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items": [], "search_criteria": {"filter_groups": []}, "total_count": 0}`, string(data))
}
