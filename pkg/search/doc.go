// Package search implements the search criteria contract of the listing
// endpoints: filter groups, sort orders and pagination read from the
// searchCriteria query parameters.
//
// Filters inside a group are OR-ed and groups are AND-ed. Field names are
// JSONPath-like dotted paths into the listed documents; a field that does not
// resolve is looked up among the document's custom_attributes.
package search
