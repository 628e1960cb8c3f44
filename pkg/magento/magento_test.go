package magento

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityID_JSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  EntityID
		out   string
	}{
		{name: "number", input: `12`, want: "12", out: `12`},
		{name: "numeric string", input: `"12"`, want: "12", out: `12`},
		{name: "text", input: `"abc-1"`, want: "abc-1", out: `"abc-1"`},
		{name: "null", input: `null`, want: "", out: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id EntityID
			require.NoError(t, json.Unmarshal([]byte(tt.input), &id))
			assert.Equal(t, tt.want, id)

			out, err := json.Marshal(id)
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(out))
		})
	}
}

func TestMerge(t *testing.T) {
	dst := Record{
		"price": 10.0,
		"extension_attributes": map[string]any{
			"website_ids": []any{1.0},
			"stock":       "in",
		},
	}
	src := Record{
		"price": 20.0,
		"extension_attributes": map[string]any{
			"website_ids": []any{2.0, 3.0},
		},
		"name": "Shirt",
	}

	got := Merge(dst, src)

	assert.Equal(t, 20.0, got["price"])
	assert.Equal(t, "Shirt", got["name"])
	ext := got["extension_attributes"].(map[string]any)
	assert.Equal(t, []any{2.0, 3.0}, ext["website_ids"])
	assert.Equal(t, "in", ext["stock"])

	// dst is left untouched
	assert.Equal(t, 10.0, dst["price"])
	assert.Equal(t, []any{1.0}, dst["extension_attributes"].(map[string]any)["website_ids"])
}

func TestOrder_JSONKeepsExtraFields(t *testing.T) {
	input := `{
		"entity_id": 7,
		"status": "processing",
		"customer_email": "a@example.com",
		"items": [
			{"item_id": 1, "qty_ordered": 5, "name": "Shirt"},
			{"item_id": 2, "parent_item_id": 1, "qty_ordered": 5, "qty_shipped": 0}
		]
	}`

	var order Order
	require.NoError(t, json.Unmarshal([]byte(input), &order))

	assert.Equal(t, EntityID("7"), order.ID)
	assert.Equal(t, StatusProcessing, order.Status)
	assert.Equal(t, "a@example.com", order.Extra["customer_email"])
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Shirt", order.Items[0].Extra["name"])
	assert.Nil(t, order.Items[0].QtyShipped)
	assert.False(t, order.Items[0].HasParent())
	require.NotNil(t, order.Items[1].QtyShipped)
	assert.Zero(t, *order.Items[1].QtyShipped)
	assert.True(t, order.Items[1].HasParent())

	out, err := json.Marshal(order)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "a@example.com", doc["customer_email"])
	assert.Equal(t, 7.0, doc["entity_id"])
	item := doc["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Shirt", item["name"])
	assert.NotContains(t, item, "qty_shipped")
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusProcessing.IsTerminal())
	assert.False(t, OrderStatus("pending").IsTerminal())
	assert.True(t, StatusComplete.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}

func TestOrder_CloneIsDeep(t *testing.T) {
	order := &Order{ID: "1", Items: []*OrderItem{{ItemID: "1", QtyOrdered: Qty(2)}}}
	c := order.Clone()
	*c.Items[0].QtyOrdered = 9
	c.Items[0].QtyShipped = Qty(1)

	assert.Equal(t, 2.0, *order.Items[0].QtyOrdered)
	assert.Nil(t, order.Items[0].QtyShipped)
}

func TestProductFromRecord(t *testing.T) {
	r := Record{
		"sku":   "ABC",
		"id":    "1234",
		"price": 10.0,
		"media_gallery_entries": []any{
			map[string]any{"id": 3.0, "types": []any{"image"}, "file": "a.jpg"},
			map[string]any{"types": []any{"thumbnail"}},
		},
		"_stores": map[string]any{"it_it": map[string]any{"price": 20.0}},
	}

	p, err := ProductFromRecord(r)
	require.NoError(t, err)

	assert.Equal(t, "ABC", p.SKU)
	assert.Equal(t, EntityID("1234"), p.ID)
	assert.Equal(t, 10.0, p.Attributes["price"])
	assert.NotContains(t, p.Attributes, "media_gallery_entries")
	assert.Equal(t, []int{3, 4}, p.MediaIDs())
	assert.Equal(t, 20.0, p.ForStore("it_it")["price"])
	assert.Equal(t, 10.0, p.ForStore("de_de")["price"])
	assert.Equal(t, 5, p.NextMediaID())
}

func TestProductFromRecord_InvalidSKU(t *testing.T) {
	_, err := ProductFromRecord(Record{"sku": 12.0})
	assert.Error(t, err)
}

func TestProduct_CustomAttribute(t *testing.T) {
	p := NewProduct("ABC")
	p.Attributes["custom_attributes"] = []any{
		map[string]any{"attribute_code": "url_key", "value": "abc"},
	}

	v, ok := p.CustomAttribute("url_key")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	_, ok = p.CustomAttribute("color")
	assert.False(t, ok)
}

func TestMediaEntry_DropRoles(t *testing.T) {
	e := &MediaEntry{Types: []string{RoleImage, RoleSmallImage, RoleThumbnail}}
	e.DropRoles([]string{RoleThumbnail, RoleImage})

	assert.Equal(t, []string{RoleSmallImage}, e.Types)
	assert.True(t, e.HasRole(RoleSmallImage))
	assert.False(t, e.HasRole(RoleImage))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(OrderNotFound("1")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(&ValidationError{Message: "bad"}))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(&UnauthorizedError{Message: "Login failed"}))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(assert.AnError))

	assert.True(t, IsNotFound(ProductNotFound("x")))
	assert.Equal(t, "Media not found", MediaNotFound("x", 1).Error())
}
