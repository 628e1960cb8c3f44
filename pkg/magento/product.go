package magento

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// DefaultVisibility is the visibility assigned to products created without
// one (catalog and search).
const DefaultVisibility = 4

// Product is a catalog product. Attributes holds every field the mock does
// not interpret (price, name, custom_attributes, extension_attributes, ...).
type Product struct {
	SKU        string
	ID         EntityID
	Attributes Record
	Media      map[int]*MediaEntry
	Stores     map[string]Record
}

// Product document keys with a dedicated Go field.
const (
	keySKU    = "sku"
	keyID     = "id"
	keyMedia  = "media_gallery_entries"
	keyStores = "_stores"
)

// NewProduct returns an empty product for sku.
func NewProduct(sku string) *Product {
	return &Product{
		SKU:        sku,
		Attributes: Record{},
		Media:      make(map[int]*MediaEntry),
	}
}

// MediaIDs returns the gallery entry ids in ascending order.
func (p *Product) MediaIDs() []int {
	return slices.Sorted(maps.Keys(p.Media))
}

// Gallery returns the gallery entries ordered by id.
func (p *Product) Gallery() []*MediaEntry {
	out := make([]*MediaEntry, 0, len(p.Media))
	for _, id := range p.MediaIDs() {
		out = append(out, p.Media[id])
	}
	return out
}

// Record returns the product as a JSON document.
func (p *Product) Record() Record {
	out := p.Attributes.Clone()
	if out == nil {
		out = Record{}
	}
	out[keySKU] = p.SKU
	if p.ID != "" {
		out[keyID] = p.ID
	}
	gallery := make([]any, 0, len(p.Media))
	for _, entry := range p.Gallery() {
		gallery = append(gallery, entry.Clone())
	}
	out[keyMedia] = gallery
	if len(p.Stores) > 0 {
		stores := make(map[string]any, len(p.Stores))
		for code, bag := range p.Stores {
			stores[code] = map[string]any(bag.Clone())
		}
		out[keyStores] = stores
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Record())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Product) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	decoded, err := ProductFromRecord(r)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}

// ProductFromRecord builds a product from a JSON document. Gallery entries
// without an id are numbered after the highest id present.
func ProductFromRecord(r Record) (*Product, error) {
	rest := r.Clone()
	if rest == nil {
		rest = Record{}
	}
	p := NewProduct("")

	if raw, ok := rest[keySKU]; ok {
		sku, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("product sku must be a string, got %T", raw)
		}
		p.SKU = sku
		delete(rest, keySKU)
	}

	if raw, ok := rest[keyID]; ok && raw != nil {
		var pid EntityID
		if err := reencode(raw, &pid); err != nil {
			return nil, fmt.Errorf("product id: %w", err)
		}
		p.ID = pid
	}
	delete(rest, keyID)

	if raw, ok := rest[keyMedia]; ok && raw != nil {
		var entries []*MediaEntry
		if err := reencode(raw, &entries); err != nil {
			return nil, fmt.Errorf("media_gallery_entries: %w", err)
		}
		var pending []*MediaEntry
		for _, e := range entries {
			if e.ID <= 0 {
				pending = append(pending, e)
				continue
			}
			p.Media[e.ID] = e
		}
		for _, e := range pending {
			e.ID = p.NextMediaID()
			p.Media[e.ID] = e
		}
	}
	delete(rest, keyMedia)

	if raw, ok := rest[keyStores]; ok && raw != nil {
		var stores map[string]Record
		if err := reencode(raw, &stores); err != nil {
			return nil, fmt.Errorf("_stores: %w", err)
		}
		p.Stores = stores
	}
	delete(rest, keyStores)

	p.Attributes = rest
	return p, nil
}

// NextMediaID returns max(existing ids)+1, or 1 for an empty gallery.
func (p *Product) NextMediaID() int {
	next := 1
	for id := range p.Media {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// Clone returns a deep copy of the product.
func (p *Product) Clone() *Product {
	c := &Product{
		SKU:        p.SKU,
		ID:         p.ID,
		Attributes: p.Attributes.Clone(),
		Media:      make(map[int]*MediaEntry, len(p.Media)),
	}
	for id, e := range p.Media {
		c.Media[id] = e.Clone()
	}
	if p.Stores != nil {
		c.Stores = make(map[string]Record, len(p.Stores))
		for code, bag := range p.Stores {
			c.Stores[code] = bag.Clone()
		}
	}
	return c
}

// ForStore returns the product document as seen from a store view: the
// store's override bag is laid over the global attributes.
func (p *Product) ForStore(storeCode string) Record {
	doc := p.Record()
	delete(doc, keyStores)
	if bag, ok := p.Stores[storeCode]; ok {
		doc = Merge(doc, bag)
	}
	return doc
}

// CustomAttribute returns the value of a custom attribute and whether it is set.
func (p *Product) CustomAttribute(code string) (any, bool) {
	return CustomAttribute(p.Attributes, code)
}

// CustomAttribute looks up an entry of the custom_attributes list of a
// document by attribute code.
func CustomAttribute(doc Record, code string) (any, bool) {
	list, _ := doc["custom_attributes"].([]any)
	for _, raw := range list {
		attr, ok := asObject(raw)
		if !ok {
			continue
		}
		if attr["attribute_code"] == code {
			return attr["value"], true
		}
	}
	return nil, false
}

func reencode(in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
