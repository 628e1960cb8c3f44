package magento

// Attribute is a product attribute definition with its option list.
type Attribute struct {
	Code    string                         `json:"attribute_code"`
	Options []Record                       `json:"options"`
	Stores  map[string]*AttributeStoreView `json:"_stores,omitempty"`
	Extra   Record                         `json:"-"`
}

// AttributeStoreView holds the labels of an attribute as seen from one store.
type AttributeStoreView struct {
	Options []Record `json:"options"`
}

type attributeFields Attribute

// MarshalJSON writes Extra fields at the root of the object.
func (a Attribute) MarshalJSON() ([]byte, error) {
	if a.Options == nil {
		a.Options = []Record{}
	}
	return marshalWithExtra(attributeFields(a), a.Extra)
}

// UnmarshalJSON keeps undeclared fields in Extra.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	var f attributeFields
	extra, err := unmarshalWithExtra(data, &f)
	if err != nil {
		return err
	}
	*a = Attribute(f)
	a.Extra = extra
	return nil
}

// Clone returns a deep copy of the attribute.
func (a *Attribute) Clone() *Attribute {
	c := *a
	c.Extra = a.Extra.Clone()
	c.Options = cloneRecords(a.Options)
	if a.Stores != nil {
		c.Stores = make(map[string]*AttributeStoreView, len(a.Stores))
		for code, view := range a.Stores {
			if view == nil {
				c.Stores[code] = nil
				continue
			}
			c.Stores[code] = &AttributeStoreView{Options: cloneRecords(view.Options)}
		}
	}
	return &c
}

func cloneRecords(in []Record) []Record {
	if in == nil {
		return nil
	}
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
