package catalog

import (
	"context"
	"fmt"

	"github.com/getmockd/magemock/pkg/magento"
	"github.com/getmockd/magemock/pkg/store"
)

// legacyOptionIDVersion is the platform version whose option create call
// answers with the new option id instead of true.
const legacyOptionIDVersion = "2.3"

// Attributes returns every attribute definition.
func (c *Catalog) Attributes(_ context.Context) ([]magento.Record, error) {
	var out []magento.Record
	err := c.store.View(func(tx *store.Tx) error {
		for _, attr := range tx.Attributes() {
			r, err := magento.ToRecord(attr)
			if err != nil {
				return err
			}
			out = append(out, r)
		}
		return nil
	})
	return out, err
}

// AddAttributeOption appends option to the attribute with a freshly assigned
// value.
func (c *Catalog) AddAttributeOption(ctx context.Context, code string, option magento.Record) (any, error) {
	var value string
	err := c.store.Update(func(tx *store.Tx) error {
		attr, ok := tx.Attribute(code)
		if !ok {
			return magento.AttributeNotFound(code)
		}
		opt := option.Clone()
		if opt == nil {
			opt = magento.Record{}
		}
		value = tx.NextOptionValue()
		opt["value"] = value
		attr.Options = append(attr.Options, opt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "attribute option added", "attribute_code", code, "value", value)
	if c.version == legacyOptionIDVersion {
		return fmt.Sprintf("id_%s", value), nil
	}
	return true, nil
}

// AttributeOptions returns the global options of an attribute.
func (c *Catalog) AttributeOptions(_ context.Context, code string) ([]magento.Record, error) {
	var out []magento.Record
	err := c.store.View(func(tx *store.Tx) error {
		attr, ok := tx.Attribute(code)
		if !ok {
			return magento.AttributeNotFound(code)
		}
		out = cloneOptions(attr.Options)
		return nil
	})
	return out, err
}

// AttributeOptionsForStore returns the options of an attribute as labelled
// for storeCode. Attributes without labels for the store are not found.
func (c *Catalog) AttributeOptionsForStore(ctx context.Context, storeCode, code string) ([]magento.Record, error) {
	if storeCode == DefaultStore {
		return c.AttributeOptions(ctx, code)
	}
	var out []magento.Record
	err := c.store.View(func(tx *store.Tx) error {
		attr, ok := tx.Attribute(code)
		if !ok {
			return magento.AttributeNotFound(code)
		}
		view := attr.Stores[storeCode]
		if view == nil {
			return magento.AttributeNotFound(code)
		}
		out = cloneOptions(view.Options)
		return nil
	})
	return out, err
}

func cloneOptions(in []magento.Record) []magento.Record {
	out := make([]magento.Record, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}
