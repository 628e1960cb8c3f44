package catalog

import (
	"context"
	"strconv"

	"github.com/getmockd/magemock/pkg/magento"
	"github.com/getmockd/magemock/pkg/store"
)

// CreateProduct validates doc and stores it as a new product under its sku,
// replacing any product with the same sku. The product gets a fresh id.
func (c *Catalog) CreateProduct(ctx context.Context, doc magento.Record) (magento.Record, error) {
	if !isSet(doc, "price") {
		return nil, &magento.ValidationError{Message: msgPriceRequired, Field: "price"}
	}
	if err := checkProduct(doc); err != nil {
		return nil, err
	}

	doc = doc.Clone()
	if !isSet(doc, "visibility") {
		doc["visibility"] = magento.DefaultVisibility
	}
	delete(doc, "id")
	product, err := magento.ProductFromRecord(doc)
	if err != nil {
		return nil, &magento.ValidationError{Message: err.Error()}
	}

	var out magento.Record
	err = c.store.Update(func(tx *store.Tx) error {
		if err := checkURLKey(doc, tx.Products(), ""); err != nil {
			return err
		}
		product.ID = tx.NextProductID()
		tx.PutProduct(product)
		var err error
		out, err = magento.ToRecord(product)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.log.InfoContext(ctx, "product created", "sku", product.SKU, "id", product.ID)
	return out, nil
}

// UpdateProduct deep merges doc into the product stored under sku. A product
// that does not exist yet is created.
func (c *Catalog) UpdateProduct(ctx context.Context, sku string, doc magento.Record) (magento.Record, error) {
	if err := checkProduct(doc); err != nil {
		return nil, err
	}

	var out magento.Record
	err := c.store.Update(func(tx *store.Tx) error {
		if err := checkURLKey(doc, tx.Products(), sku); err != nil {
			return err
		}

		base := magento.Record{}
		if existing, ok := tx.Product(sku); ok {
			base = existing.Record()
		}
		merged := magento.Merge(base, doc)
		merged["sku"] = sku
		if !isSet(merged, "visibility") {
			merged["visibility"] = magento.DefaultVisibility
		}

		product, err := magento.ProductFromRecord(merged)
		if err != nil {
			return &magento.ValidationError{Message: err.Error()}
		}
		tx.PutProduct(product)
		out, err = magento.ToRecord(product)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.log.InfoContext(ctx, "product updated", "sku", sku)
	return out, nil
}

// UpdateProductForStore replaces the override bag of storeCode on the
// product stored under sku.
func (c *Catalog) UpdateProductForStore(ctx context.Context, storeCode, sku string, doc magento.Record) (magento.Record, error) {
	if storeCode == DefaultStore {
		return c.UpdateProduct(ctx, sku, doc)
	}

	var out magento.Record
	err := c.store.Update(func(tx *store.Tx) error {
		product, ok := tx.Product(sku)
		if !ok {
			return magento.ProductNotFound(sku)
		}
		bag := doc.Clone()
		if bag == nil {
			bag = magento.Record{}
		}
		delete(bag, "_stores")
		if product.Stores == nil {
			product.Stores = make(map[string]magento.Record)
		}
		product.Stores[storeCode] = bag

		var err error
		out, err = magento.ToRecord(product)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.log.InfoContext(ctx, "product store view updated", "sku", sku, "store", storeCode)
	return out, nil
}

// GetProduct returns the product whose sku matches ignoring case.
func (c *Catalog) GetProduct(_ context.Context, sku string) (magento.Record, error) {
	var out magento.Record
	err := c.store.View(func(tx *store.Tx) error {
		product, ok := tx.FindProduct(sku)
		if !ok {
			return magento.ProductLookupFailed(sku)
		}
		var err error
		out, err = magento.ToRecord(product)
		return err
	})
	return out, err
}

// Products returns every product as seen from storeCode. Store views other
// than DefaultStore see their override bag laid over the global values.
func (c *Catalog) Products(_ context.Context, storeCode string) ([]magento.Record, error) {
	var out []magento.Record
	err := c.store.View(func(tx *store.Tx) error {
		for _, product := range tx.Products() {
			var doc any = product
			if storeCode != "" && storeCode != DefaultStore {
				doc = product.ForStore(storeCode)
			}
			r, err := magento.ToRecord(doc)
			if err != nil {
				return err
			}
			out = append(out, r)
		}
		return nil
	})
	return out, err
}

// LinkConfigurableChild adds the id of childSku to the configurable product
// links of parentSku.
func (c *Catalog) LinkConfigurableChild(ctx context.Context, parentSku, childSku string) error {
	err := c.store.Update(func(tx *store.Tx) error {
		parent, ok := tx.Product(parentSku)
		if !ok {
			return &magento.NotFoundError{Resource: "product", ID: parentSku, Message: msgChildMissing}
		}
		child, ok := tx.Product(childSku)
		if !ok {
			return &magento.NotFoundError{Resource: "product", ID: childSku, Message: msgChildMissing}
		}

		if parent.Attributes == nil {
			parent.Attributes = magento.Record{}
		}
		ext := object(parent.Attributes["extension_attributes"])
		if ext == nil {
			ext = make(map[string]any)
			parent.Attributes["extension_attributes"] = ext
		}
		links, _ := ext["configurable_product_links"].([]any)
		for _, link := range links {
			if sameValue(link, child.ID) {
				return &magento.ValidationError{Message: msgChildLinked, Field: "childSku"}
			}
		}
		ext["configurable_product_links"] = append(links, jsonID(child.ID))
		return nil
	})
	if err != nil {
		return err
	}
	c.log.InfoContext(ctx, "configurable child linked", "parent_sku", parentSku, "child_sku", childSku)
	return nil
}

// jsonID returns id the way a decoded JSON document holds it.
func jsonID(id magento.EntityID) any {
	if n, err := strconv.ParseFloat(string(id), 64); err == nil {
		return n
	}
	return string(id)
}
