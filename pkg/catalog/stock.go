package catalog

import (
	"context"

	"github.com/getmockd/magemock/pkg/magento"
	"github.com/getmockd/magemock/pkg/store"
)

// GetStockItem returns the stock item of sku.
func (c *Catalog) GetStockItem(_ context.Context, sku string) (magento.Record, error) {
	var out magento.Record
	err := c.store.View(func(tx *store.Tx) error {
		item, ok := tx.StockItem(sku)
		if !ok {
			return magento.StockItemNotFound(sku)
		}
		out = item.Clone()
		return nil
	})
	return out, err
}

// UpdateStockItem deep merges doc into the stock item of sku and returns the
// item id.
func (c *Catalog) UpdateStockItem(ctx context.Context, sku string, doc magento.Record) (any, error) {
	if isSet(doc, "qty") && !isNumeric(doc["qty"]) {
		return nil, &magento.ValidationError{Message: msgQtyInvalid, Field: "qty"}
	}

	var itemID any
	err := c.store.Update(func(tx *store.Tx) error {
		existing, _ := tx.StockItem(sku)
		merged := magento.Merge(existing, doc)
		tx.PutStockItem(sku, merged)
		itemID = merged["item_id"]
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.log.InfoContext(ctx, "stock item updated", "sku", sku, "item_id", itemID)
	return itemID, nil
}
