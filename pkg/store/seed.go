package store

import (
	"errors"
	"fmt"

	"github.com/getmockd/magemock/pkg/magento"
)

// Fixtures is a batch of externally created entities loaded into a Store.
type Fixtures struct {
	Orders     []*magento.Order          `json:"orders,omitempty"`
	Products   []*magento.Product        `json:"products,omitempty"`
	StockItems map[string]magento.Record `json:"stock_items,omitempty"`
	Attributes []*magento.Attribute      `json:"attributes,omitempty"`
	Categories []magento.Record          `json:"categories,omitempty"`
	Shipments  []*magento.Shipment       `json:"shipments,omitempty"`
	Invoices   []*magento.Invoice        `json:"invoices,omitempty"`
}

// Append adds every entity of other to f.
func (f *Fixtures) Append(other *Fixtures) {
	if other == nil {
		return
	}
	f.Orders = append(f.Orders, other.Orders...)
	f.Products = append(f.Products, other.Products...)
	f.Attributes = append(f.Attributes, other.Attributes...)
	f.Categories = append(f.Categories, other.Categories...)
	f.Shipments = append(f.Shipments, other.Shipments...)
	f.Invoices = append(f.Invoices, other.Invoices...)
	for sku, item := range other.StockItems {
		if f.StockItems == nil {
			f.StockItems = make(map[string]magento.Record)
		}
		f.StockItems[sku] = item
	}
}

// Seed inserts the fixtures. Entities are stored as given; the caller gives
// up ownership of them.
func (s *Store) Seed(f *Fixtures) error {
	if f == nil {
		return nil
	}
	if err := f.validate(); err != nil {
		return err
	}

	err := s.Update(func(tx *Tx) error {
		for _, o := range f.Orders {
			tx.PutOrder(o)
		}
		for _, p := range f.Products {
			tx.PutProduct(p)
		}
		for sku, item := range f.StockItems {
			tx.PutStockItem(sku, item)
		}
		for _, a := range f.Attributes {
			tx.PutAttribute(a)
		}
		for _, c := range f.Categories {
			tx.AddCategory(c)
		}
		for _, sh := range f.Shipments {
			tx.PutShipment(sh)
		}
		for _, inv := range f.Invoices {
			tx.PutInvoice(inv)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("store seeded",
		"orders", len(f.Orders),
		"products", len(f.Products),
		"stock_items", len(f.StockItems),
		"attributes", len(f.Attributes),
		"categories", len(f.Categories),
		"shipments", len(f.Shipments),
		"invoices", len(f.Invoices),
	)
	return nil
}

func (f *Fixtures) validate() error {
	var errs []error
	for i, o := range f.Orders {
		if o == nil || o.ID == "" {
			errs = append(errs, fmt.Errorf("orders[%d]: missing entity_id", i))
		}
	}
	for i, p := range f.Products {
		if p == nil || p.SKU == "" {
			errs = append(errs, fmt.Errorf("products[%d]: missing sku", i))
		}
	}
	for i, a := range f.Attributes {
		if a == nil || a.Code == "" {
			errs = append(errs, fmt.Errorf("attributes[%d]: missing attribute_code", i))
		}
	}
	return errors.Join(errs...)
}
