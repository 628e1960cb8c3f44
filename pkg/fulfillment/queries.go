package fulfillment

import (
	"context"

	"github.com/getmockd/magemock/pkg/magento"
	"github.com/getmockd/magemock/pkg/store"
)

// Order returns a copy of the order.
func (e *Engine) Order(_ context.Context, orderID magento.EntityID) (*magento.Order, error) {
	var out *magento.Order
	err := e.store.View(func(tx *store.Tx) error {
		order, ok := tx.Order(orderID)
		if !ok {
			return magento.OrderLookupFailed(orderID)
		}
		out = order.Clone()
		return nil
	})
	return out, err
}

// Orders returns copies of every order.
func (e *Engine) Orders(_ context.Context) ([]*magento.Order, error) {
	var out []*magento.Order
	err := e.store.View(func(tx *store.Tx) error {
		for _, order := range tx.Orders() {
			out = append(out, order.Clone())
		}
		return nil
	})
	return out, err
}

// Shipments returns copies of every shipment.
func (e *Engine) Shipments(_ context.Context) ([]*magento.Shipment, error) {
	var out []*magento.Shipment
	err := e.store.View(func(tx *store.Tx) error {
		for _, sh := range tx.Shipments() {
			c := *sh
			c.Tracks = append([]magento.Track{}, sh.Tracks...)
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

// Invoices returns copies of every invoice.
func (e *Engine) Invoices(_ context.Context) ([]*magento.Invoice, error) {
	var out []*magento.Invoice
	err := e.store.View(func(tx *store.Tx) error {
		for _, inv := range tx.Invoices() {
			c := *inv
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}
