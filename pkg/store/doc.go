// Package store provides the in-memory entity store behind the mock API.
//
// A Store holds every collection the mocked platform exposes: orders,
// shipments, invoices, products with their media galleries, stock items,
// attribute definitions and categories. One Store belongs to one running
// mock instance; constructing a new Store or calling Reset starts from empty
// collections and rewound id sequences.
//
// Thread Safety:
//
// All access goes through Update or View. Update holds the store's write
// lock for the whole callback, so a fulfillment or gallery operation reads,
// numbers and mutates as a single step and no other operation observes a
// half-updated order. View holds the read lock; its callback must not mutate.
// The Tx handed to a callback must not be retained after it returns.
//
// Usage:
//
//	st := store.New()
//	_ = st.Seed(&store.Fixtures{Orders: []*magento.Order{order}})
//
//	err := st.Update(func(tx *store.Tx) error {
//	    o, ok := tx.Order("100")
//	    ...
//	    shipment := tx.AddShipment(o.ID, nil, nil)
//	    return nil
//	})
package store
