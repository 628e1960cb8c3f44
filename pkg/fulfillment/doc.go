// Package fulfillment reconciles shipment, invoice and cancellation requests
// against the items of an order.
//
// Every operation runs inside a single store.Update, so quantity accounting,
// the status transition and the new document id are applied as one step.
//
// The rules mirror the reference platform's mock behaviour rather than the
// real platform:
//
//   - a requested line matches an item by item_id or by the item's
//     parent_item_id, and the first matching line wins
//   - requested quantities are applied as given, even when they exceed what
//     is left to fulfil
//   - items no line matches are fulfilled in full
//   - an order becomes complete when this pass fulfilled every item and the
//     opposite document (invoice for shipments, shipment for invoices)
//     already exists for it, whatever the order's current status
package fulfillment
