package fulfillment

import (
	"context"
	"log/slog"

	"github.com/getmockd/magemock/pkg/logging"
	"github.com/getmockd/magemock/pkg/magento"
	"github.com/getmockd/magemock/pkg/store"
)

// Engine applies ship, invoice and cancel operations to the orders of a Store.
type Engine struct {
	store *store.Store
	log   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an Engine backed by st.
func New(st *store.Store, opts ...Option) *Engine {
	if st == nil {
		panic("fulfillment.New: store must not be nil")
	}
	e := &Engine{store: st, log: logging.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ship records a shipment for the order and returns the new shipment id.
func (e *Engine) Ship(ctx context.Context, orderID magento.EntityID, req ShipRequest) (int, error) {
	var shipmentID int
	err := e.store.Update(func(tx *store.Tx) error {
		order, ok := tx.Order(orderID)
		if !ok {
			return magento.OrderNotFound(orderID)
		}

		fullyShipped := reconcile(order.Items, req.Items, shippedLedger)
		if fullyShipped && tx.HasInvoiceFor(orderID) {
			order.Status = magento.StatusComplete
		}

		shipmentID = tx.AddShipment(orderID, req.comment(), req.tracks()).ID

		e.log.InfoContext(ctx, "shipment created",
			"order_id", orderID,
			"shipment_id", shipmentID,
			"fully_shipped", fullyShipped,
			"status", order.Status,
		)
		return nil
	})
	return shipmentID, err
}

// Invoice records an invoice for the order and returns the new invoice id.
func (e *Engine) Invoice(ctx context.Context, orderID magento.EntityID, req InvoiceRequest) (int, error) {
	var invoiceID int
	err := e.store.Update(func(tx *store.Tx) error {
		order, ok := tx.Order(orderID)
		if !ok {
			return magento.OrderNotFound(orderID)
		}

		fullyInvoiced := reconcile(order.Items, req.Items, invoicedLedger)
		if fullyInvoiced && tx.HasShipmentFor(orderID) {
			order.Status = magento.StatusComplete
		}

		invoiceID = tx.AddInvoice(orderID).ID

		e.log.InfoContext(ctx, "invoice created",
			"order_id", orderID,
			"invoice_id", invoiceID,
			"fully_invoiced", fullyInvoiced,
			"status", order.Status,
		)
		return nil
	})
	return invoiceID, err
}

// Cancel cancels the order. Orders already complete, closed or canceled are
// left untouched. An order with a shipment or an invoice becomes complete
// instead of canceled. Either way every quantity neither shipped nor
// invoiced is marked canceled.
func (e *Engine) Cancel(ctx context.Context, orderID magento.EntityID) error {
	return e.store.Update(func(tx *store.Tx) error {
		order, ok := tx.Order(orderID)
		if !ok {
			return magento.OrderNotFound(orderID)
		}
		if order.Status.IsTerminal() {
			e.log.DebugContext(ctx, "cancel ignored", "order_id", orderID, "status", order.Status)
			return nil
		}

		status := magento.StatusCanceled
		if tx.HasShipmentFor(orderID) || tx.HasInvoiceFor(orderID) {
			status = magento.StatusComplete
		}
		order.Status = status

		for _, item := range order.Items {
			if item.QtyOrdered == nil {
				continue
			}
			used := max(magento.QtyValue(item.QtyShipped), magento.QtyValue(item.QtyInvoiced))
			item.QtyCanceled = magento.Qty(*item.QtyOrdered - used)
		}

		e.log.InfoContext(ctx, "order canceled", "order_id", orderID, "status", status)
		return nil
	})
}
