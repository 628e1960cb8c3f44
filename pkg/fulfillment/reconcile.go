package fulfillment

import "github.com/getmockd/magemock/pkg/magento"

// ledger selects the running quantity an operation accumulates into.
type ledger int

const (
	shippedLedger ledger = iota
	invoicedLedger
)

func (l ledger) done(item *magento.OrderItem) float64 {
	if l == shippedLedger {
		return magento.QtyValue(item.QtyShipped)
	}
	return magento.QtyValue(item.QtyInvoiced)
}

func (l ledger) record(item *magento.OrderItem, qty float64) {
	total := magento.Qty(l.done(item) + qty)
	if l == shippedLedger {
		item.QtyShipped = total
		return
	}
	item.QtyInvoiced = total
}

// remaining is what is left to fulfil on item for the ledger.
func remaining(item *magento.OrderItem, l ledger) float64 {
	return magento.QtyValue(item.QtyOrdered) - magento.QtyValue(item.QtyCanceled) - l.done(item)
}

// matchLine returns the first line addressing item, either directly or
// through its parent line.
func matchLine(item *magento.OrderItem, lines []RequestLine) (RequestLine, bool) {
	for _, line := range lines {
		if line.OrderItemID == item.ItemID {
			return line, true
		}
		if item.HasParent() && line.OrderItemID == item.ParentItemID {
			return line, true
		}
	}
	return RequestLine{}, false
}

// reconcile adds the requested quantities to every item and reports whether
// no matched line asked for less than what was left.
func reconcile(items []*magento.OrderItem, lines []RequestLine, l ledger) bool {
	complete := true
	for _, item := range items {
		qty := remaining(item, l)
		if line, ok := matchLine(item, lines); ok {
			if float64(line.Qty) < qty {
				complete = false
			}
			qty = float64(line.Qty)
		}
		l.record(item, qty)
	}
	return complete
}
