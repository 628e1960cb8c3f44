package magento

import "slices"

// OrderStatus is the status of an order.
type OrderStatus string

// Order statuses the mock moves orders through.
const (
	StatusProcessing OrderStatus = "processing"
	StatusComplete   OrderStatus = "complete"
	StatusClosed     OrderStatus = "closed"
	StatusCanceled   OrderStatus = "canceled"
)

var terminalStatuses = []OrderStatus{StatusComplete, StatusClosed, StatusCanceled}

// IsTerminal reports whether a cancellation leaves an order in this status
// untouched.
func (s OrderStatus) IsTerminal() bool {
	return slices.Contains(terminalStatuses, s)
}

// Order is a sales order. Orders are created by seeding; the fulfillment
// engine only mutates them.
type Order struct {
	ID     EntityID     `json:"entity_id"`
	Status OrderStatus  `json:"status"`
	Items  []*OrderItem `json:"items"`
	Extra  Record       `json:"-"`
}

type orderFields Order

// MarshalJSON writes Extra fields at the root of the object.
func (o Order) MarshalJSON() ([]byte, error) {
	if o.Items == nil {
		o.Items = []*OrderItem{}
	}
	return marshalWithExtra(orderFields(o), o.Extra)
}

// UnmarshalJSON keeps undeclared fields in Extra.
func (o *Order) UnmarshalJSON(data []byte) error {
	var f orderFields
	extra, err := unmarshalWithExtra(data, &f)
	if err != nil {
		return err
	}
	*o = Order(f)
	o.Extra = extra
	return nil
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.Extra = o.Extra.Clone()
	c.Items = make([]*OrderItem, len(o.Items))
	for i, it := range o.Items {
		c.Items[i] = it.Clone()
	}
	return &c
}

// OrderItem is one line of an order. A child line of a configurable or
// bundle product points at its parent line through ParentItemID.
type OrderItem struct {
	ItemID       EntityID `json:"item_id"`
	ParentItemID EntityID `json:"parent_item_id,omitempty"`
	SKU          string   `json:"sku,omitempty"`
	QtyOrdered   *float64 `json:"qty_ordered,omitempty"`
	QtyShipped   *float64 `json:"qty_shipped,omitempty"`
	QtyInvoiced  *float64 `json:"qty_invoiced,omitempty"`
	QtyCanceled  *float64 `json:"qty_canceled,omitempty"`
	Extra        Record   `json:"-"`
}

type orderItemFields OrderItem

// MarshalJSON writes Extra fields at the root of the object.
func (it OrderItem) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(orderItemFields(it), it.Extra)
}

// UnmarshalJSON keeps undeclared fields in Extra.
func (it *OrderItem) UnmarshalJSON(data []byte) error {
	var f orderItemFields
	extra, err := unmarshalWithExtra(data, &f)
	if err != nil {
		return err
	}
	*it = OrderItem(f)
	it.Extra = extra
	return nil
}

// HasParent reports whether the item is the child line of another item.
func (it *OrderItem) HasParent() bool {
	return it.ParentItemID != ""
}

// Clone returns a deep copy of the item.
func (it *OrderItem) Clone() *OrderItem {
	c := *it
	c.QtyOrdered = cloneQty(it.QtyOrdered)
	c.QtyShipped = cloneQty(it.QtyShipped)
	c.QtyInvoiced = cloneQty(it.QtyInvoiced)
	c.QtyCanceled = cloneQty(it.QtyCanceled)
	c.Extra = it.Extra.Clone()
	return &c
}

// Qty returns a pointer to v.
func Qty(v float64) *float64 {
	return &v
}

// QtyValue returns the quantity or 0 when it was never set.
func QtyValue(q *float64) float64 {
	if q == nil {
		return 0
	}
	return *q
}

func cloneQty(q *float64) *float64 {
	if q == nil {
		return nil
	}
	v := *q
	return &v
}

// Shipment is a shipping document created against an order.
type Shipment struct {
	ID      int      `json:"entity_id"`
	OrderID EntityID `json:"order_id"`
	Comment *string  `json:"comment"`
	Tracks  []Track  `json:"tracks"`
}

// Track is a carrier tracking entry on a shipment.
type Track struct {
	TrackNumber string `json:"track_number"`
}

// Invoice is a billing document created against an order.
type Invoice struct {
	ID      int      `json:"entity_id"`
	OrderID EntityID `json:"order_id"`
}
