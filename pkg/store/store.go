package store

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/text/cases"

	"github.com/getmockd/magemock/internal/id"
	"github.com/getmockd/magemock/pkg/logging"
	"github.com/getmockd/magemock/pkg/magento"
)

// First values of the per-kind sequences.
const (
	firstShipmentID  = 1
	firstInvoiceID   = 1
	firstMediaFile   = 0
	firstProductID   = 1000
	firstOptionValue = 1000
)

// Store is the in-memory entity store of one mock instance.
type Store struct {
	mu  sync.RWMutex
	log *slog.Logger
	tx  *Tx
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{log: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.tx = newTx()
	return s
}

// Update runs fn with exclusive access to every collection.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tx)
}

// View runs fn with shared read access. fn must not mutate anything it
// reaches through tx.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.tx)
}

// Reset empties every collection and rewinds every sequence.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tx = newTx()
	s.log.Info("store reset")
}

// Overview returns the number of entities per collection.
func (s *Store) Overview() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"orders":      s.tx.orders.len(),
		"shipments":   len(s.tx.shipments),
		"invoices":    len(s.tx.invoices),
		"products":    s.tx.products.len(),
		"stock_items": s.tx.stockItems.len(),
		"attributes":  s.tx.attributes.len(),
		"categories":  len(s.tx.categories),
	}
}

// Tx is the set of collections an Update or View callback operates on.
type Tx struct {
	orders     *ordered[magento.EntityID, *magento.Order]
	shipments  []*magento.Shipment
	invoices   []*magento.Invoice
	products   *ordered[string, *magento.Product]
	stockItems *ordered[string, magento.Record]
	attributes *ordered[string, *magento.Attribute]
	categories []magento.Record

	shipmentSeq *id.Sequence
	invoiceSeq  *id.Sequence
	mediaSeq    *id.Sequence
	productSeq  *id.Sequence
	optionSeq   *id.Sequence
}

func newTx() *Tx {
	return &Tx{
		orders:      newOrdered[magento.EntityID, *magento.Order](),
		products:    newOrdered[string, *magento.Product](),
		stockItems:  newOrdered[string, magento.Record](),
		attributes:  newOrdered[string, *magento.Attribute](),
		shipmentSeq: id.NewSequence(firstShipmentID),
		invoiceSeq:  id.NewSequence(firstInvoiceID),
		mediaSeq:    id.NewSequence(firstMediaFile),
		productSeq:  id.NewSequence(firstProductID),
		optionSeq:   id.NewSequence(firstOptionValue),
	}
}

// --- Orders ---

// Order returns the order with the given id.
func (tx *Tx) Order(orderID magento.EntityID) (*magento.Order, bool) {
	return tx.orders.get(orderID)
}

// PutOrder stores an order, replacing any order with the same id.
func (tx *Tx) PutOrder(o *magento.Order) {
	tx.orders.put(o.ID, o)
}

// Orders returns all orders in insertion order.
func (tx *Tx) Orders() []*magento.Order {
	return tx.orders.values()
}

// --- Shipments ---

// AddShipment appends a shipment for orderID under the next shipment id.
func (tx *Tx) AddShipment(orderID magento.EntityID, comment *string, tracks []magento.Track) *magento.Shipment {
	if tracks == nil {
		tracks = []magento.Track{}
	}
	sh := &magento.Shipment{
		ID:      tx.shipmentSeq.Next(),
		OrderID: orderID,
		Comment: comment,
		Tracks:  tracks,
	}
	tx.shipments = append(tx.shipments, sh)
	return sh
}

// PutShipment stores a seeded shipment. A zero id takes the next sequence value.
func (tx *Tx) PutShipment(sh *magento.Shipment) {
	if sh.ID <= 0 {
		sh.ID = tx.shipmentSeq.Next()
	} else {
		tx.shipmentSeq.Observe(sh.ID)
	}
	if sh.Tracks == nil {
		sh.Tracks = []magento.Track{}
	}
	tx.shipments = append(tx.shipments, sh)
}

// Shipments returns all shipments in creation order.
func (tx *Tx) Shipments() []*magento.Shipment {
	return tx.shipments
}

// HasShipmentFor reports whether any shipment references orderID.
func (tx *Tx) HasShipmentFor(orderID magento.EntityID) bool {
	for _, sh := range tx.shipments {
		if sh.OrderID == orderID {
			return true
		}
	}
	return false
}

// --- Invoices ---

// AddInvoice appends an invoice for orderID under the next invoice id.
func (tx *Tx) AddInvoice(orderID magento.EntityID) *magento.Invoice {
	inv := &magento.Invoice{ID: tx.invoiceSeq.Next(), OrderID: orderID}
	tx.invoices = append(tx.invoices, inv)
	return inv
}

// PutInvoice stores a seeded invoice. A zero id takes the next sequence value.
func (tx *Tx) PutInvoice(inv *magento.Invoice) {
	if inv.ID <= 0 {
		inv.ID = tx.invoiceSeq.Next()
	} else {
		tx.invoiceSeq.Observe(inv.ID)
	}
	tx.invoices = append(tx.invoices, inv)
}

// Invoices returns all invoices in creation order.
func (tx *Tx) Invoices() []*magento.Invoice {
	return tx.invoices
}

// HasInvoiceFor reports whether any invoice references orderID.
func (tx *Tx) HasInvoiceFor(orderID magento.EntityID) bool {
	for _, inv := range tx.invoices {
		if inv.OrderID == orderID {
			return true
		}
	}
	return false
}

// --- Products ---

// Product returns the product stored under exactly sku.
func (tx *Tx) Product(sku string) (*magento.Product, bool) {
	return tx.products.get(sku)
}

// FindProduct looks a product up by sku ignoring case, the way the
// platform's product read endpoint does.
func (tx *Tx) FindProduct(sku string) (*magento.Product, bool) {
	if p, ok := tx.products.get(sku); ok {
		return p, true
	}
	folded := cases.Fold().String(sku)
	for _, p := range tx.products.values() {
		if cases.Fold().String(p.SKU) == folded {
			return p, true
		}
	}
	return nil, false
}

// PutProduct stores a product under its sku. Products without an id get the
// next product id.
func (tx *Tx) PutProduct(p *magento.Product) {
	if p.ID == "" {
		p.ID = tx.NextProductID()
	}
	tx.products.put(p.SKU, p)
}

// Products returns all products in insertion order.
func (tx *Tx) Products() []*magento.Product {
	return tx.products.values()
}

// NextProductID returns a new product id.
func (tx *Tx) NextProductID() magento.EntityID {
	return magento.IntID(tx.productSeq.Next())
}

// NextMediaFile returns a new synthesized gallery file name. Names are unique
// across every product for the lifetime of the store.
func (tx *Tx) NextMediaFile() string {
	return fmt.Sprintf("fakefile%d.jpg", tx.mediaSeq.Next())
}

// --- Stock items ---

// StockItem returns the stock item stored for sku.
func (tx *Tx) StockItem(sku string) (magento.Record, bool) {
	return tx.stockItems.get(sku)
}

// PutStockItem stores the stock item of sku.
func (tx *Tx) PutStockItem(sku string, item magento.Record) {
	tx.stockItems.put(sku, item)
}

// --- Attributes ---

// Attribute returns the attribute definition for code.
func (tx *Tx) Attribute(code string) (*magento.Attribute, bool) {
	return tx.attributes.get(code)
}

// PutAttribute stores an attribute definition under its code.
func (tx *Tx) PutAttribute(a *magento.Attribute) {
	tx.attributes.put(a.Code, a)
}

// Attributes returns all attribute definitions in insertion order.
func (tx *Tx) Attributes() []*magento.Attribute {
	return tx.attributes.values()
}

// NextOptionValue returns a new attribute option value.
func (tx *Tx) NextOptionValue() string {
	return strconv.Itoa(tx.optionSeq.Next())
}

// --- Categories ---

// AddCategory appends a category.
func (tx *Tx) AddCategory(c magento.Record) {
	tx.categories = append(tx.categories, c)
}

// Categories returns all categories in insertion order.
func (tx *Tx) Categories() []magento.Record {
	return tx.categories
}
