package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/getmockd/magemock/pkg/catalog"
	"github.com/getmockd/magemock/pkg/fulfillment"
	"github.com/getmockd/magemock/pkg/httputil"
	"github.com/getmockd/magemock/pkg/magento"
	"github.com/getmockd/magemock/pkg/requestlog"
	"github.com/getmockd/magemock/pkg/search"
)

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type productRequest struct {
	Product magento.Record `json:"product"`
}

type mediaRequest struct {
	Entry mediaEntryPayload `json:"entry"`
}

// mediaEntryPayload accepts any JSON for the server-controlled id and file
// fields, which are replaced on save.
type mediaEntryPayload struct {
	magento.MediaEntry
	ID   json.RawMessage `json:"id,omitempty"`
	File json.RawMessage `json:"file,omitempty"`
}

type optionRequest struct {
	Option magento.Record `json:"option"`
}

type childRequest struct {
	ChildSku string `json:"childSku"`
}

type stockItemRequest struct {
	StockItem magento.Record `json:"stockItem"`
}

// storeCode returns the store of the request, catalog.DefaultStore for the
// routes without a store segment.
func storeCode(r *http.Request) string {
	if code := r.PathValue("storeCode"); code != "" {
		return code
	}
	return catalog.DefaultStore
}

// writeList answers a listing endpoint: items filtered, sorted and paged by
// the request's search criteria.
func writeList(w http.ResponseWriter, r *http.Request, items []magento.Record, err error) {
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	criteria, err := search.Parse(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := search.Apply(items, criteria)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, res)
}

// records converts typed entities into the documents listings operate on.
func records[T any](items []T) ([]magento.Record, error) {
	out := make([]magento.Record, 0, len(items))
	for _, item := range items {
		r, err := magento.ToRecord(item)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// respond writes v, or err when it is set.
func respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, v)
}

// --- Token ---

func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	token, err := s.issuer.Issue(req.Username, req.Password)
	respond(w, token, err)
}

// --- Products ---

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Products(r.Context(), storeCode(r))
	writeList(w, r, items, err)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	product, err := s.catalog.CreateProduct(r.Context(), req.Product)
	respond(w, product, err)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.catalog.GetProduct(r.Context(), r.PathValue("sku"))
	respond(w, product, err)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	product, err := s.catalog.UpdateProduct(r.Context(), r.PathValue("sku"), req.Product)
	respond(w, product, err)
}

func (s *Server) handleUpdateProductForStore(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	product, err := s.catalog.UpdateProductForStore(r.Context(), storeCode(r), r.PathValue("sku"), req.Product)
	respond(w, product, err)
}

// --- Media ---

func (s *Server) handleListMedia(w http.ResponseWriter, r *http.Request) {
	entries, err := s.media.List(r.Context(), r.PathValue("sku"))
	respond(w, entries, err)
}

func (s *Server) handleAddMedia(w http.ResponseWriter, r *http.Request) {
	var req mediaRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	entryID, err := s.media.Add(r.Context(), r.PathValue("sku"), req.Entry.MediaEntry)
	respond(w, entryID, err)
}

func (s *Server) handleUpdateMedia(w http.ResponseWriter, r *http.Request) {
	sku := r.PathValue("sku")
	entryID, err := strconv.Atoi(r.PathValue("entryId"))
	if err != nil {
		httputil.WriteError(w, magento.MediaNotFound(sku, 0))
		return
	}
	var req mediaRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	err = s.media.Update(r.Context(), sku, entryID, req.Entry.MediaEntry)
	respond(w, true, err)
}

// --- Attributes ---

func (s *Server) handleListAttributes(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Attributes(r.Context())
	writeList(w, r, items, err)
}

func (s *Server) handleListAttributeOptions(w http.ResponseWriter, r *http.Request) {
	options, err := s.catalog.AttributeOptionsForStore(r.Context(), storeCode(r), r.PathValue("attributeCode"))
	respond(w, options, err)
}

func (s *Server) handleAddAttributeOption(w http.ResponseWriter, r *http.Request) {
	var req optionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := s.catalog.AddAttributeOption(r.Context(), r.PathValue("attributeCode"), req.Option)
	respond(w, res, err)
}

func (s *Server) handleLinkChild(w http.ResponseWriter, r *http.Request) {
	var req childRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	err := s.catalog.LinkConfigurableChild(r.Context(), r.PathValue("parentSku"), req.ChildSku)
	respond(w, true, err)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Categories(r.Context())
	writeList(w, r, items, err)
}

// --- Stock ---

func (s *Server) handleGetStockItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.catalog.GetStockItem(r.Context(), r.PathValue("sku"))
	respond(w, item, err)
}

func (s *Server) handleUpdateStockItem(w http.ResponseWriter, r *http.Request) {
	var req stockItemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	itemID, err := s.catalog.UpdateStockItem(r.Context(), r.PathValue("sku"), req.StockItem)
	respond(w, itemID, err)
}

// --- Sales ---

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	list, err := s.engine.Orders(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, err := records(list)
	writeList(w, r, items, err)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.engine.Order(r.Context(), magento.EntityID(r.PathValue("orderId")))
	respond(w, order, err)
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	list, err := s.engine.Invoices(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, err := records(list)
	writeList(w, r, items, err)
}

func (s *Server) handleListShipments(w http.ResponseWriter, r *http.Request) {
	list, err := s.engine.Shipments(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, err := records(list)
	writeList(w, r, items, err)
}

func (s *Server) handleShip(w http.ResponseWriter, r *http.Request) {
	var req fulfillment.ShipRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	shipmentID, err := s.engine.Ship(r.Context(), magento.EntityID(r.PathValue("orderId")), req)
	respond(w, shipmentID, err)
}

func (s *Server) handleInvoice(w http.ResponseWriter, r *http.Request) {
	var req fulfillment.InvoiceRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	invoiceID, err := s.engine.Invoice(r.Context(), magento.EntityID(r.PathValue("orderId")), req)
	respond(w, invoiceID, err)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	err := s.engine.Cancel(r.Context(), magento.EntityID(r.PathValue("orderId")))
	respond(w, true, err)
}

// --- Test hooks ---

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.store.Reset()
	s.requests.Clear()
	httputil.WriteOK(w, true)
}

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &requestlog.Filter{
		Method: q.Get("method"),
		Path:   q.Get("path"),
	}
	for name, dst := range map[string]*int{
		"status": &filter.StatusCode,
		"limit":  &filter.Limit,
		"offset": &filter.Offset,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httputil.WriteMessage(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s parameter.", name))
			return
		}
		*dst = n
	}

	entries := s.requests.List(filter)
	httputil.WriteOK(w, map[string]any{
		"requests": entries,
		"count":    len(entries),
		"total":    s.requests.Count(),
	})
}

func (s *Server) handleClearRequests(w http.ResponseWriter, _ *http.Request) {
	s.requests.Clear()
	httputil.WriteOK(w, true)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	var uptime time.Duration
	if s.running {
		uptime = time.Since(s.startTime)
	}
	s.mu.Unlock()

	httputil.WriteOK(w, map[string]any{
		"status":   "ok",
		"uptime":   int(uptime.Seconds()),
		"entities": s.store.Overview(),
	})
}

func (s *Server) handleNoRoute(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteNotFound(w, "Request does not match any route.")
}
