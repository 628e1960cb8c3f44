package server

import "net/http"

// AdminPrefix is the path prefix of the test hooks.
const AdminPrefix = "/__magemock"

// registerRoutes sets up the REST API and admin routes.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Token
	mux.HandleFunc("POST /rest/all/V1/integration/admin/token", s.handleIssueToken)

	// Products
	mux.HandleFunc("GET /rest/all/V1/products", s.handleListProducts)
	mux.HandleFunc("GET /rest/{storeCode}/V1/products", s.handleListProducts)
	mux.HandleFunc("POST /rest/all/V1/products", s.handleCreateProduct)
	mux.HandleFunc("GET /rest/all/V1/products/{sku}", s.handleGetProduct)
	mux.HandleFunc("PUT /rest/all/V1/products/{sku}", s.handleUpdateProduct)
	mux.HandleFunc("PUT /rest/{storeCode}/V1/products/{sku}", s.handleUpdateProductForStore)

	// Media gallery
	mux.HandleFunc("GET /rest/all/V1/products/{sku}/media", s.handleListMedia)
	mux.HandleFunc("POST /rest/all/V1/products/{sku}/media", s.handleAddMedia)
	mux.HandleFunc("PUT /rest/all/V1/products/{sku}/media/{entryId}", s.handleUpdateMedia)

	// Attributes
	mux.HandleFunc("GET /rest/all/V1/products/attributes", s.handleListAttributes)
	mux.HandleFunc("GET /rest/all/V1/products/attributes/{attributeCode}/options", s.handleListAttributeOptions)
	mux.HandleFunc("GET /rest/{storeCode}/V1/products/attributes/{attributeCode}/options", s.handleListAttributeOptions)
	mux.HandleFunc("POST /rest/all/V1/products/attributes/{attributeCode}/options", s.handleAddAttributeOption)

	// Configurable products
	mux.HandleFunc("POST /rest/all/V1/configurable-products/{parentSku}/child", s.handleLinkChild)

	// Categories
	mux.HandleFunc("GET /rest/all/V1/categories/list", s.handleListCategories)

	// Stock
	mux.HandleFunc("GET /rest/all/V1/stockItems/{sku}", s.handleGetStockItem)
	mux.HandleFunc("PUT /rest/all/V1/products/{sku}/stockItems/{stockItemId}", s.handleUpdateStockItem)

	// Sales
	mux.HandleFunc("GET /rest/all/V1/orders", s.handleListOrders)
	mux.HandleFunc("GET /rest/all/V1/orders/{orderId}", s.handleGetOrder)
	mux.HandleFunc("GET /rest/all/V1/invoices", s.handleListInvoices)
	mux.HandleFunc("GET /rest/all/V1/shipments", s.handleListShipments)
	mux.HandleFunc("POST /rest/all/V1/order/{orderId}/ship", s.handleShip)
	mux.HandleFunc("POST /rest/all/V1/order/{orderId}/invoice", s.handleInvoice)
	mux.HandleFunc("POST /rest/all/V1/orders/{orderId}/cancel", s.handleCancel)

	// Test hooks
	mux.HandleFunc("POST "+AdminPrefix+"/reset", s.handleReset)
	mux.HandleFunc("GET "+AdminPrefix+"/health", s.handleHealth)
	mux.HandleFunc("GET "+AdminPrefix+"/requests", s.handleListRequests)
	mux.HandleFunc("DELETE "+AdminPrefix+"/requests", s.handleClearRequests)

	mux.HandleFunc("/", s.handleNoRoute)
}
