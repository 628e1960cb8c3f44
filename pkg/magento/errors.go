package magento

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError is returned when an order, product, media entry, attribute
// or stock item does not exist.
type NotFoundError struct {
	Resource string
	ID       string
	// Message is the text the platform answers with.
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// ValidationError is returned when a request body is rejected.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// UnauthorizedError is returned when token issuance is refused.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *UnauthorizedError) StatusCode() int {
	return http.StatusUnauthorized
}

// StatusCodeError is an interface for errors that have an HTTP status code.
type StatusCodeError interface {
	error
	StatusCode() int
}

// StatusCode returns the HTTP status code err maps to, 500 for errors that
// carry none.
func StatusCode(err error) int {
	var sc StatusCodeError
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// OrderNotFound is returned by the fulfillment engine for unknown orders.
func OrderNotFound(orderID EntityID) *NotFoundError {
	return &NotFoundError{Resource: "order", ID: string(orderID), Message: "Order with the given ID does not exist."}
}

// OrderLookupFailed is returned by the order read endpoint.
func OrderLookupFailed(orderID EntityID) *NotFoundError {
	return &NotFoundError{Resource: "order", ID: string(orderID), Message: "Order not found."}
}

// ProductNotFound is returned for unknown skus.
func ProductNotFound(sku string) *NotFoundError {
	return &NotFoundError{Resource: "product", ID: sku, Message: "Product not found"}
}

// ProductLookupFailed is returned by the product read endpoint.
func ProductLookupFailed(sku string) *NotFoundError {
	return &NotFoundError{Resource: "product", ID: sku, Message: "Product not found."}
}

// MediaNotFound is returned when a gallery entry does not exist.
func MediaNotFound(sku string, entryID int) *NotFoundError {
	return &NotFoundError{Resource: "media", ID: fmt.Sprintf("%s/%d", sku, entryID), Message: "Media not found"}
}

// AttributeNotFound is returned for unknown attribute codes.
func AttributeNotFound(code string) *NotFoundError {
	return &NotFoundError{Resource: "attribute", ID: code, Message: "Attribute not found."}
}

// StockItemNotFound is returned for unknown stock items.
func StockItemNotFound(sku string) *NotFoundError {
	return &NotFoundError{Resource: "stock item", ID: sku, Message: "Stock item not found."}
}
