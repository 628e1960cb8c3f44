// Package magento defines the entities of the mocked commerce platform API:
// orders and their items, shipments, invoices, products with their media
// galleries, attribute definitions and free-form records.
//
// Entities are plain structs with explicitly optional fields. Quantities that
// may be absent are pointers so that "never set" and "set to zero" stay
// distinct. Fields the mock does not interpret are kept in an Extra record and
// written back at the root of the JSON object, so clients see the documents
// they stored.
//
// The package also holds the typed errors shared by every component. Each one
// carries the HTTP status code the transport answers with.
package magento
