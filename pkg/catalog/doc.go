// Package catalog implements the product, attribute, category and stock item
// endpoints of the mock. They are plain reads and writes over the store with
// the handful of validations client code is known to trip over.
package catalog
