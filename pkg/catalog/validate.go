package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/getmockd/magemock/pkg/magento"
)

// Messages the platform answers rejected catalog writes with.
const (
	msgPriceRequired    = `The value of attribute "price" must be set.`
	msgWeightInvalid    = `"Error occurred during "weight" processing. Invalid type.`
	msgQtyInvalid       = `"Error occurred during "qty" processing. Invalid type.`
	msgOptionsEmpty     = "Option values are not specified."
	msgURLKeyExists     = "URL key for specified store already exists"
	msgChildMissing     = "Requested product doesn't exist"
	msgChildLinked      = "Il prodotto è già stato associato"
	attributeCodeURLKey = "url_key"
)

func isSet(doc magento.Record, key string) bool {
	v, ok := doc[key]
	return ok && v != nil
}

// isNumeric reports whether v is a number or a string holding one.
func isNumeric(v any) bool {
	switch t := v.(type) {
	case float64, float32, int, int64, json.Number:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return err == nil
	}
	return false
}

// isEmpty mirrors what clients consider an unset value.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case string:
		return t == "" || t == "0"
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}

// object returns v as a JSON object, nil when it is not one.
func object(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case magento.Record:
		return t
	}
	return nil
}

// sameValue compares two scalar JSON values by their text.
func sameValue(a, b any) bool {
	return text(a) == text(b)
}

func text(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// checkProduct runs the validations shared by product create and update.
func checkProduct(doc magento.Record) error {
	if isSet(doc, "weight") && !isNumeric(doc["weight"]) {
		return &magento.ValidationError{Message: msgWeightInvalid, Field: "weight"}
	}
	options, _ := object(doc["extension_attributes"])["configurable_product_options"].([]any)
	for _, raw := range options {
		if isEmpty(object(raw)["values"]) {
			return &magento.ValidationError{Message: msgOptionsEmpty, Field: "configurable_product_options"}
		}
	}
	return nil
}

// checkURLKey rejects doc when another product already uses its url_key.
// The product stored under skip is not considered.
func checkURLKey(doc magento.Record, products []*magento.Product, skip string) error {
	key, ok := magento.CustomAttribute(doc, attributeCodeURLKey)
	if !ok {
		return nil
	}
	for _, other := range products {
		if skip != "" && other.SKU == skip {
			continue
		}
		if otherKey, ok := other.CustomAttribute(attributeCodeURLKey); ok && sameValue(otherKey, key) {
			return &magento.ValidationError{Message: msgURLKeyExists, Field: attributeCodeURLKey}
		}
	}
	return nil
}
