package fulfillment

import (
	"encoding/json"
	"strconv"

	"github.com/getmockd/magemock/pkg/magento"
)

// Quantity is a requested quantity. Clients send it as a JSON number or a
// numeric string.
type Quantity float64

// UnmarshalJSON rejects anything that is not numeric.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	var n json.Number
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n = json.Number(s)
	} else if err := json.Unmarshal(b, &n); err != nil {
		return &magento.ValidationError{Message: "Error occurred during \"qty\" processing. Invalid type.", Field: "qty"}
	}
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return &magento.ValidationError{Message: "Error occurred during \"qty\" processing. Invalid type.", Field: "qty"}
	}
	*q = Quantity(v)
	return nil
}

// RequestLine asks for a quantity of one order item, or of every child line
// of a parent item.
type RequestLine struct {
	OrderItemID magento.EntityID `json:"order_item_id"`
	Qty         Quantity         `json:"qty"`
}

// ShipRequest is the body of a ship call.
type ShipRequest struct {
	Items   []RequestLine    `json:"items"`
	Notify  bool             `json:"notify,omitempty"`
	Comment *ShipmentComment `json:"comment,omitempty"`
	Tracks  []TrackRequest   `json:"tracks,omitempty"`
}

// ShipmentComment is the optional comment attached to a shipment.
type ShipmentComment struct {
	Comment          string `json:"comment"`
	IsVisibleOnFront int    `json:"is_visible_on_front,omitempty"`
}

// TrackRequest is a tracking entry sent with a ship call.
type TrackRequest struct {
	TrackNumber string `json:"track_number"`
	Title       string `json:"title,omitempty"`
	CarrierCode string `json:"carrier_code,omitempty"`
}

// InvoiceRequest is the body of an invoice call.
type InvoiceRequest struct {
	Items   []RequestLine `json:"items"`
	Capture bool          `json:"capture,omitempty"`
	Notify  bool          `json:"notify,omitempty"`
}

// comment returns the comment text to record, nil when no comment object
// was sent. An empty comment text is recorded as is.
func (r *ShipRequest) comment() *string {
	if r.Comment == nil {
		return nil
	}
	c := r.Comment.Comment
	return &c
}

// tracks returns the tracking entries to record. Only the first requested
// track is kept.
func (r *ShipRequest) tracks() []magento.Track {
	if len(r.Tracks) == 0 {
		return nil
	}
	return []magento.Track{{TrackNumber: r.Tracks[0].TrackNumber}}
}
