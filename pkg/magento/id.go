package magento

import (
	"encoding/json"
	"strconv"
)

// EntityID is an identifier the platform emits as a JSON number but clients
// are free to send as a string. Equality is textual.
type EntityID string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *EntityID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = EntityID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = EntityID(n.String())
	return nil
}

// MarshalJSON writes integral ids as numbers and everything else as strings.
func (id EntityID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String implements fmt.Stringer.
func (id EntityID) String() string {
	return string(id)
}

// IntID converts a sequential integer id.
func IntID(n int) EntityID {
	return EntityID(strconv.Itoa(n))
}
