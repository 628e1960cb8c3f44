package requestlog

import "time"

// MaxBodySize is the number of body bytes kept on an entry.
const MaxBodySize = 10 << 10

// Entry is one captured request and the status it was answered with. Body
// is truncated to MaxBodySize; BodySize is the full length.
type Entry struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Method         string    `json:"method"`
	Path           string    `json:"path"`
	QueryString    string    `json:"queryString,omitempty"`
	Body           string    `json:"body,omitempty"`
	BodySize       int       `json:"bodySize"`
	RemoteAddr     string    `json:"remoteAddr"`
	ResponseStatus int       `json:"responseStatus"`
	DurationMs     int       `json:"durationMs"`
}

// Logger records entries.
type Logger interface {
	Log(entry *Entry)
}

// Filter narrows a listing. Zero fields match everything.
type Filter struct {
	Method string
	// Path matches entries whose path starts with it.
	Path       string
	StatusCode int
	Limit      int
	Offset     int
}

// Truncate returns body cut to MaxBodySize.
func Truncate(body []byte) string {
	if len(body) > MaxBodySize {
		body = body[:MaxBodySize]
	}
	return string(body)
}
