// Package requestlog records the REST calls the mock receives so that tests
// can assert on what a client sent.
//
// It is distinct from operational logging, which uses log/slog.
//
//	log := requestlog.NewMemoryStore(1000)
//	log.Log(&requestlog.Entry{Method: "POST", Path: "/rest/all/V1/order/1/ship"})
//	entries := log.List(&requestlog.Filter{Method: "POST"})
package requestlog
