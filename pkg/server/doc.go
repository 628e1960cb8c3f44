// Package server exposes the mock over HTTP.
//
// The route table mirrors the platform's REST API under /rest/{store}/V1.
// Admin hooks for tests live under /__magemock. Embed the mock in a test
// with:
//
//	srv, err := server.New(store.New())
//	ts := httptest.NewServer(srv.Handler())
//	defer ts.Close()
package server
