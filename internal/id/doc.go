// Package id provides identifier generation utilities.
//
// This is the canonical source for ID generation across the magemock codebase.
// It provides two kinds of identifiers:
//
//   - UUID: random v4 identifiers for opaque values such as token ids
//   - Sequence: monotonic integer counters for the platform's sequential
//     entity ids (shipments, invoices, media file names, option values)
//
// A Sequence carries no lock of its own. Callers advance it inside the same
// critical section that mutates the collection it numbers, so that ids stay
// dense and ordered exactly like the collection they describe.
package id
