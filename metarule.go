// Package metarule resolves page metadata from HTML documents using ordered,
// independent extraction rules.
//
// Each metadata field (image, keywords, read time, ...) is configured with a
// list of rules ordered from the most specific page convention to the most
// generic one. A resolver tries them in order and keeps the first value that
// passes the field's validator. A rule that finds nothing, rejects its input,
// or panics on malformed markup simply does not match; a missing field never
// aborts extraction of the others.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, yaml/).
package metarule
