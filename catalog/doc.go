// Package catalog provides the read-only job posting catalog: loading
// postings from JSON records, keyword and location search with deterministic
// ranking, and lookup by identifier.
//
// Postings are immutable once loaded. Search results and lookups return
// independent copies, so annotating or mutating a result never touches the
// stored catalog.
package catalog
