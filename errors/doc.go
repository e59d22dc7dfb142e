// Package errors provides the structured error taxonomy for jobtailor.
//
// Every failure surfaced by the catalog, tailor, index, and config packages
// carries one of a small set of error codes:
//
//   - NOT_FOUND: missing data source or unknown posting id
//   - MALFORMED: posting record or configuration that cannot be decoded
//   - INVALID_PATTERN: location filter that is not a valid regular expression
//   - DUPLICATE_KEY: two postings sharing an identifier
//   - INVALID_INPUT: caller-supplied argument outside its contract
//   - IO_ERROR: read or write failure at a file boundary
//   - INTERNAL: unexpected failure indicating a bug
//
// Create an error:
//
//	err := errors.NotFound("job file not found: %s", path)
//
// Wrap a lower-level error while keeping its chain:
//
//	err := errors.WrapWithCode(cause, errors.CodeMalformed, "decoding postings")
//
// Check the code anywhere up the call stack:
//
//	if errors.Is(err, errors.CodeNotFound) { ... }
//
// All failures here are terminal for the invocation; there is no retry
// classification.
package errors
