package errors

// Code identifies a specific failure type.
type Code string

// Codes for the failure scenarios jobtailor can report.
const (
	CodeNotFound       Code = "NOT_FOUND"       // Data source or posting does not exist
	CodeMalformed      Code = "MALFORMED"       // Record or config cannot be decoded
	CodeInvalidPattern Code = "INVALID_PATTERN" // Location filter is not a valid regexp
	CodeDuplicateKey   Code = "DUPLICATE_KEY"   // Posting identifier already loaded
	CodeInvalidInput   Code = "INVALID_INPUT"   // Argument outside its contract
	CodeIO             Code = "IO_ERROR"        // File read or write failure
	CodeInternal       Code = "INTERNAL"        // Unexpected internal failure
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Description returns a short human-readable description of the code.
func (c Code) Description() string {
	switch c {
	case CodeNotFound:
		return "resource not found"
	case CodeMalformed:
		return "malformed record"
	case CodeInvalidPattern:
		return "invalid pattern"
	case CodeDuplicateKey:
		return "duplicate identifier"
	case CodeInvalidInput:
		return "invalid input"
	case CodeIO:
		return "i/o failure"
	case CodeInternal:
		return "internal error"
	default:
		return "unknown error"
	}
}
