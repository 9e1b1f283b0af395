package outbound

import "fmt"

// StoreCode tags the failure reported by a repository adapter.
type StoreCode int

const (
	StoreUnknown StoreCode = iota
	StoreUniqueViolation
	StoreForeignKeyViolation
	StoreInvalidValue
	StoreNoRows
)

func (c StoreCode) String() string {
	switch c {
	case StoreUniqueViolation:
		return "unique_violation"
	case StoreForeignKeyViolation:
		return "foreign_key_violation"
	case StoreInvalidValue:
		return "invalid_value"
	case StoreNoRows:
		return "no_rows"
	default:
		return "unknown"
	}
}

// StoreError is the only error shape repositories return. RawCode keeps the
// backend specific code for logs; it must not reach callers.
type StoreError struct {
	Code    StoreCode
	RawCode string
	Field   string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s (%s): %s", e.Code, e.RawCode, e.Message)
}

func (e *StoreError) Unwrap() error { return e.Err }
