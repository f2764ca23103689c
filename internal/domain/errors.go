package domain

import (
	"fmt"
	"strings"
)

// FieldError reports one offending input field with a human-readable reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) String() string { return e.Field + ": " + e.Reason }

// ValidationError aggregates every field that failed admission. It is
// recovered locally: the caller reports the fields and never invokes the
// pricing engine with the rejected input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		reasons = append(reasons, f.String())
	}
	return "invalid order input: " + strings.Join(reasons, "; ")
}

// StorageError wraps a failure of the durable settings store. It is
// non-fatal: in-memory settings remain authoritative and the caller
// surfaces the failure as a notification.
type StorageError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("settings storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
