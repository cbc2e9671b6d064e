// Package sdf implements loaders for elements of the SDF robot scene
// description format. Loaders accumulate errors as values rather than
// stopping at the first failure, so a partially populated element alongside a
// non-empty error list is a supported outcome.
package sdf

import (
	"fmt"

	"go.uber.org/multierr"
)

// ErrorCode identifies the failing condition an Error reports.
type ErrorCode int

const (
	// ErrorNone is the zero code and reports nothing.
	ErrorNone ErrorCode = iota

	// ErrorElementIncorrectType is used when a loader is handed an element
	// with the wrong tag. This is the only condition fatal to a load.
	ErrorElementIncorrectType

	// ErrorAttributeMissing is used when a required attribute is absent.
	ErrorAttributeMissing

	// ErrorAttributeInvalid is used when an attribute's value cannot be
	// interpreted.
	ErrorAttributeInvalid

	// ErrorElementMissing is used when a required child element is absent.
	ErrorElementMissing

	// ErrorFunctionArgumentMissing is used when a required argument to a
	// load call, such as the shared frame graph, is nil.
	ErrorFunctionArgumentMissing

	// ErrorFrameReferenceUnknown is used when a pose frame does not resolve
	// to any vertex in the frame graph.
	ErrorFrameReferenceUnknown

	// ErrorReservedName is used when an element is given a name reserved
	// for internal use.
	ErrorReservedName
)

// String returns the code's token.
func (c ErrorCode) String() string {
	switch c {
	case ErrorNone:
		return "NONE"
	case ErrorElementIncorrectType:
		return "ELEMENT_INCORRECT_TYPE"
	case ErrorAttributeMissing:
		return "ATTRIBUTE_MISSING"
	case ErrorAttributeInvalid:
		return "ATTRIBUTE_INVALID"
	case ErrorElementMissing:
		return "ELEMENT_MISSING"
	case ErrorFunctionArgumentMissing:
		return "FUNCTION_ARGUMENT_MISSING"
	case ErrorFrameReferenceUnknown:
		return "FRAME_REFERENCE_UNKNOWN"
	case ErrorReservedName:
		return "RESERVED_NAME"
	default:
		return "UNKNOWN"
	}
}

// Error is a single recoverable load failure.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errors is the ordered list of failures accumulated by a load. The order
// matches the order the loader encountered each condition.
type Errors []Error

// Err combines the list into a single error, nil when the list is empty.
func (e Errors) Err() error {
	var all error
	for _, loadErr := range e {
		all = multierr.Append(all, loadErr)
	}
	return all
}
