// Package pfcperr defines the structured error taxonomy for the PFCP codec.
//
// Every error returned by ie, message, and comparison carries enough context
// to identify the offending IE or message type without the caller needing to
// re-parse the input. Every kind is a pointer type implementing error, so
// callers can use errors.As to recover the concrete kind; EncodingError also
// implements Unwrap to expose its underlying cause.
package pfcperr

import (
	"errors"
	"fmt"
)

// InvalidLength reports a TLV or fixed-width field shorter than required.
type InvalidLength struct {
	IEName   string
	IEType   uint16
	Expected int
	Actual   int
}

func (e *InvalidLength) Error() string {
	return fmt.Sprintf("pfcp: %s (type %d): invalid length: expected at least %d bytes, got %d",
		e.IEName, e.IEType, e.Expected, e.Actual)
}

// InvalidValue reports a range or enumerator violation.
type InvalidValue struct {
	Field      string
	Value      string
	Constraint string
}

func (e *InvalidValue) Error() string {
	return fmt.Sprintf("pfcp: invalid value for %s: %s (%s)", e.Field, e.Value, e.Constraint)
}

// MissingMandatoryIE reports an unfilled mandatory slot after parsing or building.
type MissingMandatoryIE struct {
	IEType      uint16
	IEName      string
	MessageType string // empty if this is a grouped-IE context
	ParentIE    string // empty if this is a top-level message context
}

func (e *MissingMandatoryIE) Error() string {
	switch {
	case e.MessageType != "":
		return fmt.Sprintf("pfcp: missing mandatory IE %s (type %d) in message %s", e.IEName, e.IEType, e.MessageType)
	case e.ParentIE != "":
		return fmt.Sprintf("pfcp: missing mandatory IE %s (type %d) in grouped IE %s", e.IEName, e.IEType, e.ParentIE)
	default:
		return fmt.Sprintf("pfcp: missing mandatory IE %s (type %d)", e.IEName, e.IEType)
	}
}

// DuplicateIE reports a singleton slot filled twice under the strict policy.
type DuplicateIE struct {
	IEType uint16
	IEName string
	Parent string
}

func (e *DuplicateIE) Error() string {
	return fmt.Sprintf("pfcp: duplicate IE %s (type %d) in %s", e.IEName, e.IEType, e.Parent)
}

// UnsupportedVersion reports a PFCP header version other than 1.
type UnsupportedVersion struct {
	Got       uint8
	Supported uint8
}

func (e *UnsupportedVersion) Error() string {
	return fmt.Sprintf("pfcp: unsupported header version %d, supported version is %d", e.Got, e.Supported)
}

// UnsupportedMessageType reports an unrecognized message type code.
type UnsupportedMessageType struct {
	Got uint8
}

func (e *UnsupportedMessageType) Error() string {
	return fmt.Sprintf("pfcp: unsupported message type %d", e.Got)
}

// EncodingError reports a UTF-8 or DNS-label decode failure.
type EncodingError struct {
	IEName string
	IEType uint16
	Cause  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("pfcp: %s (type %d): encoding error: %v", e.IEName, e.IEType, e.Cause)
}

func (e *EncodingError) Unwrap() error { return e.Cause }

// ValidationError reports a builder-level precondition failure.
type ValidationError struct {
	Context string
	Field   string
	Detail  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pfcp: validation failed in %s: %s: %s", e.Context, e.Field, e.Detail)
}

// TruncatedBuffer reports a top-level buffer shorter than the declared length.
type TruncatedBuffer struct {
	Need    int
	Have    int
	Context string
}

func (e *TruncatedBuffer) Error() string {
	return fmt.Sprintf("pfcp: truncated buffer in %s: need %d bytes, have %d", e.Context, e.Need, e.Have)
}

// As is a thin convenience wrapper around errors.As for the common case of
// testing whether err is (or wraps) a specific pfcperr kind.
func As[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}
