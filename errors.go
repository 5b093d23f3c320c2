package walletwire

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrDecode indicates wire data failed structural decoding or validation.
	ErrDecode = errors.New("decode failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrInvalidSchema indicates a schema definition is inconsistent with its type.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrDuplicateCodec indicates a text codec name is already registered.
	ErrDuplicateCodec = errors.New("duplicate codec")

	// ErrUnknownCodec indicates no text codec is registered under a name.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrTypeMismatch indicates a value does not have the type a codec handles.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingMasker indicates a masked field has no registered masker.
	ErrMissingMasker = errors.New("missing masker")
)

// DecodeError is the single failure shape of every decode path. Message is
// the human readable diagnostic; Path locates the offending value inside a
// document ("targets[0].address") and is empty for bare text decoding.
type DecodeError struct {
	Path    string
	Message string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	if e.Path[0] == '[' {
		return fmt.Sprintf("Error in $%s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("Error in $.%s: %s", e.Path, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// NewDecodeError returns a DecodeError with no path.
func NewDecodeError(message string) error {
	return &DecodeError{Message: message}
}

// Errorf formats a DecodeError message.
func Errorf(format string, args ...any) error {
	return &DecodeError{Message: fmt.Sprintf(format, args...)}
}

// asDecodeError converts any failure into a DecodeError, keeping the
// message of errors that are not already one.
func asDecodeError(err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	return &DecodeError{Message: err.Error()}
}

// atKey prefixes the error path with an object key.
func atKey(err error, key string) error {
	return prefixPath(err, key)
}

// atIndex prefixes the error path with an array index.
func atIndex(err error, i int) error {
	return prefixPath(err, "["+strconv.Itoa(i)+"]")
}

func prefixPath(err error, head string) error {
	de := asDecodeError(err)
	switch {
	case de.Path == "":
		return &DecodeError{Path: head, Message: de.Message}
	case de.Path[0] == '[':
		return &DecodeError{Path: head + de.Path, Message: de.Message}
	default:
		return &DecodeError{Path: head + "." + de.Path, Message: de.Message}
	}
}

// CodecError represents a marshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// SchemaError reports a schema that does not match its record type.
type SchemaError struct {
	Type   string // Record type name
	Field  string // Offending field or wire key
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s for %s (field %s): %s", ErrInvalidSchema.Error(), e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s for %s: %s", ErrInvalidSchema.Error(), e.Type, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrInvalidSchema
}

// newCodecError creates a CodecError for marshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
