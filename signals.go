package walletwire

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for wire boundary events.
var (
	SignalProcessorCreated = capitan.NewSignal("walletwire.processor.created", "Processor instantiated")
	SignalDecodeStart      = capitan.NewSignal("walletwire.decode.start", "Decode operation beginning")
	SignalDecodeComplete   = capitan.NewSignal("walletwire.decode.complete", "Decode operation finished")
	SignalEncodeStart      = capitan.NewSignal("walletwire.encode.start", "Encode operation beginning")
	SignalEncodeComplete   = capitan.NewSignal("walletwire.encode.complete", "Encode operation finished")
	SignalRedactComplete   = capitan.NewSignal("walletwire.redact.complete", "Redact operation finished")
)

// Keys for typed event data.
var (
	KeyContentType   = capitan.NewStringKey("content_type")
	KeyTypeName      = capitan.NewStringKey("type_name")
	KeySize          = capitan.NewIntKey("size")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
	KeyField         = capitan.NewStringKey("field")
	KeyFingerprint   = capitan.NewStringKey("fingerprint")
	KeyRedactedCount = capitan.NewIntKey("redacted_count")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes. Failures carry
// the payload fingerprint and the path of the offending field.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, duration time.Duration, fingerprint string, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err), KeyFingerprint.Field(fingerprint))
		if de := asDecodeError(err); de.Path != "" {
			fields = append(fields, KeyField.Field(de.Path))
		}
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitRedactComplete emits an event when redact finishes.
func emitRedactComplete(ctx context.Context, contentType, typeName string, redacted int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyRedactedCount.Field(redacted),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRedactComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRedactComplete, fields...)
	}
}
