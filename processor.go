package walletwire

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Processor binds a record schema to a wire codec. Receive is the ingress
// path: structural decoding by the codec, then field validation by the
// schema. Send and Redact are the egress paths.
//
// Processors are safe for concurrent use. SetMasker may be called at any
// time; masker validation runs once, on the first Redact or on Validate.
type Processor[T any] struct {
	codec  Codec
	schema *Schema[T]

	mu      sync.RWMutex
	maskers map[MaskType]Masker

	validateOnce sync.Once
	validateErr  error
}

// NewProcessor creates a Processor for T with the builtin maskers.
func NewProcessor[T any](codec Codec, schema *Schema[T]) *Processor[T] {
	p := &Processor[T]{
		codec:   codec,
		schema:  schema,
		maskers: builtinMaskers(),
	}
	emitProcessorCreated(context.Background(), codec.ContentType(), schema.TypeName())
	return p
}

// SetMasker registers a masker for the given type.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetMasker(mt MaskType, m Masker) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maskers[mt] = m
	return p
}

// Validate checks that every masked field has a registered masker.
func (p *Processor[T]) Validate() error {
	p.validateOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		for _, mt := range p.schema.MaskTypes() {
			if _, ok := p.maskers[mt]; !ok {
				p.validateErr = fmt.Errorf("%w %q for %s", ErrMissingMasker, mt, p.schema.TypeName())
				return
			}
		}
	})
	return p.validateErr
}

// Schema returns the record schema.
func (p *Processor[T]) Schema() *Schema[T] {
	return p.schema
}

// ContentType returns the MIME type of the underlying codec.
func (p *Processor[T]) ContentType() string {
	return p.codec.ContentType()
}

// Receive decodes and validates data. Every failure is a *DecodeError.
// Rejected payloads are logged by fingerprint only.
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	typeName := p.schema.TypeName()
	emitDecodeStart(ctx, p.codec.ContentType(), typeName, len(data))

	var retErr error
	defer func() {
		fp := ""
		if retErr != nil {
			fp = Fingerprint(data)
			log.Debugf("Rejected %s payload %s (%d bytes, %s): %v",
				typeName, fp, len(data), p.codec.ContentType(), retErr)
		}
		emitDecodeComplete(ctx, p.codec.ContentType(), typeName, time.Since(start), fp, retErr)
	}()

	var wire any
	if err := p.codec.Unmarshal(data, &wire); err != nil {
		retErr = &DecodeError{Message: fmt.Sprintf("Error in $: %v", err)}
		return nil, retErr
	}

	obj, err := p.schema.Decode(wire)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	return &obj, nil
}

// Send encodes obj. A nil obj encodes the codec's null value.
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, p.codec.ContentType(), p.schema.TypeName())

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, p.codec.ContentType(), p.schema.TypeName(),
			len(retData), time.Since(start), retErr)
	}()

	var wire any
	if obj != nil {
		wire = p.schema.Encode(obj)
	}
	retData, retErr = p.marshal(wire)
	return retData, retErr
}

// Redact encodes obj with sensitive fields replaced by RedactedValue and
// masked fields passed through their maskers. The result is safe to log.
func (p *Processor[T]) Redact(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()

	var retErr error
	var retData []byte
	defer func() {
		emitRedactComplete(ctx, p.codec.ContentType(), p.schema.TypeName(),
			p.schema.redactedCount(), time.Since(start), retErr)
	}()

	if err := p.Validate(); err != nil {
		retErr = err
		return nil, retErr
	}

	var wire any
	if obj != nil {
		p.mu.RLock()
		doc, err := p.schema.redactWith(obj, p.maskers)
		p.mu.RUnlock()
		if err != nil {
			retErr = err
			return nil, retErr
		}
		wire = doc
	}
	retData, retErr = p.marshal(wire)
	return retData, retErr
}

func (p *Processor[T]) marshal(wire any) ([]byte, error) {
	data, err := p.codec.Marshal(wire)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}
