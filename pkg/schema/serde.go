package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var (
	ErrTooFewOpts = errors.New("too few options")
	ErrValueType  = errors.New("value type is not registered")
)

// A Serde writes values in the schema registry wire format: magic byte,
// schema id, avro body.
type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// avroSerde encodes values of the single type T registered under one
// schema id.
type avroSerde[T any] struct {
	srSerde *sr.Serde
}

func (s avroSerde[T]) Encode(v any) ([]byte, error) {
	switch v.(type) {
	case T:
	default:
		return nil, fmt.Errorf("%w: %T", ErrValueType, v)
	}
	return s.srSerde.Encode(v)
}

func (s avroSerde[T]) Decode(data []byte, v any) error {
	if _, ok := v.(*T); !ok {
		return fmt.Errorf("%w: %T", ErrValueType, v)
	}
	return s.srSerde.Decode(data, v)
}

type Opt func(*serdeOpts) error

type serdeOpts struct {
	subject string
	si      SchemaIdentifier
}

func (o serdeOpts) complete() bool {
	return o.subject != "" && o.si != nil
}

func SubjectOpt(subject string) Opt {
	return func(so *serdeOpts) error {
		if subject == "" {
			return errors.New("subject is empty string")
		}
		so.subject = subject
		return nil
	}
}

func SchemaIdentifierOpt(si SchemaIdentifier) Opt {
	return func(so *serdeOpts) error {
		if si == nil {
			return errors.New("schema identifier is nil")
		}
		so.si = si
		return nil
	}
}

// NewSerdeOrderV1 returns the serde for [OrderV1] values registered
// under the subject given by [SubjectOpt].
func NewSerdeOrderV1(ctx context.Context, opts ...Opt) (Serde, error) {
	const op = "NewSerdeOrderV1"

	s, err := newAvroSerde[OrderV1](ctx, OrderSchemaTextV1, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func newAvroSerde[T any](
	ctx context.Context, schemaText string, opts ...Opt,
) (avroSerde[T], error) {
	var so serdeOpts
	for _, o := range opts {
		if err := o(&so); err != nil {
			return avroSerde[T]{}, err
		}
	}
	if !so.complete() {
		return avroSerde[T]{}, ErrTooFewOpts
	}

	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return avroSerde[T]{}, err
	}

	id, err := so.si.DetermineID(ctx, so.subject, schemaText)
	if err != nil {
		return avroSerde[T]{}, err
	}

	var zero T
	srSerde := new(sr.Serde)
	srSerde.Register(
		id,
		zero,
		sr.EncodeFn(func(v any) ([]byte, error) {
			return avro.Marshal(avroSchema, v)
		}),
		sr.DecodeFn(func(data []byte, v any) error {
			return avro.Unmarshal(avroSchema, data, v)
		}),
	)

	return avroSerde[T]{srSerde: srSerde}, nil
}
