package schema

import (
	"context"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

// OrderV1Avro returns the parsed order schema. It panics on a malformed
// schema text.
func OrderV1Avro() avro.Schema {
	return avro.MustParse(OrderSchemaTextV1)
}

// A SchemaIdentifier resolves the registry id of a schema under a subject.
type SchemaIdentifier interface {
	DetermineID(ctx context.Context, subject, avroSchemaText string) (int, error)
}

type schemaRegistry interface {
	CreateSchema(ctx context.Context, subject string, s sr.Schema) (sr.SubjectSchema, error)
}

// A RegistryIdentifier registers schemas in the schema registry.
// Registering an already known schema returns its existing id.
type RegistryIdentifier struct {
	cl schemaRegistry
}

func NewRegistryIdentifier(cl schemaRegistry) RegistryIdentifier {
	return RegistryIdentifier{cl}
}

func (r RegistryIdentifier) DetermineID(
	ctx context.Context, subject, avroSchemaText string,
) (int, error) {
	const op = "RegistryIdentifier.DetermineID"

	ss, err := r.cl.CreateSchema(ctx, subject, sr.Schema{
		Schema: avroSchemaText,
		Type:   sr.TypeAvro,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return ss.ID, nil
}

// ValueSubject returns the registry subject for values of topic.
func ValueSubject(topic string) string {
	return topic + "-value"
}
