// Package avrodec decodes event payloads against their Avro schema. Schemas
// are fetched from the event bus on first use and cached for the rest of the run.
package avrodec

import (
	"context"
	"fmt"
	"sync"

	"github.com/linkedin/goavro/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SchemaSource resolves a schema id to its JSON schema definition.
type SchemaSource interface {
	GetSchema(ctx context.Context, schemaID string) (string, error)
}

// CachePolicy controls how fetched schemas are reused.
type CachePolicy int

const (
	// CacheKeyed keeps one parsed schema per schema id.
	CacheKeyed CachePolicy = iota
	// CacheSingle fetches the first schema seen and uses it for every later
	// event, whatever schema id that event carries.
	CacheSingle
)

// ParseCachePolicy maps the config value to a policy.
func ParseCachePolicy(s string) (CachePolicy, error) {
	switch s {
	case "", "keyed":
		return CacheKeyed, nil
	case "single":
		return CacheSingle, nil
	default:
		return 0, fmt.Errorf("unknown schema cache policy %q", s)
	}
}

// ErrTrailingBytes is returned when a payload is longer than its schema describes.
var ErrTrailingBytes = errors.New("payload has trailing bytes after decoded record")

// Decoder decodes payloads, parsing each schema at most once.
type Decoder struct {
	source SchemaSource
	policy CachePolicy
	logger *zap.Logger

	// OnFetch, when set, is called after every schema fetch.
	OnFetch func(schemaID string)

	mu      sync.Mutex
	single  *goavro.Codec
	byID    map[string]*goavro.Codec
	fetches int
}

// NewDecoder creates a decoder that fetches schemas from source.
func NewDecoder(source SchemaSource, policy CachePolicy, logger *zap.Logger) *Decoder {
	return &Decoder{
		source: source,
		policy: policy,
		logger: logger.With(zap.String("component", "decoder")),
		byID:   make(map[string]*goavro.Codec),
	}
}

// SchemaFetches returns how many times the schema source has been called.
func (d *Decoder) SchemaFetches() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fetches
}

// Decode deserializes payload into a map of field name to value. There is no
// partial result: a payload that does not conform to the schema is an error.
func (d *Decoder) Decode(ctx context.Context, schemaID string, payload []byte) (map[string]any, error) {
	codec, err := d.codec(ctx, schemaID)
	if err != nil {
		return nil, err
	}

	native, rest, err := codec.NativeFromBinary(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode payload with schema %s", schemaID)
	}
	if len(rest) > 0 {
		return nil, errors.Wrapf(ErrTrailingBytes, "%d bytes left", len(rest))
	}

	record, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoded payload is %T, want record", native)
	}
	return record, nil
}

func (d *Decoder) codec(ctx context.Context, schemaID string) (*goavro.Codec, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.policy {
	case CacheSingle:
		if d.single != nil {
			return d.single, nil
		}
	default:
		if c, ok := d.byID[schemaID]; ok {
			return c, nil
		}
	}

	schemaJSON, err := d.source.GetSchema(ctx, schemaID)
	d.fetches++
	if d.OnFetch != nil {
		d.OnFetch(schemaID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch schema %s", schemaID)
	}

	c, err := goavro.NewCodec(schemaJSON)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse schema %s", schemaID)
	}
	d.logger.Info("cached schema", zap.String("schema_id", schemaID), zap.Int("fetches", d.fetches))

	if d.policy == CacheSingle {
		d.single = c
	} else {
		d.byID[schemaID] = c
	}
	return c, nil
}
