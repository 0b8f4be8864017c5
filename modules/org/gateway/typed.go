package gateway

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/pkg/casemap"
)

// The typed layer converts between entity structs and wire records. Structs
// carry camelCase json tags, so the conversion is json round-trip plus key
// casing at the boundary.

// ToRecord converts a struct to a wire record. Empty id and uid fields are
// stripped so the store assigns them.
func ToRecord(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode record")
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "decode record")
	}
	for _, key := range []string{"id", "uid"} {
		if val, ok := m[key].(string); ok && val == "" {
			delete(m, key)
		}
	}
	return casemap.SnakeKeys(m), nil
}

// FromRecord converts a wire record back to an entity struct.
func FromRecord[T any](rec Record) (T, error) {
	var out T
	raw, err := json.Marshal(casemap.CamelKeys(rec))
	if err != nil {
		return out, errors.Wrap(err, "encode record")
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, errors.Wrap(err, "decode record")
	}
	return out, nil
}

// List fetches and decodes every record of a collection.
func List[T any](ctx context.Context, g Gateway, collection string) ([]T, error) {
	recs, err := g.ListAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := FromRecord[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Create inserts one entity and returns it with the id the store assigned.
func Create[T any](ctx context.Context, g Gateway, collection string, v T) (T, error) {
	rec, err := ToRecord(v)
	if err != nil {
		var zero T
		return zero, err
	}
	created, err := g.CreateOne(ctx, collection, rec)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromRecord[T](created)
}

// CreateAll inserts a batch of entities and returns them with assigned ids.
func CreateAll[T any](ctx context.Context, g Gateway, collection string, vs []T) ([]T, error) {
	recs := make([]Record, 0, len(vs))
	for _, v := range vs {
		rec, err := ToRecord(v)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	created, err := g.CreateMany(ctx, collection, recs)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(created))
	for _, rec := range created {
		v, err := FromRecord[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Update overwrites the record with the entity's id and returns the stored
// version.
func Update[T any](ctx context.Context, g Gateway, collection string, id string, v T) (T, error) {
	rec, err := ToRecord(v)
	if err != nil {
		var zero T
		return zero, err
	}
	delete(rec, "id")
	updated, err := g.UpdateOne(ctx, collection, id, rec)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromRecord[T](updated)
}

// Patch overwrites only the given wire-form fields and returns the stored
// record decoded as T. Keys are camelCase; the conversion to wire form
// happens here.
func Patch[T any](ctx context.Context, g Gateway, collection string, id string, fields map[string]any) (T, error) {
	updated, err := g.UpdateOne(ctx, collection, id, casemap.SnakeKeys(fields))
	if err != nil {
		var zero T
		return zero, err
	}
	return FromRecord[T](updated)
}

// Singleton fetches a singleton record. ok is false when none exists yet.
func Singleton[T any](ctx context.Context, g Gateway, collection string) (T, bool, error) {
	var zero T
	rec, err := g.GetSingleton(ctx, collection)
	if err != nil {
		return zero, false, err
	}
	if rec == nil {
		return zero, false, nil
	}
	v, err := FromRecord[T](rec)
	return v, err == nil, err
}

// Upsert stores the singleton and returns the stored version.
func Upsert[T any](ctx context.Context, g Gateway, collection string, v T) (T, error) {
	rec, err := ToRecord(v)
	if err != nil {
		var zero T
		return zero, err
	}
	stored, err := g.UpsertSingleton(ctx, collection, rec)
	if err != nil {
		var zero T
		return zero, err
	}
	return FromRecord[T](stored)
}
