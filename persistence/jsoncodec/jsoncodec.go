// Package jsoncodec implements persistence's default reference Codec: a
// flat JSON object keyed by the caller-supplied canonical string form of
// K, built on goccy/go-json rather than encoding/json, grounded on
// tomtom215-cartographus's cache layer using the same library for its
// on-disk representation.
package jsoncodec

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tierkv/tierkv/cache"
)

// Codec implements persistence.Codec[K,V] over a JSON object whose keys
// are produced by KeyString and reversed by KeyParse. V must itself be
// JSON-marshalable.
type Codec[K comparable, V any] struct {
	KeyString func(K) string
	KeyParse  func(string) (K, error)
}

// New constructs a Codec with the given key string conversion pair.
func New[K comparable, V any](keyString func(K) string, keyParse func(string) (K, error)) *Codec[K, V] {
	return &Codec[K, V]{KeyString: keyString, KeyParse: keyParse}
}

// Encode renders entries as a JSON object {key: value, ...}.
func (c *Codec[K, V]) Encode(entries []cache.Entry[K, V]) ([]byte, error) {
	obj := make(map[string]V, len(entries))
	for _, e := range entries {
		obj[c.KeyString(e.Key)] = e.Value
	}
	return json.Marshal(obj)
}

// Decode parses a JSON object back into entries, using KeyParse to recover
// each key's native type.
func (c *Codec[K, V]) Decode(data []byte) ([]cache.Entry[K, V], error) {
	var obj map[string]V
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	entries := make([]cache.Entry[K, V], 0, len(obj))
	for ks, v := range obj {
		k, err := c.KeyParse(ks)
		if err != nil {
			return nil, fmt.Errorf("jsoncodec: parsing key %q: %w", ks, err)
		}
		entries = append(entries, cache.Entry[K, V]{Key: k, Value: v})
	}
	return entries, nil
}

// StringKey is a ready-made KeyString/KeyParse pair for K=string, the most
// common case.
func StringKey() (func(string) string, func(string) (string, error)) {
	return func(s string) string { return s },
		func(s string) (string, error) { return s, nil }
}
