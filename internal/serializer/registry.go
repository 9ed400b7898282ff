/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package serializer

import (
	"fmt"
)

// Converter is a codec for exactly one discriminator kind. Encode produces a
// tagged, JSON-compatible record; Decode is its exact inverse on the record.
// A converter never resolves identifiers into other values; edge resolution
// belongs to the graph codec.
type Converter[T any] interface {
	Kind() string
	Encode(value T) (Record, error)
	Decode(record Record) (T, error)
}

// Registry is an immutable kind-to-converter table. Once built it may be read
// concurrently without coordination; reconfiguration means building a new
// registry and swapping the reference.
type Registry[T any] struct {
	name       string
	order      []string
	converters map[string]Converter[T]
}

// Name returns the registry's name, used in error context.
func (r *Registry[T]) Name() string {
	return r.name
}

// Resolve returns the converter registered for the given kind. It fails with
// UnknownTypeError when no converter is registered.
func (r *Registry[T]) Resolve(kind string) (Converter[T], error) {
	converter, exists := r.converters[kind]
	if !exists {
		return nil, &UnknownTypeError{Registry: r.name, Kind: kind}
	}
	return converter, nil
}

// Kinds returns the registered kinds in a deterministic order: defaults in
// declaration order followed by additions in declaration order. The order is
// for enumeration and debugging only; Resolve is a direct lookup.
func (r *Registry[T]) Kinds() []string {
	kinds := make([]string, len(r.order))
	copy(kinds, r.order)
	return kinds
}

// BuildRegistry materializes a registry from a default converter set and a
// deployment's override configuration. It starts from a copy of defaults,
// removes every entry whose converter is identical to one named in removals,
// then appends additions, with later entries for the same kind shadowing
// earlier ones. Removals that name a converter absent from defaults are
// reported as a RegistryConfigError rather than ignored, since a silently
// ignored removal hides a stale override after the default set changes.
func BuildRegistry[T any](name string, defaults []Converter[T], removals []Converter[T],
	additions []Converter[T]) (*Registry[T], error) {
	entries := make([]Converter[T], 0, len(defaults)+len(additions))
	entries = append(entries, defaults...)

	for _, removal := range removals {
		kept := entries[:0]
		removed := false
		for _, entry := range entries {
			if entry == removal {
				removed = true
				continue
			}
			kept = append(kept, entry)
		}
		entries = kept
		if !removed {
			return nil, &RegistryConfigError{
				Registry: name,
				Detail:   fmt.Sprintf("removal names converter for kind %q not present in defaults", removal.Kind()),
			}
		}
	}

	entries = append(entries, additions...)

	registry := &Registry[T]{
		name:       name,
		order:      make([]string, 0, len(entries)),
		converters: make(map[string]Converter[T], len(entries)),
	}
	for _, entry := range entries {
		kind := entry.Kind()
		if _, exists := registry.converters[kind]; !exists {
			registry.order = append(registry.order, kind)
		}
		registry.converters[kind] = entry
	}

	return registry, nil
}
