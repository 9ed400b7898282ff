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
	"sort"

	"github.com/asgardeo/flowkit/internal/spec/model"
)

// SerializerVersion is stamped into every encoded document. Decode rejects
// documents carrying a different or missing version.
const SerializerVersion = "1.0"

// Document field keys. The runtime task mapping under DocumentKeyTasks is a
// flat, schema-free, id-keyed sub-structure that external tooling may replace
// per entry without touching node or event definition records.
const (
	DocumentKeySerializerVersion = "serializer_version"
	DocumentKeySpecName          = "spec_name"
	DocumentKeySpecVersion       = "spec_version"
	DocumentKeyStartNodeID       = "start_node_id"
	DocumentKeyNodes             = "nodes"
	DocumentKeyEventDefinitions  = "event_definitions"
	DocumentKeyTasks             = "tasks"
)

const documentKind = "document"

// DocumentSerializer composes and decomposes persisted workflow documents. It
// holds no mutable state beyond the two immutable registries, so one instance
// may serve any number of concurrent encode and decode calls.
type DocumentSerializer struct {
	nodeRegistry  *Registry[model.SpecNode]
	eventRegistry *Registry[model.EventDefinition]
}

// NewDocumentSerializer creates a document serializer over the given node and
// event definition registries.
func NewDocumentSerializer(nodeRegistry *Registry[model.SpecNode],
	eventRegistry *Registry[model.EventDefinition]) *DocumentSerializer {
	return &DocumentSerializer{
		nodeRegistry:  nodeRegistry,
		eventRegistry: eventRegistry,
	}
}

// NewDefaultDocumentSerializer creates a document serializer over registries
// built from the default converter sets with no overrides.
func NewDefaultDocumentSerializer() *DocumentSerializer {
	nodeRegistry, eventRegistry, err := BuildRegistries(RegistryConfig{})
	if err != nil {
		// Build of unmodified defaults cannot produce a removal mismatch.
		panic(err)
	}
	return NewDocumentSerializer(nodeRegistry, eventRegistry)
}

// EncodeDocument serializes a workflow graph and its per-node runtime fields
// into a persisted document. The runtime mapping is copied verbatim, not run
// through any converter; pass nil for a bare spec. The source graph and the
// runtime mapping are never mutated.
func (s *DocumentSerializer) EncodeDocument(spec *model.WorkflowSpec,
	runtime map[string]map[string]any) (Record, error) {
	nodeRecords, err := EncodeGraph(spec, s.nodeRegistry)
	if err != nil {
		return nil, err
	}

	eventRecords := make(map[string]Record)
	for _, node := range spec.Nodes() {
		carrier, ok := node.(model.EventCarrier)
		if !ok {
			continue
		}
		def := carrier.GetEventDefinition()
		if def == nil {
			continue
		}
		converter, err := s.eventRegistry.Resolve(string(def.GetKind()))
		if err != nil {
			return nil, err
		}
		record, err := converter.Encode(def)
		if err != nil {
			return nil, err
		}
		eventRecords[node.GetID()] = record
	}

	tasks := make(map[string]any, len(runtime))
	for id, fields := range runtime {
		tasks[id] = copyJSONValue(fields)
	}

	return Record{
		DocumentKeySerializerVersion: SerializerVersion,
		DocumentKeySpecName:          spec.Name,
		DocumentKeySpecVersion:       spec.Version,
		DocumentKeyStartNodeID:       spec.StartNodeID,
		DocumentKeyNodes:             nodeRecords,
		DocumentKeyEventDefinitions:  eventRecords,
		DocumentKeyTasks:             tasks,
	}, nil
}

// DecodeDocument reconstructs a live workflow graph and its runtime fields
// from a persisted document. The returned graph is detached: decoding the
// same document twice yields two independent, equal-by-value graphs. Event
// definitions are decoded only after their owning nodes exist.
func (s *DocumentSerializer) DecodeDocument(doc Record) (*model.WorkflowSpec,
	map[string]map[string]any, error) {
	version, err := optionalStringField(doc, documentKind, DocumentKeySerializerVersion)
	if err != nil {
		return nil, nil, err
	}
	if version != SerializerVersion {
		return nil, nil, &UnsupportedVersionError{Version: version}
	}

	specName, err := optionalStringField(doc, documentKind, DocumentKeySpecName)
	if err != nil {
		return nil, nil, err
	}
	specVersion, err := optionalStringField(doc, documentKind, DocumentKeySpecVersion)
	if err != nil {
		return nil, nil, err
	}
	startNodeID, err := optionalStringField(doc, documentKind, DocumentKeyStartNodeID)
	if err != nil {
		return nil, nil, err
	}

	nodeRecords, err := recordMapField(doc, DocumentKeyNodes)
	if err != nil {
		return nil, nil, err
	}
	nodes, err := DecodeGraph(nodeRecords, s.nodeRegistry)
	if err != nil {
		return nil, nil, err
	}

	spec := model.NewWorkflowSpec(specName, specVersion)
	spec.StartNodeID = startNodeID

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := spec.AddNode(nodes[id]); err != nil {
			return nil, nil, err
		}
	}

	eventRecords, err := recordMapField(doc, DocumentKeyEventDefinitions)
	if err != nil {
		return nil, nil, err
	}
	eventIDs := make([]string, 0, len(eventRecords))
	for id := range eventRecords {
		eventIDs = append(eventIDs, id)
	}
	sort.Strings(eventIDs)
	for _, id := range eventIDs {
		node, exists := nodes[id]
		if !exists {
			return nil, nil, &DanglingReferenceError{NodeID: id, RefID: id, Relation: "event definition owner"}
		}
		carrier, ok := node.(model.EventCarrier)
		if !ok {
			return nil, nil, &MalformedRecordError{
				Kind:   string(node.GetKind()),
				Field:  DocumentKeyEventDefinitions,
				Detail: "event definition attached to a non-event node",
			}
		}
		record := eventRecords[id]
		kind := record.Kind()
		if kind == "" {
			return nil, nil, &MalformedRecordError{Kind: kind, Field: recordKeyKind, Detail: "missing"}
		}
		converter, err := s.eventRegistry.Resolve(kind)
		if err != nil {
			return nil, nil, err
		}
		def, err := converter.Decode(record)
		if err != nil {
			return nil, nil, err
		}
		carrier.SetEventDefinition(def)
	}

	runtime, err := runtimeFields(doc)
	if err != nil {
		return nil, nil, err
	}

	return spec, runtime, nil
}

// recordMapField reads an id-keyed mapping of records from the document,
// accepting both the in-memory Record form and the map[string]any form
// produced by JSON decoding.
func recordMapField(doc Record, key string) (map[string]Record, error) {
	value, exists := doc[key]
	if !exists || value == nil {
		return map[string]Record{}, nil
	}
	switch m := value.(type) {
	case map[string]Record:
		return m, nil
	case map[string]any:
		records := make(map[string]Record, len(m))
		for id, entry := range m {
			record, ok := entry.(map[string]any)
			if !ok {
				if typed, isRecord := entry.(Record); isRecord {
					records[id] = typed
					continue
				}
				return nil, &MalformedRecordError{Kind: documentKind, Field: key, Detail: "entry is not a mapping"}
			}
			records[id] = Record(record)
		}
		return records, nil
	default:
		return nil, &MalformedRecordError{Kind: documentKind, Field: key, Detail: "not a mapping"}
	}
}

// runtimeFields reads the per-node runtime mapping from the document as a
// fresh deep copy.
func runtimeFields(doc Record) (map[string]map[string]any, error) {
	value, exists := doc[DocumentKeyTasks]
	if !exists || value == nil {
		return map[string]map[string]any{}, nil
	}
	entries, ok := value.(map[string]any)
	if !ok {
		return nil, &MalformedRecordError{Kind: documentKind, Field: DocumentKeyTasks, Detail: "not a mapping"}
	}
	runtime := make(map[string]map[string]any, len(entries))
	for id, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, &MalformedRecordError{
				Kind:   documentKind,
				Field:  DocumentKeyTasks,
				Detail: "entry is not a mapping",
			}
		}
		runtime[id] = copyJSONValue(fields).(map[string]any)
	}
	return runtime, nil
}

// copyJSONValue deep-copies a JSON-compatible value. Scalars are returned as is.
func copyJSONValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = copyJSONValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyJSONValue(item)
		}
		return out
	default:
		return v
	}
}
