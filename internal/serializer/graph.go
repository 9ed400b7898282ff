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

// EncodeGraph serializes a workflow graph into an id-keyed mapping of tagged
// records. Nodes are visited in a stable order: a pre-order walk from the
// start node, then any unreachable nodes in insertion order. Edges are encoded
// as identifiers, never as nested node bodies, so cycles need no special
// handling. The source graph is never mutated.
func EncodeGraph(spec *model.WorkflowSpec, registry *Registry[model.SpecNode]) (map[string]Record, error) {
	records := make(map[string]Record, spec.Size())

	for _, id := range encodeOrder(spec) {
		node, _ := spec.GetNode(id)
		converter, err := registry.Resolve(string(node.GetKind()))
		if err != nil {
			return nil, err
		}
		record, err := converter.Encode(node)
		if err != nil {
			return nil, err
		}
		records[id] = record
	}

	return records, nil
}

// encodeOrder returns the spec's node identifiers in a stable encode order:
// pre-order from the start node over successor and child edges, followed by
// unreachable nodes in insertion order.
func encodeOrder(spec *model.WorkflowSpec) []string {
	order := make([]string, 0, spec.Size())
	visited := make(map[string]bool, spec.Size())

	var walk func(id string)
	walk = func(id string) {
		node, exists := spec.GetNode(id)
		if !exists || visited[id] {
			return
		}
		visited[id] = true
		order = append(order, id)
		for _, childID := range node.Base().Children {
			walk(childID)
		}
		for _, nextID := range node.Base().Next {
			walk(nextID)
		}
	}

	if spec.StartNodeID != "" {
		walk(spec.StartNodeID)
	}
	for _, id := range spec.NodeIDs() {
		if !visited[id] {
			visited[id] = true
			order = append(order, id)
		}
	}

	return order
}

// DecodeGraph reconstructs live nodes from an id-keyed mapping of tagged
// records. Decode is two-pass: pass one materializes every node through its
// converter; pass two re-links successor, predecessor, and child identifier
// lists into direct node references against the complete id mapping, so
// cyclic references decode correctly regardless of record order. An
// identifier with no decoded node fails with DanglingReferenceError.
func DecodeGraph(records map[string]Record, registry *Registry[model.SpecNode]) (map[string]model.SpecNode, error) {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := make(map[string]model.SpecNode, len(records))
	for _, id := range ids {
		record := records[id]
		kind := record.Kind()
		if kind == "" {
			return nil, &MalformedRecordError{Kind: kind, Field: recordKeyKind, Detail: "missing"}
		}
		converter, err := registry.Resolve(kind)
		if err != nil {
			return nil, err
		}
		node, err := converter.Decode(record)
		if err != nil {
			return nil, err
		}
		if node.GetID() != id {
			return nil, &MalformedRecordError{
				Kind:   kind,
				Field:  recordKeyID,
				Detail: "record identifier does not match its document key",
			}
		}
		nodes[id] = node
	}

	for _, id := range ids {
		if err := linkNode(nodes[id], nodes); err != nil {
			return nil, err
		}
	}

	return nodes, nil
}

// linkNode resolves a node's identifier lists into direct node references.
func linkNode(node model.SpecNode, nodes map[string]model.SpecNode) error {
	base := node.Base()

	resolve := func(ids []string, relation string) ([]model.SpecNode, error) {
		if len(ids) == 0 {
			return nil, nil
		}
		resolved := make([]model.SpecNode, len(ids))
		for i, refID := range ids {
			ref, exists := nodes[refID]
			if !exists {
				return nil, &DanglingReferenceError{NodeID: base.ID, RefID: refID, Relation: relation}
			}
			resolved[i] = ref
		}
		return resolved, nil
	}

	nextNodes, err := resolve(base.Next, "successor")
	if err != nil {
		return err
	}
	previousNodes, err := resolve(base.Previous, "predecessor")
	if err != nil {
		return err
	}
	childNodes, err := resolve(base.Children, "child")
	if err != nil {
		return err
	}

	if boundary, ok := node.(*model.BoundaryEvent); ok && boundary.AttachedTo != "" {
		if _, exists := nodes[boundary.AttachedTo]; !exists {
			return &DanglingReferenceError{
				NodeID:   base.ID,
				RefID:    boundary.AttachedTo,
				Relation: "attachment",
			}
		}
	}

	base.NextNodes = nextNodes
	base.PreviousNodes = previousNodes
	base.ChildNodes = childNodes
	return nil
}
