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

package model

import (
	"fmt"
)

// WorkflowSpec holds a complete workflow graph: its metadata and the nodes
// keyed by identifier. Node identifiers are unique within one spec. Insertion
// order is preserved for deterministic enumeration.
type WorkflowSpec struct {
	Name        string
	Version     string
	StartNodeID string
	nodes       map[string]SpecNode
	order       []string
}

// NewWorkflowSpec creates a new empty WorkflowSpec with the given name and version tag.
func NewWorkflowSpec(name string, version string) *WorkflowSpec {
	return &WorkflowSpec{
		Name:    name,
		Version: version,
		nodes:   make(map[string]SpecNode),
	}
}

// AddNode adds a node to the spec. It returns an error if a node with the same
// identifier already exists.
func (s *WorkflowSpec) AddNode(node SpecNode) error {
	id := node.GetID()
	if id == "" {
		return fmt.Errorf("node identifier is empty")
	}
	if _, exists := s.nodes[id]; exists {
		return fmt.Errorf("duplicate node identifier: %s", id)
	}
	s.nodes[id] = node
	s.order = append(s.order, id)
	return nil
}

// GetNode returns the node with the given identifier.
func (s *WorkflowSpec) GetNode(id string) (SpecNode, bool) {
	node, exists := s.nodes[id]
	return node, exists
}

// Nodes returns the spec's nodes in insertion order.
func (s *WorkflowSpec) Nodes() []SpecNode {
	nodes := make([]SpecNode, 0, len(s.order))
	for _, id := range s.order {
		nodes = append(nodes, s.nodes[id])
	}
	return nodes
}

// NodeIDs returns the spec's node identifiers in insertion order.
func (s *WorkflowSpec) NodeIDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Size returns the number of nodes in the spec.
func (s *WorkflowSpec) Size() int {
	return len(s.nodes)
}
