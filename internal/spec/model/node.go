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

// Package model defines the workflow graph node variants and event definitions.
package model

import (
	"github.com/asgardeo/flowkit/internal/spec/constants"
)

// SpecNode defines the interface implemented by every node variant in a workflow graph.
type SpecNode interface {
	GetID() string
	GetKind() constants.NodeKind
	Base() *NodeSpec
}

// NodeSpec holds the fields shared by every node variant.
//
// Next, Previous, and Children carry node identifiers and are the portable
// representation of the graph's edges. NextNodes, PreviousNodes, and
// ChildNodes carry direct references to the resolved nodes and are populated
// when a graph is linked; the identifier lists remain authoritative.
type NodeSpec struct {
	ID       string
	Kind     constants.NodeKind
	Next     []string
	Previous []string
	Children []string

	NextNodes     []SpecNode
	PreviousNodes []SpecNode
	ChildNodes    []SpecNode
}

// GetID returns the node's identifier.
func (n *NodeSpec) GetID() string {
	return n.ID
}

// GetKind returns the node's discriminator kind.
func (n *NodeSpec) GetKind() constants.NodeKind {
	return n.Kind
}

// Base returns the shared node fields.
func (n *NodeSpec) Base() *NodeSpec {
	return n
}

// EventCarrier is implemented by node variants that carry an event definition.
type EventCarrier interface {
	GetEventDefinition() EventDefinition
	SetEventDefinition(def EventDefinition)
}

// EventSupport provides event definition storage for event node variants.
type EventSupport struct {
	Event EventDefinition
}

// GetEventDefinition returns the event definition attached to the node.
func (e *EventSupport) GetEventDefinition() EventDefinition {
	return e.Event
}

// SetEventDefinition attaches an event definition to the node.
func (e *EventSupport) SetEventDefinition(def EventDefinition) {
	e.Event = def
}
