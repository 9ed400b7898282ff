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
	"github.com/asgardeo/flowkit/internal/spec/constants"
)

// StartEvent represents the entry point of a workflow graph.
type StartEvent struct {
	NodeSpec
	EventSupport
}

// NewStartEvent creates a new StartEvent with the given identifier.
func NewStartEvent(id string) *StartEvent {
	return &StartEvent{NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindStartEvent}}
}

// EndEvent represents a terminal node of a workflow graph.
type EndEvent struct {
	NodeSpec
	EventSupport
}

// NewEndEvent creates a new EndEvent with the given identifier.
func NewEndEvent(id string) *EndEvent {
	return &EndEvent{NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindEndEvent}}
}

// IntermediateCatchEvent represents a node that waits for an event to occur.
type IntermediateCatchEvent struct {
	NodeSpec
	EventSupport
}

// NewIntermediateCatchEvent creates a new IntermediateCatchEvent with the given identifier.
func NewIntermediateCatchEvent(id string) *IntermediateCatchEvent {
	return &IntermediateCatchEvent{NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindIntermediateCatchEvent}}
}

// IntermediateThrowEvent represents a node that emits an event.
type IntermediateThrowEvent struct {
	NodeSpec
	EventSupport
}

// NewIntermediateThrowEvent creates a new IntermediateThrowEvent with the given identifier.
func NewIntermediateThrowEvent(id string) *IntermediateThrowEvent {
	return &IntermediateThrowEvent{NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindIntermediateThrowEvent}}
}

// BoundaryEvent represents an event node attached to the boundary of another activity.
// CancelActivity controls whether the attached activity is interrupted when the event fires.
type BoundaryEvent struct {
	NodeSpec
	EventSupport
	AttachedTo     string
	CancelActivity bool
}

// NewBoundaryEvent creates a new BoundaryEvent attached to the given activity.
func NewBoundaryEvent(id string, attachedTo string, cancelActivity bool) *BoundaryEvent {
	return &BoundaryEvent{
		NodeSpec:       NodeSpec{ID: id, Kind: constants.NodeKindBoundaryEvent},
		AttachedTo:     attachedTo,
		CancelActivity: cancelActivity,
	}
}
