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

// Package model defines the data structures for workflow instances.
package model

import (
	"github.com/asgardeo/flowkit/internal/serializer"
)

// InstanceStatus defines the lifecycle status of a workflow instance.
type InstanceStatus string

const (
	// InstanceStatusActive indicates that the instance is executing.
	InstanceStatusActive InstanceStatus = "ACTIVE"
	// InstanceStatusSuspended indicates that the instance is paused and may be patched.
	InstanceStatusSuspended InstanceStatus = "SUSPENDED"
	// InstanceStatusComplete indicates that the instance has finished.
	InstanceStatusComplete InstanceStatus = "COMPLETE"
	// InstanceStatusError indicates that the instance has failed.
	InstanceStatusError InstanceStatus = "ERROR"
)

// Per-node runtime field keys inside a persisted document's task mapping.
// The mapping is flat and schema-free; these are the keys the engine writes.
const (
	// TaskFieldStatus is the runtime status of one node's task.
	TaskFieldStatus = "status"
	// TaskFieldData is the accumulated task data of one node.
	TaskFieldData = "data"
	// TaskFieldChildren is the number of multi-instance children produced by one node.
	TaskFieldChildren = "children"
)

// Instance represents a persisted workflow instance: its identifier, lifecycle
// status, and the serialized document holding the graph and runtime state.
type Instance struct {
	ID       string
	Status   InstanceStatus
	Document serializer.Record
}

// BasicInstance holds the instance attributes returned by list operations,
// without the document payload.
type BasicInstance struct {
	ID          string
	Status      InstanceStatus
	SpecName    string
	SpecVersion string
}
