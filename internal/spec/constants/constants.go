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

// Package constants defines the discriminator kinds used across workflow graph nodes and event definitions.
package constants

// NodeKind identifies the concrete variant of a workflow graph node.
// The kind is carried in every serialized record and selects the codec at decode time.
type NodeKind string

const (
	// NodeKindSimpleTask represents a plain task with no variant-specific payload.
	NodeKindSimpleTask NodeKind = "simple-task"
	// NodeKindStartEvent represents the entry point of a workflow graph.
	NodeKindStartEvent NodeKind = "start-event"
	// NodeKindEndEvent represents a terminal node of a workflow graph.
	NodeKindEndEvent NodeKind = "end-event"
	// NodeKindIntermediateCatchEvent represents a node that waits for an event to occur.
	NodeKindIntermediateCatchEvent NodeKind = "intermediate-catch-event"
	// NodeKindIntermediateThrowEvent represents a node that emits an event.
	NodeKindIntermediateThrowEvent NodeKind = "intermediate-throw-event"
	// NodeKindBoundaryEvent represents an event node attached to the boundary of another activity.
	NodeKindBoundaryEvent NodeKind = "boundary-event"
	// NodeKindExclusiveGateway represents a gateway that selects exactly one outgoing path.
	NodeKindExclusiveGateway NodeKind = "exclusive-gateway"
	// NodeKindParallelGateway represents a gateway that forks or joins parallel paths.
	NodeKindParallelGateway NodeKind = "parallel-gateway"
	// NodeKindScriptTask represents a task that evaluates a script body.
	NodeKindScriptTask NodeKind = "script-task"
	// NodeKindStandardLoopTask represents a task repeated while a condition holds.
	NodeKindStandardLoopTask NodeKind = "standard-loop-task"
	// NodeKindSequentialMultiInstanceTask represents a task expanded once per input item, in order.
	NodeKindSequentialMultiInstanceTask NodeKind = "sequential-multi-instance-task"
	// NodeKindParallelMultiInstanceTask represents a task expanded once per input item, concurrently.
	NodeKindParallelMultiInstanceTask NodeKind = "parallel-multi-instance-task"
	// NodeKindSubProcess represents an embedded child workflow.
	NodeKindSubProcess NodeKind = "sub-process"
	// NodeKindCallActivity represents an invocation of an independently deployed workflow.
	NodeKindCallActivity NodeKind = "call-activity"
)

// EventKind identifies the concrete variant of an event definition attached to an event node.
type EventKind string

const (
	// EventKindNone represents an event node with no trigger payload.
	EventKindNone EventKind = "none-event"
	// EventKindMessage represents a named message trigger with correlation keys.
	EventKindMessage EventKind = "message-event"
	// EventKindSignal represents a named broadcast signal trigger.
	EventKindSignal EventKind = "signal-event"
	// EventKindTimer represents a time-based trigger described by an expression.
	EventKindTimer EventKind = "timer-event"
	// EventKindError represents a named error trigger with an error code.
	EventKindError EventKind = "error-event"
	// EventKindEscalation represents a named escalation trigger with an escalation code.
	EventKindEscalation EventKind = "escalation-event"
	// EventKindCancel represents a transaction cancellation trigger.
	EventKindCancel EventKind = "cancel-event"
	// EventKindTerminate represents an immediate workflow termination trigger.
	EventKindTerminate EventKind = "terminate-event"
)
