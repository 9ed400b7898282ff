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

// EventDefinition defines the interface implemented by every event definition variant.
// Exactly one event definition is attached to each event node; its kind is resolved
// through a registry independent of the node registry.
type EventDefinition interface {
	GetKind() constants.EventKind
}

// NoneEvent represents an event node with no trigger payload.
type NoneEvent struct{}

// GetKind returns the event definition's discriminator kind.
func (e *NoneEvent) GetKind() constants.EventKind {
	return constants.EventKindNone
}

// MessageEvent represents a named message trigger with correlation keys.
type MessageEvent struct {
	Name            string
	CorrelationKeys []string
}

// GetKind returns the event definition's discriminator kind.
func (e *MessageEvent) GetKind() constants.EventKind {
	return constants.EventKindMessage
}

// SignalEvent represents a named broadcast signal trigger.
type SignalEvent struct {
	Name string
}

// GetKind returns the event definition's discriminator kind.
func (e *SignalEvent) GetKind() constants.EventKind {
	return constants.EventKindSignal
}

// TimerEvent represents a time-based trigger described by an expression.
type TimerEvent struct {
	Name       string
	Expression string
}

// GetKind returns the event definition's discriminator kind.
func (e *TimerEvent) GetKind() constants.EventKind {
	return constants.EventKindTimer
}

// ErrorEvent represents a named error trigger with an error code.
type ErrorEvent struct {
	Name string
	Code string
}

// GetKind returns the event definition's discriminator kind.
func (e *ErrorEvent) GetKind() constants.EventKind {
	return constants.EventKindError
}

// EscalationEvent represents a named escalation trigger with an escalation code.
type EscalationEvent struct {
	Name string
	Code string
}

// GetKind returns the event definition's discriminator kind.
func (e *EscalationEvent) GetKind() constants.EventKind {
	return constants.EventKindEscalation
}

// CancelEvent represents a transaction cancellation trigger.
type CancelEvent struct{}

// GetKind returns the event definition's discriminator kind.
func (e *CancelEvent) GetKind() constants.EventKind {
	return constants.EventKindCancel
}

// TerminateEvent represents an immediate workflow termination trigger.
type TerminateEvent struct{}

// GetKind returns the event definition's discriminator kind.
func (e *TerminateEvent) GetKind() constants.EventKind {
	return constants.EventKindTerminate
}
