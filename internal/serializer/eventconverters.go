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

	"github.com/asgardeo/flowkit/internal/spec/constants"
	"github.com/asgardeo/flowkit/internal/spec/model"
)

const (
	recordKeyName            = "name"
	recordKeyCorrelationKeys = "correlation_keys"
	recordKeyExpression      = "expression"
	recordKeyCode            = "code"
)

// eventVariantMismatchError reports an encode call dispatched to the wrong converter.
func eventVariantMismatchError(kind constants.EventKind, def model.EventDefinition) error {
	return fmt.Errorf("converter for kind %q cannot encode event definition of kind %q", kind, def.GetKind())
}

// NoneEventConverter is the codec for event definitions with no trigger payload.
type NoneEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *NoneEventConverter) Kind() string {
	return string(constants.EventKindNone)
}

// Encode converts a none event definition into a tagged record.
func (c *NoneEventConverter) Encode(def model.EventDefinition) (Record, error) {
	if _, ok := def.(*model.NoneEvent); !ok {
		return nil, eventVariantMismatchError(constants.EventKindNone, def)
	}
	return Record{recordKeyKind: c.Kind()}, nil
}

// Decode reconstructs a none event definition from a tagged record.
func (c *NoneEventConverter) Decode(record Record) (model.EventDefinition, error) {
	return &model.NoneEvent{}, nil
}

// MessageEventConverter is the codec for message event definitions.
type MessageEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *MessageEventConverter) Kind() string {
	return string(constants.EventKindMessage)
}

// Encode converts a message event definition into a tagged record.
func (c *MessageEventConverter) Encode(def model.EventDefinition) (Record, error) {
	message, ok := def.(*model.MessageEvent)
	if !ok {
		return nil, eventVariantMismatchError(constants.EventKindMessage, def)
	}
	record := Record{
		recordKeyKind: c.Kind(),
		recordKeyName: message.Name,
	}
	if len(message.CorrelationKeys) > 0 {
		record[recordKeyCorrelationKeys] = append([]string(nil), message.CorrelationKeys...)
	}
	return record, nil
}

// Decode reconstructs a message event definition from a tagged record.
func (c *MessageEventConverter) Decode(record Record) (model.EventDefinition, error) {
	name, err := stringField(record, c.Kind(), recordKeyName)
	if err != nil {
		return nil, err
	}
	correlationKeys, err := stringSliceField(record, c.Kind(), recordKeyCorrelationKeys)
	if err != nil {
		return nil, err
	}
	return &model.MessageEvent{Name: name, CorrelationKeys: correlationKeys}, nil
}

// SignalEventConverter is the codec for signal event definitions.
type SignalEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *SignalEventConverter) Kind() string {
	return string(constants.EventKindSignal)
}

// Encode converts a signal event definition into a tagged record.
func (c *SignalEventConverter) Encode(def model.EventDefinition) (Record, error) {
	signal, ok := def.(*model.SignalEvent)
	if !ok {
		return nil, eventVariantMismatchError(constants.EventKindSignal, def)
	}
	return Record{recordKeyKind: c.Kind(), recordKeyName: signal.Name}, nil
}

// Decode reconstructs a signal event definition from a tagged record.
func (c *SignalEventConverter) Decode(record Record) (model.EventDefinition, error) {
	name, err := stringField(record, c.Kind(), recordKeyName)
	if err != nil {
		return nil, err
	}
	return &model.SignalEvent{Name: name}, nil
}

// TimerEventConverter is the codec for timer event definitions.
type TimerEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *TimerEventConverter) Kind() string {
	return string(constants.EventKindTimer)
}

// Encode converts a timer event definition into a tagged record.
func (c *TimerEventConverter) Encode(def model.EventDefinition) (Record, error) {
	timer, ok := def.(*model.TimerEvent)
	if !ok {
		return nil, eventVariantMismatchError(constants.EventKindTimer, def)
	}
	record := Record{
		recordKeyKind:       c.Kind(),
		recordKeyExpression: timer.Expression,
	}
	if timer.Name != "" {
		record[recordKeyName] = timer.Name
	}
	return record, nil
}

// Decode reconstructs a timer event definition from a tagged record.
func (c *TimerEventConverter) Decode(record Record) (model.EventDefinition, error) {
	expression, err := stringField(record, c.Kind(), recordKeyExpression)
	if err != nil {
		return nil, err
	}
	name, err := optionalStringField(record, c.Kind(), recordKeyName)
	if err != nil {
		return nil, err
	}
	return &model.TimerEvent{Name: name, Expression: expression}, nil
}

// ErrorEventConverter is the codec for error event definitions.
type ErrorEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *ErrorEventConverter) Kind() string {
	return string(constants.EventKindError)
}

// Encode converts an error event definition into a tagged record.
func (c *ErrorEventConverter) Encode(def model.EventDefinition) (Record, error) {
	errorEvent, ok := def.(*model.ErrorEvent)
	if !ok {
		return nil, eventVariantMismatchError(constants.EventKindError, def)
	}
	record := Record{recordKeyKind: c.Kind(), recordKeyName: errorEvent.Name}
	if errorEvent.Code != "" {
		record[recordKeyCode] = errorEvent.Code
	}
	return record, nil
}

// Decode reconstructs an error event definition from a tagged record.
func (c *ErrorEventConverter) Decode(record Record) (model.EventDefinition, error) {
	name, err := stringField(record, c.Kind(), recordKeyName)
	if err != nil {
		return nil, err
	}
	code, err := optionalStringField(record, c.Kind(), recordKeyCode)
	if err != nil {
		return nil, err
	}
	return &model.ErrorEvent{Name: name, Code: code}, nil
}

// EscalationEventConverter is the codec for escalation event definitions.
type EscalationEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *EscalationEventConverter) Kind() string {
	return string(constants.EventKindEscalation)
}

// Encode converts an escalation event definition into a tagged record.
func (c *EscalationEventConverter) Encode(def model.EventDefinition) (Record, error) {
	escalation, ok := def.(*model.EscalationEvent)
	if !ok {
		return nil, eventVariantMismatchError(constants.EventKindEscalation, def)
	}
	record := Record{recordKeyKind: c.Kind(), recordKeyName: escalation.Name}
	if escalation.Code != "" {
		record[recordKeyCode] = escalation.Code
	}
	return record, nil
}

// Decode reconstructs an escalation event definition from a tagged record.
func (c *EscalationEventConverter) Decode(record Record) (model.EventDefinition, error) {
	name, err := stringField(record, c.Kind(), recordKeyName)
	if err != nil {
		return nil, err
	}
	code, err := optionalStringField(record, c.Kind(), recordKeyCode)
	if err != nil {
		return nil, err
	}
	return &model.EscalationEvent{Name: name, Code: code}, nil
}

// CancelEventConverter is the codec for cancel event definitions.
type CancelEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *CancelEventConverter) Kind() string {
	return string(constants.EventKindCancel)
}

// Encode converts a cancel event definition into a tagged record.
func (c *CancelEventConverter) Encode(def model.EventDefinition) (Record, error) {
	if _, ok := def.(*model.CancelEvent); !ok {
		return nil, eventVariantMismatchError(constants.EventKindCancel, def)
	}
	return Record{recordKeyKind: c.Kind()}, nil
}

// Decode reconstructs a cancel event definition from a tagged record.
func (c *CancelEventConverter) Decode(record Record) (model.EventDefinition, error) {
	return &model.CancelEvent{}, nil
}

// TerminateEventConverter is the codec for terminate event definitions.
type TerminateEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *TerminateEventConverter) Kind() string {
	return string(constants.EventKindTerminate)
}

// Encode converts a terminate event definition into a tagged record.
func (c *TerminateEventConverter) Encode(def model.EventDefinition) (Record, error) {
	if _, ok := def.(*model.TerminateEvent); !ok {
		return nil, eventVariantMismatchError(constants.EventKindTerminate, def)
	}
	return Record{recordKeyKind: c.Kind()}, nil
}

// Decode reconstructs a terminate event definition from a tagged record.
func (c *TerminateEventConverter) Decode(record Record) (model.EventDefinition, error) {
	return &model.TerminateEvent{}, nil
}
