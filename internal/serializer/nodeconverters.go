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
	recordKeyScript         = "script"
	recordKeyCondition      = "condition"
	recordKeyMaxIterations  = "max_iterations"
	recordKeyTestBefore     = "test_before"
	recordKeyCardinality    = "cardinality"
	recordKeyDataInput      = "data_input"
	recordKeyDataOutput     = "data_output"
	recordKeyInputItem      = "input_item"
	recordKeyOutputItem     = "output_item"
	recordKeyConditions     = "conditions"
	recordKeyDefaultNext    = "default_next"
	recordKeyAttachedTo     = "attached_to"
	recordKeyCancelActivity = "cancel_activity"
	recordKeySpecName       = "spec_name"
)

// encodeNodeBase produces a record holding the discriminator kind and the
// shared node fields. Edge lists are copied so the record never aliases the
// source node's slices.
func encodeNodeBase(base *model.NodeSpec) Record {
	record := Record{
		recordKeyKind: string(base.Kind),
		recordKeyID:   base.ID,
	}
	if len(base.Next) > 0 {
		record[recordKeyNext] = append([]string(nil), base.Next...)
	}
	if len(base.Previous) > 0 {
		record[recordKeyPrevious] = append([]string(nil), base.Previous...)
	}
	if len(base.Children) > 0 {
		record[recordKeyChildren] = append([]string(nil), base.Children...)
	}
	return record
}

// decodeNodeBase reads the shared node fields out of a record.
func decodeNodeBase(record Record, kind constants.NodeKind, base *model.NodeSpec) error {
	id, err := stringField(record, string(kind), recordKeyID)
	if err != nil {
		return err
	}
	next, err := stringSliceField(record, string(kind), recordKeyNext)
	if err != nil {
		return err
	}
	previous, err := stringSliceField(record, string(kind), recordKeyPrevious)
	if err != nil {
		return err
	}
	children, err := stringSliceField(record, string(kind), recordKeyChildren)
	if err != nil {
		return err
	}

	base.ID = id
	base.Kind = kind
	base.Next = next
	base.Previous = previous
	base.Children = children
	return nil
}

// variantMismatchError reports an encode call dispatched to the wrong converter.
func variantMismatchError(kind constants.NodeKind, node model.SpecNode) error {
	return fmt.Errorf("converter for kind %q cannot encode node %q of kind %q",
		kind, node.GetID(), node.GetKind())
}

// SimpleTaskConverter is the codec for simple task nodes.
type SimpleTaskConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *SimpleTaskConverter) Kind() string {
	return string(constants.NodeKindSimpleTask)
}

// Encode converts a simple task into a tagged record.
func (c *SimpleTaskConverter) Encode(node model.SpecNode) (Record, error) {
	if _, ok := node.(*model.SimpleTask); !ok {
		return nil, variantMismatchError(constants.NodeKindSimpleTask, node)
	}
	return encodeNodeBase(node.Base()), nil
}

// Decode reconstructs a simple task from a tagged record.
func (c *SimpleTaskConverter) Decode(record Record) (model.SpecNode, error) {
	task := &model.SimpleTask{}
	if err := decodeNodeBase(record, constants.NodeKindSimpleTask, &task.NodeSpec); err != nil {
		return nil, err
	}
	return task, nil
}

// StartEventConverter is the codec for start event nodes.
type StartEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *StartEventConverter) Kind() string {
	return string(constants.NodeKindStartEvent)
}

// Encode converts a start event into a tagged record.
func (c *StartEventConverter) Encode(node model.SpecNode) (Record, error) {
	if _, ok := node.(*model.StartEvent); !ok {
		return nil, variantMismatchError(constants.NodeKindStartEvent, node)
	}
	return encodeNodeBase(node.Base()), nil
}

// Decode reconstructs a start event from a tagged record.
func (c *StartEventConverter) Decode(record Record) (model.SpecNode, error) {
	event := &model.StartEvent{}
	if err := decodeNodeBase(record, constants.NodeKindStartEvent, &event.NodeSpec); err != nil {
		return nil, err
	}
	return event, nil
}

// EndEventConverter is the codec for end event nodes.
type EndEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *EndEventConverter) Kind() string {
	return string(constants.NodeKindEndEvent)
}

// Encode converts an end event into a tagged record.
func (c *EndEventConverter) Encode(node model.SpecNode) (Record, error) {
	if _, ok := node.(*model.EndEvent); !ok {
		return nil, variantMismatchError(constants.NodeKindEndEvent, node)
	}
	return encodeNodeBase(node.Base()), nil
}

// Decode reconstructs an end event from a tagged record.
func (c *EndEventConverter) Decode(record Record) (model.SpecNode, error) {
	event := &model.EndEvent{}
	if err := decodeNodeBase(record, constants.NodeKindEndEvent, &event.NodeSpec); err != nil {
		return nil, err
	}
	return event, nil
}

// IntermediateCatchEventConverter is the codec for intermediate catch event nodes.
type IntermediateCatchEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *IntermediateCatchEventConverter) Kind() string {
	return string(constants.NodeKindIntermediateCatchEvent)
}

// Encode converts an intermediate catch event into a tagged record.
func (c *IntermediateCatchEventConverter) Encode(node model.SpecNode) (Record, error) {
	if _, ok := node.(*model.IntermediateCatchEvent); !ok {
		return nil, variantMismatchError(constants.NodeKindIntermediateCatchEvent, node)
	}
	return encodeNodeBase(node.Base()), nil
}

// Decode reconstructs an intermediate catch event from a tagged record.
func (c *IntermediateCatchEventConverter) Decode(record Record) (model.SpecNode, error) {
	event := &model.IntermediateCatchEvent{}
	if err := decodeNodeBase(record, constants.NodeKindIntermediateCatchEvent, &event.NodeSpec); err != nil {
		return nil, err
	}
	return event, nil
}

// IntermediateThrowEventConverter is the codec for intermediate throw event nodes.
type IntermediateThrowEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *IntermediateThrowEventConverter) Kind() string {
	return string(constants.NodeKindIntermediateThrowEvent)
}

// Encode converts an intermediate throw event into a tagged record.
func (c *IntermediateThrowEventConverter) Encode(node model.SpecNode) (Record, error) {
	if _, ok := node.(*model.IntermediateThrowEvent); !ok {
		return nil, variantMismatchError(constants.NodeKindIntermediateThrowEvent, node)
	}
	return encodeNodeBase(node.Base()), nil
}

// Decode reconstructs an intermediate throw event from a tagged record.
func (c *IntermediateThrowEventConverter) Decode(record Record) (model.SpecNode, error) {
	event := &model.IntermediateThrowEvent{}
	if err := decodeNodeBase(record, constants.NodeKindIntermediateThrowEvent, &event.NodeSpec); err != nil {
		return nil, err
	}
	return event, nil
}

// BoundaryEventConverter is the codec for boundary event nodes.
type BoundaryEventConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *BoundaryEventConverter) Kind() string {
	return string(constants.NodeKindBoundaryEvent)
}

// Encode converts a boundary event into a tagged record.
func (c *BoundaryEventConverter) Encode(node model.SpecNode) (Record, error) {
	event, ok := node.(*model.BoundaryEvent)
	if !ok {
		return nil, variantMismatchError(constants.NodeKindBoundaryEvent, node)
	}
	record := encodeNodeBase(node.Base())
	record[recordKeyAttachedTo] = event.AttachedTo
	record[recordKeyCancelActivity] = event.CancelActivity
	return record, nil
}

// Decode reconstructs a boundary event from a tagged record.
func (c *BoundaryEventConverter) Decode(record Record) (model.SpecNode, error) {
	event := &model.BoundaryEvent{}
	if err := decodeNodeBase(record, constants.NodeKindBoundaryEvent, &event.NodeSpec); err != nil {
		return nil, err
	}
	attachedTo, err := stringField(record, c.Kind(), recordKeyAttachedTo)
	if err != nil {
		return nil, err
	}
	cancelActivity, err := boolField(record, c.Kind(), recordKeyCancelActivity)
	if err != nil {
		return nil, err
	}
	event.AttachedTo = attachedTo
	event.CancelActivity = cancelActivity
	return event, nil
}

// ExclusiveGatewayConverter is the codec for exclusive gateway nodes.
type ExclusiveGatewayConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *ExclusiveGatewayConverter) Kind() string {
	return string(constants.NodeKindExclusiveGateway)
}

// Encode converts an exclusive gateway into a tagged record.
func (c *ExclusiveGatewayConverter) Encode(node model.SpecNode) (Record, error) {
	gateway, ok := node.(*model.ExclusiveGateway)
	if !ok {
		return nil, variantMismatchError(constants.NodeKindExclusiveGateway, node)
	}
	record := encodeNodeBase(node.Base())
	if len(gateway.Conditions) > 0 {
		conditions := make(map[string]string, len(gateway.Conditions))
		for successor, expression := range gateway.Conditions {
			conditions[successor] = expression
		}
		record[recordKeyConditions] = conditions
	}
	if gateway.DefaultNext != "" {
		record[recordKeyDefaultNext] = gateway.DefaultNext
	}
	return record, nil
}

// Decode reconstructs an exclusive gateway from a tagged record.
func (c *ExclusiveGatewayConverter) Decode(record Record) (model.SpecNode, error) {
	gateway := &model.ExclusiveGateway{}
	if err := decodeNodeBase(record, constants.NodeKindExclusiveGateway, &gateway.NodeSpec); err != nil {
		return nil, err
	}
	conditions, err := stringMapField(record, c.Kind(), recordKeyConditions)
	if err != nil {
		return nil, err
	}
	defaultNext, err := optionalStringField(record, c.Kind(), recordKeyDefaultNext)
	if err != nil {
		return nil, err
	}
	if conditions == nil {
		conditions = make(map[string]string)
	}
	gateway.Conditions = conditions
	gateway.DefaultNext = defaultNext
	return gateway, nil
}

// ParallelGatewayConverter is the codec for parallel gateway nodes.
type ParallelGatewayConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *ParallelGatewayConverter) Kind() string {
	return string(constants.NodeKindParallelGateway)
}

// Encode converts a parallel gateway into a tagged record.
func (c *ParallelGatewayConverter) Encode(node model.SpecNode) (Record, error) {
	if _, ok := node.(*model.ParallelGateway); !ok {
		return nil, variantMismatchError(constants.NodeKindParallelGateway, node)
	}
	return encodeNodeBase(node.Base()), nil
}

// Decode reconstructs a parallel gateway from a tagged record.
func (c *ParallelGatewayConverter) Decode(record Record) (model.SpecNode, error) {
	gateway := &model.ParallelGateway{}
	if err := decodeNodeBase(record, constants.NodeKindParallelGateway, &gateway.NodeSpec); err != nil {
		return nil, err
	}
	return gateway, nil
}

// ScriptTaskConverter is the codec for script task nodes.
type ScriptTaskConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *ScriptTaskConverter) Kind() string {
	return string(constants.NodeKindScriptTask)
}

// Encode converts a script task into a tagged record.
func (c *ScriptTaskConverter) Encode(node model.SpecNode) (Record, error) {
	task, ok := node.(*model.ScriptTask)
	if !ok {
		return nil, variantMismatchError(constants.NodeKindScriptTask, node)
	}
	record := encodeNodeBase(node.Base())
	record[recordKeyScript] = task.Script
	return record, nil
}

// Decode reconstructs a script task from a tagged record.
func (c *ScriptTaskConverter) Decode(record Record) (model.SpecNode, error) {
	task := &model.ScriptTask{}
	if err := decodeNodeBase(record, constants.NodeKindScriptTask, &task.NodeSpec); err != nil {
		return nil, err
	}
	script, err := stringField(record, c.Kind(), recordKeyScript)
	if err != nil {
		return nil, err
	}
	task.Script = script
	return task, nil
}

// StandardLoopTaskConverter is the codec for standard loop task nodes.
type StandardLoopTaskConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *StandardLoopTaskConverter) Kind() string {
	return string(constants.NodeKindStandardLoopTask)
}

// Encode converts a standard loop task into a tagged record.
func (c *StandardLoopTaskConverter) Encode(node model.SpecNode) (Record, error) {
	task, ok := node.(*model.StandardLoopTask)
	if !ok {
		return nil, variantMismatchError(constants.NodeKindStandardLoopTask, node)
	}
	record := encodeNodeBase(node.Base())
	record[recordKeyCondition] = task.Condition
	if task.MaxIterations > 0 {
		record[recordKeyMaxIterations] = task.MaxIterations
	}
	if task.TestBefore {
		record[recordKeyTestBefore] = task.TestBefore
	}
	return record, nil
}

// Decode reconstructs a standard loop task from a tagged record.
func (c *StandardLoopTaskConverter) Decode(record Record) (model.SpecNode, error) {
	task := &model.StandardLoopTask{}
	if err := decodeNodeBase(record, constants.NodeKindStandardLoopTask, &task.NodeSpec); err != nil {
		return nil, err
	}
	condition, err := stringField(record, c.Kind(), recordKeyCondition)
	if err != nil {
		return nil, err
	}
	maxIterations, err := intField(record, c.Kind(), recordKeyMaxIterations)
	if err != nil {
		return nil, err
	}
	testBefore, err := boolField(record, c.Kind(), recordKeyTestBefore)
	if err != nil {
		return nil, err
	}
	task.Condition = condition
	task.MaxIterations = maxIterations
	task.TestBefore = testBefore
	return task, nil
}

// encodeMultiInstance writes the multi-instance payload fields into a record.
func encodeMultiInstance(record Record, task *model.MultiInstanceTask) {
	record[recordKeyCardinality] = task.Cardinality
	if task.DataInput != "" {
		record[recordKeyDataInput] = task.DataInput
	}
	if task.DataOutput != "" {
		record[recordKeyDataOutput] = task.DataOutput
	}
	if task.InputItem != "" {
		record[recordKeyInputItem] = task.InputItem
	}
	if task.OutputItem != "" {
		record[recordKeyOutputItem] = task.OutputItem
	}
	if task.Condition != "" {
		record[recordKeyCondition] = task.Condition
	}
}

// decodeMultiInstance reads the multi-instance payload fields out of a record.
func decodeMultiInstance(record Record, kind string, task *model.MultiInstanceTask) error {
	cardinality, err := stringField(record, kind, recordKeyCardinality)
	if err != nil {
		return err
	}
	dataInput, err := optionalStringField(record, kind, recordKeyDataInput)
	if err != nil {
		return err
	}
	dataOutput, err := optionalStringField(record, kind, recordKeyDataOutput)
	if err != nil {
		return err
	}
	inputItem, err := optionalStringField(record, kind, recordKeyInputItem)
	if err != nil {
		return err
	}
	outputItem, err := optionalStringField(record, kind, recordKeyOutputItem)
	if err != nil {
		return err
	}
	condition, err := optionalStringField(record, kind, recordKeyCondition)
	if err != nil {
		return err
	}

	task.Cardinality = cardinality
	task.DataInput = dataInput
	task.DataOutput = dataOutput
	task.InputItem = inputItem
	task.OutputItem = outputItem
	task.Condition = condition
	return nil
}

// SequentialMultiInstanceTaskConverter is the codec for sequential multi-instance task nodes.
type SequentialMultiInstanceTaskConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *SequentialMultiInstanceTaskConverter) Kind() string {
	return string(constants.NodeKindSequentialMultiInstanceTask)
}

// Encode converts a sequential multi-instance task into a tagged record.
func (c *SequentialMultiInstanceTaskConverter) Encode(node model.SpecNode) (Record, error) {
	task, ok := node.(*model.SequentialMultiInstanceTask)
	if !ok {
		return nil, variantMismatchError(constants.NodeKindSequentialMultiInstanceTask, node)
	}
	record := encodeNodeBase(node.Base())
	encodeMultiInstance(record, &task.MultiInstanceTask)
	return record, nil
}

// Decode reconstructs a sequential multi-instance task from a tagged record.
func (c *SequentialMultiInstanceTaskConverter) Decode(record Record) (model.SpecNode, error) {
	task := &model.SequentialMultiInstanceTask{}
	if err := decodeNodeBase(record, constants.NodeKindSequentialMultiInstanceTask, &task.NodeSpec); err != nil {
		return nil, err
	}
	if err := decodeMultiInstance(record, c.Kind(), &task.MultiInstanceTask); err != nil {
		return nil, err
	}
	return task, nil
}

// ParallelMultiInstanceTaskConverter is the codec for parallel multi-instance task nodes.
type ParallelMultiInstanceTaskConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *ParallelMultiInstanceTaskConverter) Kind() string {
	return string(constants.NodeKindParallelMultiInstanceTask)
}

// Encode converts a parallel multi-instance task into a tagged record.
func (c *ParallelMultiInstanceTaskConverter) Encode(node model.SpecNode) (Record, error) {
	task, ok := node.(*model.ParallelMultiInstanceTask)
	if !ok {
		return nil, variantMismatchError(constants.NodeKindParallelMultiInstanceTask, node)
	}
	record := encodeNodeBase(node.Base())
	encodeMultiInstance(record, &task.MultiInstanceTask)
	return record, nil
}

// Decode reconstructs a parallel multi-instance task from a tagged record.
func (c *ParallelMultiInstanceTaskConverter) Decode(record Record) (model.SpecNode, error) {
	task := &model.ParallelMultiInstanceTask{}
	if err := decodeNodeBase(record, constants.NodeKindParallelMultiInstanceTask, &task.NodeSpec); err != nil {
		return nil, err
	}
	if err := decodeMultiInstance(record, c.Kind(), &task.MultiInstanceTask); err != nil {
		return nil, err
	}
	return task, nil
}

// SubProcessConverter is the codec for sub-process nodes.
type SubProcessConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *SubProcessConverter) Kind() string {
	return string(constants.NodeKindSubProcess)
}

// Encode converts a sub-process into a tagged record.
func (c *SubProcessConverter) Encode(node model.SpecNode) (Record, error) {
	subProcess, ok := node.(*model.SubProcess)
	if !ok {
		return nil, variantMismatchError(constants.NodeKindSubProcess, node)
	}
	record := encodeNodeBase(node.Base())
	record[recordKeySpecName] = subProcess.SpecName
	return record, nil
}

// Decode reconstructs a sub-process from a tagged record.
func (c *SubProcessConverter) Decode(record Record) (model.SpecNode, error) {
	subProcess := &model.SubProcess{}
	if err := decodeNodeBase(record, constants.NodeKindSubProcess, &subProcess.NodeSpec); err != nil {
		return nil, err
	}
	specName, err := stringField(record, c.Kind(), recordKeySpecName)
	if err != nil {
		return nil, err
	}
	subProcess.SpecName = specName
	return subProcess, nil
}

// CallActivityConverter is the codec for call activity nodes.
type CallActivityConverter struct{}

// Kind returns the discriminator kind handled by this converter.
func (c *CallActivityConverter) Kind() string {
	return string(constants.NodeKindCallActivity)
}

// Encode converts a call activity into a tagged record.
func (c *CallActivityConverter) Encode(node model.SpecNode) (Record, error) {
	callActivity, ok := node.(*model.CallActivity)
	if !ok {
		return nil, variantMismatchError(constants.NodeKindCallActivity, node)
	}
	record := encodeNodeBase(node.Base())
	record[recordKeySpecName] = callActivity.SpecName
	return record, nil
}

// Decode reconstructs a call activity from a tagged record.
func (c *CallActivityConverter) Decode(record Record) (model.SpecNode, error) {
	callActivity := &model.CallActivity{}
	if err := decodeNodeBase(record, constants.NodeKindCallActivity, &callActivity.NodeSpec); err != nil {
		return nil, err
	}
	specName, err := stringField(record, c.Kind(), recordKeySpecName)
	if err != nil {
		return nil, err
	}
	callActivity.SpecName = specName
	return callActivity, nil
}
