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

// SimpleTask represents a plain task with no variant-specific payload.
type SimpleTask struct {
	NodeSpec
}

// NewSimpleTask creates a new SimpleTask with the given identifier.
func NewSimpleTask(id string) *SimpleTask {
	return &SimpleTask{NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindSimpleTask}}
}

// ScriptTask represents a task that evaluates a script body when executed.
type ScriptTask struct {
	NodeSpec
	Script string
}

// NewScriptTask creates a new ScriptTask with the given identifier and script body.
func NewScriptTask(id string, script string) *ScriptTask {
	return &ScriptTask{
		NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindScriptTask},
		Script:   script,
	}
}

// StandardLoopTask represents a task repeated while a condition holds.
type StandardLoopTask struct {
	NodeSpec
	Condition     string
	MaxIterations int
	TestBefore    bool
}

// NewStandardLoopTask creates a new StandardLoopTask with the given identifier and loop condition.
func NewStandardLoopTask(id string, condition string) *StandardLoopTask {
	return &StandardLoopTask{
		NodeSpec:  NodeSpec{ID: id, Kind: constants.NodeKindStandardLoopTask},
		Condition: condition,
	}
}

// MultiInstanceTask holds the fields shared by the sequential and parallel
// multi-instance variants.
type MultiInstanceTask struct {
	NodeSpec
	Cardinality string
	DataInput   string
	DataOutput  string
	InputItem   string
	OutputItem  string
	Condition   string
}

// SequentialMultiInstanceTask represents a task expanded once per input item, executed in order.
type SequentialMultiInstanceTask struct {
	MultiInstanceTask
}

// NewSequentialMultiInstanceTask creates a new SequentialMultiInstanceTask with the given
// identifier and cardinality expression.
func NewSequentialMultiInstanceTask(id string, cardinality string) *SequentialMultiInstanceTask {
	return &SequentialMultiInstanceTask{
		MultiInstanceTask: MultiInstanceTask{
			NodeSpec:    NodeSpec{ID: id, Kind: constants.NodeKindSequentialMultiInstanceTask},
			Cardinality: cardinality,
		},
	}
}

// ParallelMultiInstanceTask represents a task expanded once per input item, executed concurrently.
type ParallelMultiInstanceTask struct {
	MultiInstanceTask
}

// NewParallelMultiInstanceTask creates a new ParallelMultiInstanceTask with the given
// identifier and cardinality expression.
func NewParallelMultiInstanceTask(id string, cardinality string) *ParallelMultiInstanceTask {
	return &ParallelMultiInstanceTask{
		MultiInstanceTask: MultiInstanceTask{
			NodeSpec:    NodeSpec{ID: id, Kind: constants.NodeKindParallelMultiInstanceTask},
			Cardinality: cardinality,
		},
	}
}

// SubProcess represents an embedded child workflow. Children carries the
// identifiers of the contained nodes.
type SubProcess struct {
	NodeSpec
	SpecName string
}

// NewSubProcess creates a new SubProcess with the given identifier and contained workflow name.
func NewSubProcess(id string, specName string) *SubProcess {
	return &SubProcess{
		NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindSubProcess},
		SpecName: specName,
	}
}

// CallActivity represents an invocation of an independently deployed workflow.
type CallActivity struct {
	NodeSpec
	SpecName string
}

// NewCallActivity creates a new CallActivity with the given identifier and target workflow name.
func NewCallActivity(id string, specName string) *CallActivity {
	return &CallActivity{
		NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindCallActivity},
		SpecName: specName,
	}
}
