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
	"github.com/asgardeo/flowkit/internal/spec/model"
)

const (
	// NodeRegistryName identifies the node registry in error context.
	NodeRegistryName = "node"
	// EventRegistryName identifies the event definition registry in error context.
	EventRegistryName = "event-definition"
)

// Default converter instances. Removals in a RegistryConfig name these
// instances; identity against them is what the registry build checks.
var (
	DefaultSimpleTaskConverter                  Converter[model.SpecNode] = &SimpleTaskConverter{}
	DefaultStartEventConverter                  Converter[model.SpecNode] = &StartEventConverter{}
	DefaultEndEventConverter                    Converter[model.SpecNode] = &EndEventConverter{}
	DefaultIntermediateCatchEventConverter      Converter[model.SpecNode] = &IntermediateCatchEventConverter{}
	DefaultIntermediateThrowEventConverter      Converter[model.SpecNode] = &IntermediateThrowEventConverter{}
	DefaultBoundaryEventConverter               Converter[model.SpecNode] = &BoundaryEventConverter{}
	DefaultExclusiveGatewayConverter            Converter[model.SpecNode] = &ExclusiveGatewayConverter{}
	DefaultParallelGatewayConverter             Converter[model.SpecNode] = &ParallelGatewayConverter{}
	DefaultScriptTaskConverter                  Converter[model.SpecNode] = &ScriptTaskConverter{}
	DefaultStandardLoopTaskConverter            Converter[model.SpecNode] = &StandardLoopTaskConverter{}
	DefaultSequentialMultiInstanceTaskConverter Converter[model.SpecNode] = &SequentialMultiInstanceTaskConverter{}
	DefaultParallelMultiInstanceTaskConverter   Converter[model.SpecNode] = &ParallelMultiInstanceTaskConverter{}
	DefaultSubProcessConverter                  Converter[model.SpecNode] = &SubProcessConverter{}
	DefaultCallActivityConverter                Converter[model.SpecNode] = &CallActivityConverter{}

	DefaultNoneEventConverter       Converter[model.EventDefinition] = &NoneEventConverter{}
	DefaultMessageEventConverter    Converter[model.EventDefinition] = &MessageEventConverter{}
	DefaultSignalEventConverter     Converter[model.EventDefinition] = &SignalEventConverter{}
	DefaultTimerEventConverter      Converter[model.EventDefinition] = &TimerEventConverter{}
	DefaultErrorEventConverter      Converter[model.EventDefinition] = &ErrorEventConverter{}
	DefaultEscalationEventConverter Converter[model.EventDefinition] = &EscalationEventConverter{}
	DefaultCancelEventConverter     Converter[model.EventDefinition] = &CancelEventConverter{}
	DefaultTerminateEventConverter  Converter[model.EventDefinition] = &TerminateEventConverter{}
)

// DefaultNodeConverters returns the default node converter set.
func DefaultNodeConverters() []Converter[model.SpecNode] {
	return []Converter[model.SpecNode]{
		DefaultSimpleTaskConverter,
		DefaultStartEventConverter,
		DefaultEndEventConverter,
		DefaultIntermediateCatchEventConverter,
		DefaultIntermediateThrowEventConverter,
		DefaultBoundaryEventConverter,
		DefaultExclusiveGatewayConverter,
		DefaultParallelGatewayConverter,
		DefaultScriptTaskConverter,
		DefaultStandardLoopTaskConverter,
		DefaultSequentialMultiInstanceTaskConverter,
		DefaultParallelMultiInstanceTaskConverter,
		DefaultSubProcessConverter,
		DefaultCallActivityConverter,
	}
}

// DefaultEventConverters returns the default event definition converter set.
func DefaultEventConverters() []Converter[model.EventDefinition] {
	return []Converter[model.EventDefinition]{
		DefaultNoneEventConverter,
		DefaultMessageEventConverter,
		DefaultSignalEventConverter,
		DefaultTimerEventConverter,
		DefaultErrorEventConverter,
		DefaultEscalationEventConverter,
		DefaultCancelEventConverter,
		DefaultTerminateEventConverter,
	}
}

// RegistryConfig describes a deployment's converter overrides for both
// registries. Overrides apply in a fixed sequence: start from the defaults,
// remove, then append, so customization is deterministic regardless of
// declaration order.
type RegistryConfig struct {
	NodeRemovals  []Converter[model.SpecNode]
	NodeAdditions []Converter[model.SpecNode]

	EventRemovals  []Converter[model.EventDefinition]
	EventAdditions []Converter[model.EventDefinition]
}

// BuildRegistries materializes the node and event definition registries from
// the default converter sets and the given overrides.
func BuildRegistries(cfg RegistryConfig) (*Registry[model.SpecNode], *Registry[model.EventDefinition], error) {
	nodeRegistry, err := BuildRegistry(NodeRegistryName, DefaultNodeConverters(),
		cfg.NodeRemovals, cfg.NodeAdditions)
	if err != nil {
		return nil, nil, err
	}

	eventRegistry, err := BuildRegistry(EventRegistryName, DefaultEventConverters(),
		cfg.EventRemovals, cfg.EventAdditions)
	if err != nil {
		return nil, nil, err
	}

	return nodeRegistry, eventRegistry, nil
}
