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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/flowkit/internal/spec/constants"
	"github.com/asgardeo/flowkit/internal/spec/model"
)

// correlatingMessageEventConverter is a replacement message event codec that
// also carries a correlation scope, standing in for a deployment override.
type correlatingMessageEventConverter struct {
	scope string
}

func (c *correlatingMessageEventConverter) Kind() string {
	return string(constants.EventKindMessage)
}

func (c *correlatingMessageEventConverter) Encode(def model.EventDefinition) (Record, error) {
	message, ok := def.(*model.MessageEvent)
	if !ok {
		return nil, eventVariantMismatchError(constants.EventKindMessage, def)
	}
	record := Record{
		recordKeyKind: c.Kind(),
		recordKeyName: message.Name,
		"scope":       c.scope,
	}
	if len(message.CorrelationKeys) > 0 {
		record[recordKeyCorrelationKeys] = append([]string(nil), message.CorrelationKeys...)
	}
	return record, nil
}

func (c *correlatingMessageEventConverter) Decode(record Record) (model.EventDefinition, error) {
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

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) TestDefaultsResolveEveryKind() {
	nodeRegistry, eventRegistry, err := BuildRegistries(RegistryConfig{})
	assert.NoError(suite.T(), err)

	for _, converter := range DefaultNodeConverters() {
		resolved, err := nodeRegistry.Resolve(converter.Kind())
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), converter, resolved)
	}
	for _, converter := range DefaultEventConverters() {
		resolved, err := eventRegistry.Resolve(converter.Kind())
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), converter, resolved)
	}
}

func (suite *RegistryTestSuite) TestResolveUnknownKind() {
	nodeRegistry, _, err := BuildRegistries(RegistryConfig{})
	assert.NoError(suite.T(), err)

	converter, err := nodeRegistry.Resolve("manual-task")
	assert.Nil(suite.T(), converter)

	var unknownErr *UnknownTypeError
	assert.True(suite.T(), errors.As(err, &unknownErr))
	assert.Equal(suite.T(), "manual-task", unknownErr.Kind)
	assert.Equal(suite.T(), NodeRegistryName, unknownErr.Registry)
}

func (suite *RegistryTestSuite) TestReplaceSingleConverter() {
	replacement := &correlatingMessageEventConverter{scope: "tenant"}

	_, eventRegistry, err := BuildRegistries(RegistryConfig{
		EventRemovals:  []Converter[model.EventDefinition]{DefaultMessageEventConverter},
		EventAdditions: []Converter[model.EventDefinition]{replacement},
	})
	assert.NoError(suite.T(), err)

	resolved, err := eventRegistry.Resolve(string(constants.EventKindMessage))
	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), replacement, resolved)

	// Every other default is inherited unchanged.
	timer, err := eventRegistry.Resolve(string(constants.EventKindTimer))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), DefaultTimerEventConverter, timer)
}

func (suite *RegistryTestSuite) TestAdditionShadowsDefaultWithoutRemoval() {
	replacement := &correlatingMessageEventConverter{scope: "tenant"}

	registry, err := BuildRegistry(EventRegistryName, DefaultEventConverters(), nil,
		[]Converter[model.EventDefinition]{replacement})
	assert.NoError(suite.T(), err)

	resolved, err := registry.Resolve(string(constants.EventKindMessage))
	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), replacement, resolved)
}

func (suite *RegistryTestSuite) TestLaterAdditionShadowsEarlier() {
	first := &correlatingMessageEventConverter{scope: "first"}
	second := &correlatingMessageEventConverter{scope: "second"}

	registry, err := BuildRegistry(EventRegistryName, DefaultEventConverters(),
		[]Converter[model.EventDefinition]{DefaultMessageEventConverter},
		[]Converter[model.EventDefinition]{first, second})
	assert.NoError(suite.T(), err)

	resolved, err := registry.Resolve(string(constants.EventKindMessage))
	assert.NoError(suite.T(), err)
	assert.Same(suite.T(), second, resolved)
}

func (suite *RegistryTestSuite) TestRemovalNotInDefaults() {
	stranger := &correlatingMessageEventConverter{scope: "tenant"}

	registry, err := BuildRegistry(EventRegistryName, DefaultEventConverters(),
		[]Converter[model.EventDefinition]{stranger}, nil)
	assert.Nil(suite.T(), registry)

	var configErr *RegistryConfigError
	assert.True(suite.T(), errors.As(err, &configErr))
	assert.Equal(suite.T(), EventRegistryName, configErr.Registry)
	assert.Contains(suite.T(), configErr.Detail, "message-event")
}

func (suite *RegistryTestSuite) TestBuildDoesNotMutateDefaults() {
	defaults := DefaultEventConverters()
	originalLen := len(defaults)

	_, err := BuildRegistry(EventRegistryName, defaults,
		[]Converter[model.EventDefinition]{DefaultMessageEventConverter},
		[]Converter[model.EventDefinition]{&correlatingMessageEventConverter{scope: "tenant"}})
	assert.NoError(suite.T(), err)

	assert.Len(suite.T(), defaults, originalLen)
	assert.Equal(suite.T(), DefaultEventConverters(), defaults)
}

func (suite *RegistryTestSuite) TestKindsEnumerationIsDeterministic() {
	first, _, err := BuildRegistries(RegistryConfig{})
	assert.NoError(suite.T(), err)
	second, _, err := BuildRegistries(RegistryConfig{})
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), first.Kinds(), second.Kinds())
	assert.Len(suite.T(), first.Kinds(), len(DefaultNodeConverters()))
}
