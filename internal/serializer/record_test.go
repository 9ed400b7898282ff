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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RecordTestSuite struct {
	suite.Suite
}

func TestRecordSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}

func (suite *RecordTestSuite) TestKind() {
	assert.Equal(suite.T(), "simple-task", Record{recordKeyKind: "simple-task"}.Kind())
	assert.Empty(suite.T(), Record{}.Kind())
	assert.Empty(suite.T(), Record{recordKeyKind: 42}.Kind())
}

func (suite *RecordTestSuite) TestStringField() {
	record := Record{"name": "order_paid", "count": 3}

	value, err := stringField(record, "message-event", "name")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "order_paid", value)

	_, err = stringField(record, "message-event", "missing")
	assert.Error(suite.T(), err)

	_, err = stringField(record, "message-event", "count")
	assert.Error(suite.T(), err)
}

func (suite *RecordTestSuite) TestStringSliceFieldAcceptsBothForms() {
	testCases := []struct {
		name     string
		value    any
		expected []string
		wantErr  bool
	}{
		{name: "StringSlice", value: []string{"a", "b"}, expected: []string{"a", "b"}},
		{name: "AnySlice", value: []any{"a", "b"}, expected: []string{"a", "b"}},
		{name: "EmptySlice", value: []any{}, expected: nil},
		{name: "Nil", value: nil, expected: nil},
		{name: "MixedSlice", value: []any{"a", 1}, wantErr: true},
		{name: "NotASlice", value: "a", wantErr: true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			record := Record{"next": tc.value}
			value, err := stringSliceField(record, "simple-task", "next")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func (suite *RecordTestSuite) TestIntFieldAcceptsNumericForms() {
	testCases := []struct {
		name     string
		value    any
		expected int
		wantErr  bool
	}{
		{name: "Int", value: 5, expected: 5},
		{name: "Int64", value: int64(5), expected: 5},
		{name: "Float64", value: 5.0, expected: 5},
		{name: "NotANumber", value: "5", wantErr: true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			record := Record{"max_iterations": tc.value}
			value, err := intField(record, "standard-loop-task", "max_iterations")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func (suite *RecordTestSuite) TestStringMapFieldAcceptsBothForms() {
	expected := map[string]string{"notify": "amount > 100"}

	value, err := stringMapField(Record{"conditions": map[string]string{"notify": "amount > 100"}},
		"exclusive-gateway", "conditions")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, value)

	value, err = stringMapField(Record{"conditions": map[string]any{"notify": "amount > 100"}},
		"exclusive-gateway", "conditions")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, value)

	_, err = stringMapField(Record{"conditions": map[string]any{"notify": 1}},
		"exclusive-gateway", "conditions")
	assert.Error(suite.T(), err)
}

func (suite *RecordTestSuite) TestBoolField() {
	value, err := boolField(Record{"test_before": true}, "standard-loop-task", "test_before")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), value)

	value, err = boolField(Record{}, "standard-loop-task", "test_before")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), value)

	_, err = boolField(Record{"test_before": "yes"}, "standard-loop-task", "test_before")
	assert.Error(suite.T(), err)
}
