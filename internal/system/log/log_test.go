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

package log

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) TestGetLoggerReturnsSingleton() {
	first := GetLogger()
	second := GetLogger()

	assert.NotNil(suite.T(), first)
	assert.Same(suite.T(), first, second)
}

func (suite *LogTestSuite) TestWithReturnsNewLogger() {
	base := GetLogger()
	derived := base.With(String(LoggerKeyComponentName, "TestComponent"))

	assert.NotNil(suite.T(), derived)
	assert.NotSame(suite.T(), base, derived)
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		name     string
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{name: "Debug", input: "debug", expected: slog.LevelDebug},
		{name: "Info", input: "info", expected: slog.LevelInfo},
		{name: "Warn", input: "warn", expected: slog.LevelWarn},
		{name: "Error", input: "error", expected: slog.LevelError},
		{name: "UpperCase", input: "INFO", expected: slog.LevelInfo},
		{name: "Invalid", input: "loud", wantErr: true},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			level, err := parseLogLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func (suite *LogTestSuite) TestFieldHelpers() {
	assert.Equal(suite.T(), Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(suite.T(), Field{Key: "k", Value: 7}, Int("k", 7))
	assert.Equal(suite.T(), Field{Key: "k", Value: true}, Bool("k", true))

	err := errors.New("boom")
	assert.Equal(suite.T(), Field{Key: "error", Value: err}, Error(err))
}

func (suite *LogTestSuite) TestConvertFields() {
	attrs := convertFields([]Field{String("a", "1"), Int("b", 2)})
	assert.Len(suite.T(), attrs, 2)
}
