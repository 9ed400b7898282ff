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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const (
	testBaseQuery  = "SELECT INSTANCE_ID, DOCUMENT FROM INSTANCE_DOCUMENT WHERE 1=1"
	testColumnName = "document"
)

type QueryBuilderTestSuite struct {
	suite.Suite
}

func TestQueryBuilderSuite(t *testing.T) {
	suite.Run(t, new(QueryBuilderTestSuite))
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQuery() {
	queryID := "test_query"
	filters := map[string]interface{}{
		"spec_name":    "order-fulfilment",
		"spec_version": "3",
	}

	query, args, err := BuildFilterQuery(queryID, testBaseQuery, testColumnName, filters)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), queryID, query.ID)
	assert.Len(suite.T(), args, 2)

	// Keys are sorted, so spec_name binds before spec_version.
	assert.Equal(suite.T(), "order-fulfilment", args[0])
	assert.Equal(suite.T(), "3", args[1])

	postgresQuery := query.GetQuery("postgres")
	assert.Contains(suite.T(), postgresQuery, testBaseQuery)
	assert.Contains(suite.T(), postgresQuery, "document->>'spec_name' = $1")
	assert.Contains(suite.T(), postgresQuery, "document->>'spec_version' = $2")

	sqliteQuery := query.GetQuery("sqlite")
	assert.Contains(suite.T(), sqliteQuery, testBaseQuery)
	assert.Contains(suite.T(), sqliteQuery, "json_extract(document, '$.spec_name') = ?")
	assert.Contains(suite.T(), sqliteQuery, "json_extract(document, '$.spec_version') = ?")
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQueryEmptyFilters() {
	query, args, err := BuildFilterQuery("empty_filters", testBaseQuery, testColumnName,
		map[string]interface{}{})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), args)
	assert.Equal(suite.T(), testBaseQuery, query.GetQuery("postgres"))
	assert.Equal(suite.T(), testBaseQuery, query.GetQuery("sqlite"))
}

func (suite *QueryBuilderTestSuite) TestBuildFilterQueryInvalidKey() {
	testCases := []struct {
		name       string
		columnName string
		filters    map[string]interface{}
	}{
		{
			name:       "InvalidColumnName",
			columnName: "document; DROP TABLE INSTANCE_DOCUMENT",
			filters:    map[string]interface{}{"spec_name": "x"},
		},
		{
			name:       "InvalidFilterKey",
			columnName: testColumnName,
			filters:    map[string]interface{}{"spec name": "x"},
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			_, _, err := BuildFilterQuery("invalid_key", testBaseQuery, tc.columnName, tc.filters)
			assert.Error(t, err)
		})
	}
}
