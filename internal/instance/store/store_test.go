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

package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/flowkit/internal/instance/model"
	"github.com/asgardeo/flowkit/internal/serializer"
	"github.com/asgardeo/flowkit/internal/system/cache"
	"github.com/asgardeo/flowkit/internal/system/database/client"
	dbmodel "github.com/asgardeo/flowkit/internal/system/database/model"
	"github.com/asgardeo/flowkit/tests/mocks/databasemock"
)

const testInstanceID = "e2c6f3a0-2f1a-4c3e-8f5d-0a1b2c3d4e5f"

type InstanceStoreTestSuite struct {
	suite.Suite
	mockProvider *databasemock.MockDBProvider
	mockClient   *databasemock.MockDBClient
	store        InstanceStoreInterface
}

func TestInstanceStoreSuite(t *testing.T) {
	suite.Run(t, new(InstanceStoreTestSuite))
}

func (suite *InstanceStoreTestSuite) SetupTest() {
	suite.mockClient = &databasemock.MockDBClient{}
	suite.mockProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return suite.mockClient, nil
		},
	}
	suite.store = &InstanceStore{
		DBProvider: suite.mockProvider,
	}
}

func testDocument() serializer.Record {
	return serializer.Record{
		serializer.DocumentKeySerializerVersion: serializer.SerializerVersion,
		serializer.DocumentKeySpecName:    "order-flow",
		serializer.DocumentKeySpecVersion: "2",
		serializer.DocumentKeyStartNodeID: "start",
		serializer.DocumentKeyNodes: map[string]any{
			"start": map[string]any{"typename": "start-event", "id": "start"},
		},
		serializer.DocumentKeyEventDefinitions: map[string]any{},
		serializer.DocumentKeyTasks: map[string]any{
			"pay": map[string]any{
				model.TaskFieldStatus: "ACTIVE",
				model.TaskFieldData:   map[string]any{"amount": float64(42)},
			},
		},
	}
}

func testDocumentBlob(t serializer.Record) string {
	blob, err := json.Marshal(t)
	if err != nil {
		panic(err)
	}
	return string(blob)
}

func (suite *InstanceStoreTestSuite) TestCreateInstance() {
	instance := model.Instance{
		ID:       testInstanceID,
		Status:   model.InstanceStatusActive,
		Document: testDocument(),
	}

	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		suite.Equal(QueryCreateInstanceDocument.ID, query.ID)
		suite.Len(args, 3)
		suite.Equal(testInstanceID, args[0])
		suite.Equal(string(model.InstanceStatusActive), args[1])

		var stored serializer.Record
		suite.NoError(json.Unmarshal([]byte(args[2].(string)), &stored))
		suite.Equal("order-flow", stored[serializer.DocumentKeySpecName])
		return 1, nil
	}

	err := suite.store.CreateInstance(instance)
	suite.NoError(err)
	suite.Equal(1, suite.mockClient.CloseCalls)
}

func (suite *InstanceStoreTestSuite) TestCreateInstanceExecuteError() {
	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return 0, errors.New("constraint violation")
	}

	err := suite.store.CreateInstance(model.Instance{
		ID:       testInstanceID,
		Status:   model.InstanceStatusActive,
		Document: testDocument(),
	})
	suite.Error(err)
}

func (suite *InstanceStoreTestSuite) TestGetInstance() {
	doc := testDocument()
	suite.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		suite.Equal(QueryGetInstanceDocument.ID, query.ID)
		suite.Equal([]interface{}{testInstanceID}, args)
		return []map[string]interface{}{
			{
				"instance_id": testInstanceID,
				"status":      string(model.InstanceStatusSuspended),
				"document":    testDocumentBlob(doc),
			},
		}, nil
	}

	instance, err := suite.store.GetInstance(testInstanceID)
	suite.NoError(err)
	suite.Require().NotNil(instance)
	suite.Equal(testInstanceID, instance.ID)
	suite.Equal(model.InstanceStatusSuspended, instance.Status)
	suite.Equal("order-flow", instance.Document[serializer.DocumentKeySpecName])
}

func (suite *InstanceStoreTestSuite) TestGetInstanceBytesDocument() {
	suite.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{
			{
				"instance_id": testInstanceID,
				"status":      string(model.InstanceStatusActive),
				"document":    []byte(testDocumentBlob(testDocument())),
			},
		}, nil
	}

	instance, err := suite.store.GetInstance(testInstanceID)
	suite.NoError(err)
	suite.Require().NotNil(instance)
	suite.Equal("2", instance.Document[serializer.DocumentKeySpecVersion])
}

func (suite *InstanceStoreTestSuite) TestGetInstanceNotFound() {
	suite.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{}, nil
	}

	instance, err := suite.store.GetInstance("missing")
	suite.Nil(instance)
	suite.ErrorIs(err, ErrInstanceNotFound)
}

func (suite *InstanceStoreTestSuite) TestGetInstanceMalformedDocument() {
	suite.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{
			{
				"instance_id": testInstanceID,
				"status":      string(model.InstanceStatusActive),
				"document":    "{not json",
			},
		}, nil
	}

	instance, err := suite.store.GetInstance(testInstanceID)
	suite.Nil(instance)
	suite.Error(err)
}

func (suite *InstanceStoreTestSuite) TestUpdateInstance() {
	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		suite.Equal(QueryUpdateInstanceDocument.ID, query.ID)
		suite.Equal(testInstanceID, args[0])
		suite.Equal(string(model.InstanceStatusComplete), args[1])
		return 1, nil
	}

	err := suite.store.UpdateInstance(model.Instance{
		ID:       testInstanceID,
		Status:   model.InstanceStatusComplete,
		Document: testDocument(),
	})
	suite.NoError(err)
}

func (suite *InstanceStoreTestSuite) TestUpdateInstanceNotFound() {
	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return 0, nil
	}

	err := suite.store.UpdateInstance(model.Instance{
		ID:       "missing",
		Status:   model.InstanceStatusComplete,
		Document: testDocument(),
	})
	suite.ErrorIs(err, ErrInstanceNotFound)
}

func (suite *InstanceStoreTestSuite) TestUpdateInstanceStatus() {
	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		suite.Equal(QueryUpdateInstanceStatus.ID, query.ID)
		suite.Equal([]interface{}{testInstanceID, string(model.InstanceStatusSuspended)}, args)
		return 1, nil
	}

	err := suite.store.UpdateInstanceStatus(testInstanceID, model.InstanceStatusSuspended)
	suite.NoError(err)
}

func (suite *InstanceStoreTestSuite) TestUpdateInstanceStatusNotFound() {
	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return 0, nil
	}

	err := suite.store.UpdateInstanceStatus("missing", model.InstanceStatusSuspended)
	suite.ErrorIs(err, ErrInstanceNotFound)
}

func (suite *InstanceStoreTestSuite) TestDeleteInstance() {
	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		suite.Equal(QueryDeleteInstanceDocument.ID, query.ID)
		return 1, nil
	}

	err := suite.store.DeleteInstance(testInstanceID)
	suite.NoError(err)
}

func (suite *InstanceStoreTestSuite) TestDeleteInstanceMissingIsNoError() {
	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return 0, nil
	}

	err := suite.store.DeleteInstance("missing")
	suite.NoError(err)
}

func (suite *InstanceStoreTestSuite) TestListInstances() {
	suite.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		suite.Contains(query.Query, "WHERE 1 = 1")
		suite.Contains(query.PostgresQuery, "DOCUMENT->>'spec_name' = $1")
		suite.Contains(query.SQLiteQuery, "json_extract(DOCUMENT, '$.spec_name') = ?")
		suite.Equal([]interface{}{"order-flow"}, args)
		return []map[string]interface{}{
			{
				"instance_id": testInstanceID,
				"status":      string(model.InstanceStatusActive),
				"document":    testDocumentBlob(testDocument()),
			},
		}, nil
	}

	instances, err := suite.store.ListInstances(map[string]interface{}{"spec_name": "order-flow"})
	suite.NoError(err)
	suite.Require().Len(instances, 1)
	suite.Equal(testInstanceID, instances[0].ID)
	suite.Equal(model.InstanceStatusActive, instances[0].Status)
	suite.Equal("order-flow", instances[0].SpecName)
	suite.Equal("2", instances[0].SpecVersion)
}

func (suite *InstanceStoreTestSuite) TestListInstancesInvalidFilterKey() {
	_, err := suite.store.ListInstances(map[string]interface{}{"spec_name; DROP TABLE": "x"})
	suite.Error(err)
	suite.Empty(suite.mockClient.QueryCalls)
}

func (suite *InstanceStoreTestSuite) TestUpdateTaskData() {
	doc := testDocument()
	suite.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{
			{
				"instance_id": testInstanceID,
				"status":      string(model.InstanceStatusSuspended),
				"document":    testDocumentBlob(doc),
			},
		}, nil
	}

	newData := map[string]any{"amount": float64(99), "currency": "USD"}
	suite.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		suite.Equal(QueryUpdateInstanceDocumentBlob.ID, query.ID)
		suite.Equal(testInstanceID, args[0])

		var stored serializer.Record
		suite.NoError(json.Unmarshal([]byte(args[1].(string)), &stored))
		tasks := stored[serializer.DocumentKeyTasks].(map[string]any)
		entry := tasks["pay"].(map[string]any)
		suite.Equal(newData, entry[model.TaskFieldData])
		suite.Equal("ACTIVE", entry[model.TaskFieldStatus])

		// Node records pass through the patch untouched.
		nodes := stored[serializer.DocumentKeyNodes].(map[string]any)
		suite.Contains(nodes, "start")
		return 1, nil
	}

	err := suite.store.UpdateTaskData(testInstanceID, "pay", newData)
	suite.NoError(err)
}

func (suite *InstanceStoreTestSuite) TestUpdateTaskDataUnknownNode() {
	suite.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{
			{
				"instance_id": testInstanceID,
				"status":      string(model.InstanceStatusSuspended),
				"document":    testDocumentBlob(testDocument()),
			},
		}, nil
	}

	err := suite.store.UpdateTaskData(testInstanceID, "no-such-node", map[string]any{})
	suite.ErrorIs(err, ErrTaskNotFound)
	suite.Empty(suite.mockClient.ExecuteCalls)
}

func (suite *InstanceStoreTestSuite) TestUpdateTaskDataInstanceNotFound() {
	suite.mockClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{}, nil
	}

	err := suite.store.UpdateTaskData("missing", "pay", map[string]any{})
	suite.ErrorIs(err, ErrInstanceNotFound)
}

func (suite *InstanceStoreTestSuite) TestGetDBClientError() {
	suite.mockProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, errors.New("datasource not configured")
	}

	_, err := suite.store.GetInstance(testInstanceID)
	suite.Error(err)

	err = suite.store.DeleteInstance(testInstanceID)
	suite.Error(err)
}

type CachedBackedInstanceStoreTestSuite struct {
	suite.Suite
	backing *mockInstanceStore
	store   *CachedBackedInstanceStore
}

type mockInstanceStore struct {
	instances map[string]model.Instance
	getCalls  int
}

func (m *mockInstanceStore) CreateInstance(instance model.Instance) error {
	m.instances[instance.ID] = instance
	return nil
}

func (m *mockInstanceStore) GetInstance(instanceID string) (*model.Instance, error) {
	m.getCalls++
	instance, ok := m.instances[instanceID]
	if !ok {
		return nil, ErrInstanceNotFound
	}
	return &instance, nil
}

func (m *mockInstanceStore) UpdateInstance(instance model.Instance) error {
	if _, ok := m.instances[instance.ID]; !ok {
		return ErrInstanceNotFound
	}
	m.instances[instance.ID] = instance
	return nil
}

func (m *mockInstanceStore) UpdateInstanceStatus(instanceID string,
	status model.InstanceStatus) error {
	instance, ok := m.instances[instanceID]
	if !ok {
		return ErrInstanceNotFound
	}
	instance.Status = status
	m.instances[instanceID] = instance
	return nil
}

func (m *mockInstanceStore) DeleteInstance(instanceID string) error {
	delete(m.instances, instanceID)
	return nil
}

func (m *mockInstanceStore) ListInstances(
	filters map[string]interface{}) ([]model.BasicInstance, error) {
	return nil, nil
}

func (m *mockInstanceStore) UpdateTaskData(instanceID string, nodeID string,
	data map[string]any) error {
	if _, ok := m.instances[instanceID]; !ok {
		return ErrInstanceNotFound
	}
	return nil
}

type mapCacheManager struct {
	entries map[cache.CacheKey]*model.Instance
}

func (m *mapCacheManager) Set(key cache.CacheKey, value *model.Instance) error {
	m.entries[key] = value
	return nil
}

func (m *mapCacheManager) Get(key cache.CacheKey) (*model.Instance, bool) {
	value, ok := m.entries[key]
	return value, ok
}

func (m *mapCacheManager) Delete(key cache.CacheKey) error {
	delete(m.entries, key)
	return nil
}

func (m *mapCacheManager) Clear() error {
	m.entries = make(map[cache.CacheKey]*model.Instance)
	return nil
}

func (m *mapCacheManager) IsEnabled() bool {
	return true
}

func TestCachedBackedInstanceStoreSuite(t *testing.T) {
	suite.Run(t, new(CachedBackedInstanceStoreTestSuite))
}

func (suite *CachedBackedInstanceStoreTestSuite) SetupTest() {
	suite.backing = &mockInstanceStore{instances: make(map[string]model.Instance)}
	suite.store = &CachedBackedInstanceStore{
		InstanceCacheManager: &mapCacheManager{
			entries: make(map[cache.CacheKey]*model.Instance),
		},
		Store: suite.backing,
	}
}

func (suite *CachedBackedInstanceStoreTestSuite) TestGetInstanceServedFromCache() {
	instance := model.Instance{
		ID:       testInstanceID,
		Status:   model.InstanceStatusActive,
		Document: testDocument(),
	}
	suite.NoError(suite.store.CreateInstance(instance))

	got, err := suite.store.GetInstance(testInstanceID)
	suite.NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(testInstanceID, got.ID)
	suite.Equal(0, suite.backing.getCalls)
}

func (suite *CachedBackedInstanceStoreTestSuite) TestGetInstanceCacheMissFallsThrough() {
	suite.backing.instances[testInstanceID] = model.Instance{
		ID:       testInstanceID,
		Status:   model.InstanceStatusActive,
		Document: testDocument(),
	}

	got, err := suite.store.GetInstance(testInstanceID)
	suite.NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(1, suite.backing.getCalls)

	// Second read is served from cache.
	_, err = suite.store.GetInstance(testInstanceID)
	suite.NoError(err)
	suite.Equal(1, suite.backing.getCalls)
}

func (suite *CachedBackedInstanceStoreTestSuite) TestUpdateStatusInvalidatesCache() {
	instance := model.Instance{
		ID:       testInstanceID,
		Status:   model.InstanceStatusActive,
		Document: testDocument(),
	}
	suite.NoError(suite.store.CreateInstance(instance))

	suite.NoError(suite.store.UpdateInstanceStatus(testInstanceID, model.InstanceStatusSuspended))

	got, err := suite.store.GetInstance(testInstanceID)
	suite.NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(model.InstanceStatusSuspended, got.Status)
	suite.Equal(1, suite.backing.getCalls)
}

func (suite *CachedBackedInstanceStoreTestSuite) TestDeleteInvalidatesCache() {
	instance := model.Instance{
		ID:       testInstanceID,
		Status:   model.InstanceStatusActive,
		Document: testDocument(),
	}
	suite.NoError(suite.store.CreateInstance(instance))
	suite.NoError(suite.store.DeleteInstance(testInstanceID))

	got, err := suite.store.GetInstance(testInstanceID)
	suite.Nil(got)
	suite.ErrorIs(err, ErrInstanceNotFound)
}
