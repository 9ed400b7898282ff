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
	"fmt"

	"github.com/asgardeo/flowkit/internal/instance/model"
	"github.com/asgardeo/flowkit/internal/serializer"
	"github.com/asgardeo/flowkit/internal/system/database/provider"
	"github.com/asgardeo/flowkit/internal/system/database/utils"
	"github.com/asgardeo/flowkit/internal/system/log"
)

const loggerComponentName = "InstanceStore"

const runtimeDBName = "runtime"

var (
	// ErrInstanceNotFound is returned when no instance exists for the given identifier.
	ErrInstanceNotFound = errors.New("instance not found")
	// ErrTaskNotFound is returned when an instance document has no task entry for the given node.
	ErrTaskNotFound = errors.New("task entry not found in instance document")
)

// InstanceStoreInterface defines the persistence operations for workflow instances.
// The store treats the document as an opaque blob except for the task data patch
// path, which edits the flat runtime mapping in place without interpreting node
// or event definition records.
type InstanceStoreInterface interface {
	CreateInstance(instance model.Instance) error
	GetInstance(instanceID string) (*model.Instance, error)
	UpdateInstance(instance model.Instance) error
	UpdateInstanceStatus(instanceID string, status model.InstanceStatus) error
	DeleteInstance(instanceID string) error
	ListInstances(filters map[string]interface{}) ([]model.BasicInstance, error)
	UpdateTaskData(instanceID string, nodeID string, data map[string]any) error
}

// InstanceStore is the implementation of InstanceStoreInterface.
type InstanceStore struct {
	DBProvider provider.DBProviderInterface
}

// NewInstanceStore creates a new instance of InstanceStore.
func NewInstanceStore() InstanceStoreInterface {
	return &InstanceStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// CreateInstance stores a new workflow instance with its serialized document.
func (s *InstanceStore) CreateInstance(instance model.Instance) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient(runtimeDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	blob, err := json.Marshal(instance.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal instance document: %w", err)
	}

	_, err = dbClient.Execute(QueryCreateInstanceDocument, instance.ID, string(instance.Status), string(blob))
	if err != nil {
		return fmt.Errorf("failed to create instance document: %w", err)
	}

	logger.Debug("Created instance document", log.String(log.LoggerKeyInstanceID, instance.ID))
	return nil
}

// GetInstance retrieves a workflow instance by its identifier. It returns
// ErrInstanceNotFound when no instance exists.
func (s *InstanceStore) GetInstance(instanceID string) (*model.Instance, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient(runtimeDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetInstanceDocument, instanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrInstanceNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildInstanceFromResultRow(results[0])
}

// UpdateInstance replaces an instance's status and document.
func (s *InstanceStore) UpdateInstance(instance model.Instance) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient(runtimeDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	blob, err := json.Marshal(instance.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal instance document: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryUpdateInstanceDocument,
		instance.ID, string(instance.Status), string(blob))
	if err != nil {
		return fmt.Errorf("failed to update instance document: %w", err)
	}
	if rowsAffected == 0 {
		return ErrInstanceNotFound
	}

	return nil
}

// UpdateInstanceStatus updates an instance's lifecycle status.
func (s *InstanceStore) UpdateInstanceStatus(instanceID string, status model.InstanceStatus) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient(runtimeDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(QueryUpdateInstanceStatus, instanceID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update instance status: %w", err)
	}
	if rowsAffected == 0 {
		return ErrInstanceNotFound
	}

	return nil
}

// DeleteInstance removes a workflow instance. Deleting a missing instance is not an error.
func (s *InstanceStore) DeleteInstance(instanceID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := s.DBProvider.GetDBClient(runtimeDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	_, err = dbClient.Execute(QueryDeleteInstanceDocument, instanceID)
	if err != nil {
		return fmt.Errorf("failed to delete instance document: %w", err)
	}

	return nil
}

// ListInstances returns the instances whose documents match the given filters.
// Filter keys address top-level fields of the stored document, such as
// spec_name and spec_version.
func (s *InstanceStore) ListInstances(filters map[string]interface{}) ([]model.BasicInstance, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	query, args, err := utils.BuildFilterQuery("INQ-INST_DOC-08",
		QueryGetInstanceListBase.Query, "DOCUMENT", filters)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter query: %w", err)
	}

	dbClient, err := s.DBProvider.GetDBClient(runtimeDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	instances := make([]model.BasicInstance, 0, len(results))
	for _, row := range results {
		instance, err := buildInstanceFromResultRow(row)
		if err != nil {
			return nil, err
		}
		specName, _ := instance.Document[serializer.DocumentKeySpecName].(string)
		specVersion, _ := instance.Document[serializer.DocumentKeySpecVersion].(string)
		instances = append(instances, model.BasicInstance{
			ID:          instance.ID,
			Status:      instance.Status,
			SpecName:    specName,
			SpecVersion: specVersion,
		})
	}

	return instances, nil
}

// UpdateTaskData replaces the runtime data of a single task inside a stored
// instance document. Only the data field of the task entry is replaced; node
// and event definition records are copied through untouched.
func (s *InstanceStore) UpdateTaskData(instanceID string, nodeID string, data map[string]any) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	instance, err := s.GetInstance(instanceID)
	if err != nil {
		return err
	}

	tasks, ok := instance.Document[serializer.DocumentKeyTasks].(map[string]any)
	if !ok {
		return fmt.Errorf("instance document has no task mapping")
	}
	entry, ok := tasks[nodeID].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, nodeID)
	}
	entry[model.TaskFieldData] = data

	blob, err := json.Marshal(instance.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal instance document: %w", err)
	}

	dbClient, err := s.DBProvider.GetDBClient(runtimeDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(QueryUpdateInstanceDocumentBlob, instanceID, string(blob))
	if err != nil {
		return fmt.Errorf("failed to update instance document: %w", err)
	}
	if rowsAffected == 0 {
		return ErrInstanceNotFound
	}

	logger.Debug("Patched task data", log.String(log.LoggerKeyInstanceID, instanceID),
		log.String(log.LoggerKeyNodeID, nodeID))
	return nil
}

// buildInstanceFromResultRow constructs an Instance from a database result row.
func buildInstanceFromResultRow(row map[string]interface{}) (*model.Instance, error) {
	instanceID, ok := row["instance_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse instance_id as string")
	}
	status, ok := row["status"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse status as string")
	}

	var blob []byte
	switch value := row["document"].(type) {
	case string:
		blob = []byte(value)
	case []byte:
		blob = value
	default:
		return nil, fmt.Errorf("failed to parse document: unexpected type %T", row["document"])
	}

	var document serializer.Record
	if err := json.Unmarshal(blob, &document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instance document: %w", err)
	}

	return &model.Instance{
		ID:       instanceID,
		Status:   model.InstanceStatus(status),
		Document: document,
	}, nil
}
