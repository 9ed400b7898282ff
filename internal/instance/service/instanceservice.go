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

// Package service provides the workflow instance management service.
package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/asgardeo/flowkit/internal/instance/constants"
	"github.com/asgardeo/flowkit/internal/instance/model"
	"github.com/asgardeo/flowkit/internal/instance/store"
	"github.com/asgardeo/flowkit/internal/serializer"
	specmodel "github.com/asgardeo/flowkit/internal/spec/model"
	"github.com/asgardeo/flowkit/internal/system/error/serviceerror"
	"github.com/asgardeo/flowkit/internal/system/log"
)

const loggerComponentName = "InstanceService"

// InstanceServiceInterface defines the interface for workflow instance management operations.
type InstanceServiceInterface interface {
	CreateInstance(spec *specmodel.WorkflowSpec,
		runtime map[string]map[string]any) (*model.BasicInstance, *serviceerror.ServiceError)
	GetInstance(instanceID string) (*model.Instance, *serviceerror.ServiceError)
	LoadWorkflow(instanceID string) (*specmodel.WorkflowSpec,
		map[string]map[string]any, *serviceerror.ServiceError)
	SaveWorkflow(instanceID string, spec *specmodel.WorkflowSpec,
		runtime map[string]map[string]any) *serviceerror.ServiceError
	PatchTaskData(instanceID string, nodeID string, data map[string]any) *serviceerror.ServiceError
	UpdateInstanceStatus(instanceID string, status model.InstanceStatus) *serviceerror.ServiceError
	DeleteInstance(instanceID string) *serviceerror.ServiceError
	ListInstances(filters map[string]interface{}) ([]model.BasicInstance, *serviceerror.ServiceError)
}

// InstanceService is the implementation of InstanceServiceInterface.
type InstanceService struct {
	instanceStore store.InstanceStoreInterface
	serializer    *serializer.DocumentSerializer
}

// NewInstanceService creates a new instance service backed by the cached
// instance store and the default registries.
func NewInstanceService() InstanceServiceInterface {
	return &InstanceService{
		instanceStore: store.NewCachedBackedInstanceStore(),
		serializer:    serializer.NewDefaultDocumentSerializer(),
	}
}

// NewInstanceServiceWith creates an instance service with the given store and
// document serializer. Used when custom converters are registered.
func NewInstanceServiceWith(instanceStore store.InstanceStoreInterface,
	documentSerializer *serializer.DocumentSerializer) InstanceServiceInterface {
	return &InstanceService{
		instanceStore: instanceStore,
		serializer:    documentSerializer,
	}
}

// CreateInstance serializes the given workflow graph and runtime fields and
// persists them as a new active instance.
func (svc *InstanceService) CreateInstance(spec *specmodel.WorkflowSpec,
	runtime map[string]map[string]any) (*model.BasicInstance, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if spec == nil {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	document, err := svc.serializer.EncodeDocument(spec, runtime)
	if err != nil {
		logger.Error("Failed to encode workflow document", log.Error(err),
			log.String(log.LoggerKeySpecName, spec.Name))
		return nil, classifySerializerError(err)
	}

	instance := model.Instance{
		ID:       uuid.New().String(),
		Status:   model.InstanceStatusActive,
		Document: document,
	}
	if err := svc.instanceStore.CreateInstance(instance); err != nil {
		logger.Error("Failed to create instance", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Created workflow instance", log.String(log.LoggerKeyInstanceID, instance.ID),
		log.String(log.LoggerKeySpecName, spec.Name))
	return &model.BasicInstance{
		ID:          instance.ID,
		Status:      instance.Status,
		SpecName:    spec.Name,
		SpecVersion: spec.Version,
	}, nil
}

// GetInstance retrieves a workflow instance with its raw document.
func (svc *InstanceService) GetInstance(instanceID string) (*model.Instance,
	*serviceerror.ServiceError) {
	if instanceID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	instance, err := svc.instanceStore.GetInstance(instanceID)
	if err != nil {
		if errors.Is(err, store.ErrInstanceNotFound) {
			return nil, &constants.ErrorInstanceNotFound
		}
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to retrieve instance", log.Error(err),
			log.String(log.LoggerKeyInstanceID, instanceID))
		return nil, &constants.ErrorInternalServerError
	}

	return instance, nil
}

// LoadWorkflow retrieves an instance and decodes its document into a live
// workflow graph and runtime fields.
func (svc *InstanceService) LoadWorkflow(instanceID string) (*specmodel.WorkflowSpec,
	map[string]map[string]any, *serviceerror.ServiceError) {
	instance, svcErr := svc.GetInstance(instanceID)
	if svcErr != nil {
		return nil, nil, svcErr
	}

	spec, runtime, err := svc.serializer.DecodeDocument(instance.Document)
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to decode instance document", log.Error(err),
			log.String(log.LoggerKeyInstanceID, instanceID))
		return nil, nil, classifySerializerError(err)
	}

	return spec, runtime, nil
}

// SaveWorkflow re-serializes a live workflow graph and runtime fields into an
// existing instance's document. The instance status is preserved.
func (svc *InstanceService) SaveWorkflow(instanceID string, spec *specmodel.WorkflowSpec,
	runtime map[string]map[string]any) *serviceerror.ServiceError {
	if spec == nil {
		return &constants.ErrorInvalidRequestFormat
	}

	instance, svcErr := svc.GetInstance(instanceID)
	if svcErr != nil {
		return svcErr
	}

	document, err := svc.serializer.EncodeDocument(spec, runtime)
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to encode workflow document", log.Error(err),
			log.String(log.LoggerKeyInstanceID, instanceID))
		return classifySerializerError(err)
	}

	// The retrieved instance may be shared with the cache; never mutate it.
	updated := model.Instance{
		ID:       instance.ID,
		Status:   instance.Status,
		Document: document,
	}
	if err := svc.instanceStore.UpdateInstance(updated); err != nil {
		if errors.Is(err, store.ErrInstanceNotFound) {
			return &constants.ErrorInstanceNotFound
		}
		return &constants.ErrorInternalServerError
	}

	return nil
}

// PatchTaskData replaces the runtime data of a single task. Patching is only
// permitted while the instance is suspended.
func (svc *InstanceService) PatchTaskData(instanceID string, nodeID string,
	data map[string]any) *serviceerror.ServiceError {
	if instanceID == "" || nodeID == "" {
		return &constants.ErrorInvalidRequestFormat
	}

	instance, svcErr := svc.GetInstance(instanceID)
	if svcErr != nil {
		return svcErr
	}
	if instance.Status != model.InstanceStatusSuspended {
		return &constants.ErrorInstanceNotSuspended
	}

	if err := svc.instanceStore.UpdateTaskData(instanceID, nodeID, data); err != nil {
		switch {
		case errors.Is(err, store.ErrInstanceNotFound):
			return &constants.ErrorInstanceNotFound
		case errors.Is(err, store.ErrTaskNotFound):
			return &constants.ErrorTaskNotFound
		default:
			logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
			logger.Error("Failed to patch task data", log.Error(err),
				log.String(log.LoggerKeyInstanceID, instanceID),
				log.String(log.LoggerKeyNodeID, nodeID))
			return &constants.ErrorInternalServerError
		}
	}

	return nil
}

// UpdateInstanceStatus transitions an instance to the given lifecycle status.
func (svc *InstanceService) UpdateInstanceStatus(instanceID string,
	status model.InstanceStatus) *serviceerror.ServiceError {
	if instanceID == "" {
		return &constants.ErrorInvalidRequestFormat
	}
	if !isValidStatus(status) {
		return &constants.ErrorInvalidInstanceStatus
	}

	if err := svc.instanceStore.UpdateInstanceStatus(instanceID, status); err != nil {
		if errors.Is(err, store.ErrInstanceNotFound) {
			return &constants.ErrorInstanceNotFound
		}
		return &constants.ErrorInternalServerError
	}

	return nil
}

// DeleteInstance removes a workflow instance. Deleting a missing instance succeeds.
func (svc *InstanceService) DeleteInstance(instanceID string) *serviceerror.ServiceError {
	if instanceID == "" {
		return &constants.ErrorInvalidRequestFormat
	}

	if err := svc.instanceStore.DeleteInstance(instanceID); err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to delete instance", log.Error(err),
			log.String(log.LoggerKeyInstanceID, instanceID))
		return &constants.ErrorInternalServerError
	}

	return nil
}

// ListInstances returns the instances whose documents match the given filters.
func (svc *InstanceService) ListInstances(
	filters map[string]interface{}) ([]model.BasicInstance, *serviceerror.ServiceError) {
	instances, err := svc.instanceStore.ListInstances(filters)
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to list instances", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return instances, nil
}

// classifySerializerError maps serializer failures to service errors. Codec
// failures are client-visible document problems; anything else is a server error.
func classifySerializerError(err error) *serviceerror.ServiceError {
	var unknownType *serializer.UnknownTypeError
	var malformed *serializer.MalformedRecordError
	var dangling *serializer.DanglingReferenceError
	var unsupported *serializer.UnsupportedVersionError

	if errors.As(err, &unknownType) || errors.As(err, &malformed) ||
		errors.As(err, &dangling) || errors.As(err, &unsupported) {
		svcErr := serviceerror.CustomServiceError(constants.ErrorUnsupportedDocument, err.Error())
		return &svcErr
	}
	return &constants.ErrorInternalServerError
}

// isValidStatus reports whether the given value is a known lifecycle status.
func isValidStatus(status model.InstanceStatus) bool {
	switch status {
	case model.InstanceStatusActive, model.InstanceStatusSuspended,
		model.InstanceStatusComplete, model.InstanceStatusError:
		return true
	}
	return false
}
