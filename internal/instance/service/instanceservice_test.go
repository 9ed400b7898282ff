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

package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/flowkit/internal/instance/constants"
	"github.com/asgardeo/flowkit/internal/instance/model"
	"github.com/asgardeo/flowkit/internal/instance/store"
	"github.com/asgardeo/flowkit/internal/serializer"
	specmodel "github.com/asgardeo/flowkit/internal/spec/model"
	"github.com/asgardeo/flowkit/internal/system/cache"
)

// fakeInstanceStore keeps instances in memory while honoring the store's
// blob semantics: documents round-trip through JSON on every write and read.
type fakeInstanceStore struct {
	blobs    map[string]string
	statuses map[string]model.InstanceStatus
}

func newFakeInstanceStore() *fakeInstanceStore {
	return &fakeInstanceStore{
		blobs:    make(map[string]string),
		statuses: make(map[string]model.InstanceStatus),
	}
}

func (f *fakeInstanceStore) CreateInstance(instance model.Instance) error {
	blob, err := json.Marshal(instance.Document)
	if err != nil {
		return err
	}
	f.blobs[instance.ID] = string(blob)
	f.statuses[instance.ID] = instance.Status
	return nil
}

func (f *fakeInstanceStore) GetInstance(instanceID string) (*model.Instance, error) {
	blob, ok := f.blobs[instanceID]
	if !ok {
		return nil, store.ErrInstanceNotFound
	}
	var document serializer.Record
	if err := json.Unmarshal([]byte(blob), &document); err != nil {
		return nil, err
	}
	return &model.Instance{
		ID:       instanceID,
		Status:   f.statuses[instanceID],
		Document: document,
	}, nil
}

func (f *fakeInstanceStore) UpdateInstance(instance model.Instance) error {
	if _, ok := f.blobs[instance.ID]; !ok {
		return store.ErrInstanceNotFound
	}
	return f.CreateInstance(instance)
}

func (f *fakeInstanceStore) UpdateInstanceStatus(instanceID string,
	status model.InstanceStatus) error {
	if _, ok := f.blobs[instanceID]; !ok {
		return store.ErrInstanceNotFound
	}
	f.statuses[instanceID] = status
	return nil
}

func (f *fakeInstanceStore) DeleteInstance(instanceID string) error {
	delete(f.blobs, instanceID)
	delete(f.statuses, instanceID)
	return nil
}

func (f *fakeInstanceStore) ListInstances(
	filters map[string]interface{}) ([]model.BasicInstance, error) {
	instances := make([]model.BasicInstance, 0, len(f.blobs))
	for id := range f.blobs {
		instance, err := f.GetInstance(id)
		if err != nil {
			return nil, err
		}
		specName, _ := instance.Document[serializer.DocumentKeySpecName].(string)
		if want, ok := filters["spec_name"]; ok && want != specName {
			continue
		}
		specVersion, _ := instance.Document[serializer.DocumentKeySpecVersion].(string)
		instances = append(instances, model.BasicInstance{
			ID:          id,
			Status:      instance.Status,
			SpecName:    specName,
			SpecVersion: specVersion,
		})
	}
	return instances, nil
}

func (f *fakeInstanceStore) UpdateTaskData(instanceID string, nodeID string,
	data map[string]any) error {
	instance, err := f.GetInstance(instanceID)
	if err != nil {
		return err
	}
	tasks, ok := instance.Document[serializer.DocumentKeyTasks].(map[string]any)
	if !ok {
		return store.ErrTaskNotFound
	}
	entry, ok := tasks[nodeID].(map[string]any)
	if !ok {
		return store.ErrTaskNotFound
	}
	entry[model.TaskFieldData] = data
	return f.CreateInstance(*instance)
}

// failingUpdateStore wraps the fake store and fails writes on demand.
type failingUpdateStore struct {
	*fakeInstanceStore
	failUpdate bool
}

func (f *failingUpdateStore) UpdateInstance(instance model.Instance) error {
	if f.failUpdate {
		return errors.New("write timeout")
	}
	return f.fakeInstanceStore.UpdateInstance(instance)
}

type stubCacheManager struct {
	entries map[cache.CacheKey]*model.Instance
}

func (m *stubCacheManager) Set(key cache.CacheKey, value *model.Instance) error {
	m.entries[key] = value
	return nil
}

func (m *stubCacheManager) Get(key cache.CacheKey) (*model.Instance, bool) {
	value, ok := m.entries[key]
	return value, ok
}

func (m *stubCacheManager) Delete(key cache.CacheKey) error {
	delete(m.entries, key)
	return nil
}

func (m *stubCacheManager) Clear() error {
	m.entries = make(map[cache.CacheKey]*model.Instance)
	return nil
}

func (m *stubCacheManager) IsEnabled() bool {
	return true
}

type InstanceServiceTestSuite struct {
	suite.Suite
	fakeStore *fakeInstanceStore
	service   InstanceServiceInterface
}

func TestInstanceServiceSuite(t *testing.T) {
	suite.Run(t, new(InstanceServiceTestSuite))
}

func (suite *InstanceServiceTestSuite) SetupTest() {
	suite.fakeStore = newFakeInstanceStore()
	suite.service = NewInstanceServiceWith(suite.fakeStore,
		serializer.NewDefaultDocumentSerializer())
}

func onboardingSpec() *specmodel.WorkflowSpec {
	spec := specmodel.NewWorkflowSpec("onboarding", "3")
	spec.StartNodeID = "start"

	start := specmodel.NewStartEvent("start")
	start.Next = []string{"collect"}

	collect := specmodel.NewSimpleTask("collect")
	collect.Previous = []string{"start"}
	collect.Next = []string{"end"}

	end := specmodel.NewEndEvent("end")
	end.Previous = []string{"collect"}

	for _, node := range []specmodel.SpecNode{start, collect, end} {
		if err := spec.AddNode(node); err != nil {
			panic(err)
		}
	}
	return spec
}

func onboardingRuntime() map[string]map[string]any {
	return map[string]map[string]any{
		"collect": {
			model.TaskFieldStatus: "ACTIVE",
			model.TaskFieldData:   map[string]any{"email": "pat@example.com"},
		},
	}
}

func (suite *InstanceServiceTestSuite) TestCreateInstance() {
	basic, svcErr := suite.service.CreateInstance(onboardingSpec(), onboardingRuntime())
	suite.Require().Nil(svcErr)
	suite.Require().NotNil(basic)

	_, err := uuid.Parse(basic.ID)
	suite.NoError(err)
	suite.Equal(model.InstanceStatusActive, basic.Status)
	suite.Equal("onboarding", basic.SpecName)
	suite.Equal("3", basic.SpecVersion)
	suite.Contains(suite.fakeStore.blobs, basic.ID)
}

func (suite *InstanceServiceTestSuite) TestCreateInstanceNilSpec() {
	basic, svcErr := suite.service.CreateInstance(nil, nil)
	suite.Nil(basic)
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorInvalidRequestFormat.Code, svcErr.Code)
}

func (suite *InstanceServiceTestSuite) TestLoadWorkflowRoundTrip() {
	basic, svcErr := suite.service.CreateInstance(onboardingSpec(), onboardingRuntime())
	suite.Require().Nil(svcErr)

	spec, runtime, svcErr := suite.service.LoadWorkflow(basic.ID)
	suite.Require().Nil(svcErr)
	suite.Require().NotNil(spec)
	suite.Equal("onboarding", spec.Name)
	suite.Equal(3, spec.Size())

	collect, ok := spec.GetNode("collect")
	suite.Require().True(ok)
	suite.Require().Len(collect.Base().NextNodes, 1)
	suite.Equal("end", collect.Base().NextNodes[0].GetID())

	suite.Equal("ACTIVE", runtime["collect"][model.TaskFieldStatus])
	suite.Equal(map[string]any{"email": "pat@example.com"},
		runtime["collect"][model.TaskFieldData])
}

func (suite *InstanceServiceTestSuite) TestLoadWorkflowNotFound() {
	_, _, svcErr := suite.service.LoadWorkflow(uuid.New().String())
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorInstanceNotFound.Code, svcErr.Code)
}

func (suite *InstanceServiceTestSuite) TestSaveWorkflowPersistsGraphChanges() {
	basic, svcErr := suite.service.CreateInstance(onboardingSpec(), onboardingRuntime())
	suite.Require().Nil(svcErr)

	spec, runtime, svcErr := suite.service.LoadWorkflow(basic.ID)
	suite.Require().Nil(svcErr)

	review := specmodel.NewSimpleTask("review")
	suite.NoError(spec.AddNode(review))
	runtime["review"] = map[string]any{model.TaskFieldStatus: "PENDING"}

	svcErr = suite.service.SaveWorkflow(basic.ID, spec, runtime)
	suite.Require().Nil(svcErr)

	reloaded, reloadedRuntime, svcErr := suite.service.LoadWorkflow(basic.ID)
	suite.Require().Nil(svcErr)
	suite.Equal(4, reloaded.Size())
	suite.Equal("PENDING", reloadedRuntime["review"][model.TaskFieldStatus])
}

func (suite *InstanceServiceTestSuite) TestPatchTaskDataRequiresSuspension() {
	basic, svcErr := suite.service.CreateInstance(onboardingSpec(), onboardingRuntime())
	suite.Require().Nil(svcErr)

	svcErr = suite.service.PatchTaskData(basic.ID, "collect",
		map[string]any{"email": "sam@example.com"})
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorInstanceNotSuspended.Code, svcErr.Code)
}

func (suite *InstanceServiceTestSuite) TestPatchTaskDataSuspendedInstance() {
	basic, svcErr := suite.service.CreateInstance(onboardingSpec(), onboardingRuntime())
	suite.Require().Nil(svcErr)

	svcErr = suite.service.UpdateInstanceStatus(basic.ID, model.InstanceStatusSuspended)
	suite.Require().Nil(svcErr)

	newData := map[string]any{"email": "sam@example.com", "verified": true}
	svcErr = suite.service.PatchTaskData(basic.ID, "collect", newData)
	suite.Require().Nil(svcErr)

	spec, runtime, svcErr := suite.service.LoadWorkflow(basic.ID)
	suite.Require().Nil(svcErr)
	suite.Equal(newData, runtime["collect"][model.TaskFieldData])
	suite.Equal("ACTIVE", runtime["collect"][model.TaskFieldStatus])

	// The patch never touches the graph itself.
	suite.Equal(3, spec.Size())
	collect, ok := spec.GetNode("collect")
	suite.Require().True(ok)
	suite.Equal([]string{"end"}, collect.Base().Next)
}

func (suite *InstanceServiceTestSuite) TestPatchTaskDataUnknownNode() {
	basic, svcErr := suite.service.CreateInstance(onboardingSpec(), onboardingRuntime())
	suite.Require().Nil(svcErr)
	suite.Require().Nil(suite.service.UpdateInstanceStatus(basic.ID, model.InstanceStatusSuspended))

	svcErr = suite.service.PatchTaskData(basic.ID, "no-such-node", map[string]any{})
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorTaskNotFound.Code, svcErr.Code)
}

func (suite *InstanceServiceTestSuite) TestPatchTaskDataEmptyArgs() {
	svcErr := suite.service.PatchTaskData("", "collect", nil)
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorInvalidRequestFormat.Code, svcErr.Code)

	svcErr = suite.service.PatchTaskData(uuid.New().String(), "", nil)
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorInvalidRequestFormat.Code, svcErr.Code)
}

func (suite *InstanceServiceTestSuite) TestUpdateInstanceStatusValidation() {
	basic, svcErr := suite.service.CreateInstance(onboardingSpec(), nil)
	suite.Require().Nil(svcErr)

	svcErr = suite.service.UpdateInstanceStatus(basic.ID, model.InstanceStatus("PAUSED"))
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorInvalidInstanceStatus.Code, svcErr.Code)

	svcErr = suite.service.UpdateInstanceStatus(basic.ID, model.InstanceStatusComplete)
	suite.Require().Nil(svcErr)
	suite.Equal(model.InstanceStatusComplete, suite.fakeStore.statuses[basic.ID])
}

func (suite *InstanceServiceTestSuite) TestUpdateInstanceStatusNotFound() {
	svcErr := suite.service.UpdateInstanceStatus(uuid.New().String(),
		model.InstanceStatusSuspended)
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorInstanceNotFound.Code, svcErr.Code)
}

func (suite *InstanceServiceTestSuite) TestDeleteInstance() {
	basic, svcErr := suite.service.CreateInstance(onboardingSpec(), nil)
	suite.Require().Nil(svcErr)

	suite.Require().Nil(suite.service.DeleteInstance(basic.ID))
	suite.NotContains(suite.fakeStore.blobs, basic.ID)

	// Deleting again is not an error.
	suite.Require().Nil(suite.service.DeleteInstance(basic.ID))
}

func (suite *InstanceServiceTestSuite) TestListInstances() {
	first, svcErr := suite.service.CreateInstance(onboardingSpec(), nil)
	suite.Require().Nil(svcErr)

	otherSpec := specmodel.NewWorkflowSpec("offboarding", "1")
	otherSpec.StartNodeID = "start"
	suite.NoError(otherSpec.AddNode(specmodel.NewStartEvent("start")))
	_, svcErr = suite.service.CreateInstance(otherSpec, nil)
	suite.Require().Nil(svcErr)

	instances, svcErr := suite.service.ListInstances(
		map[string]interface{}{"spec_name": "onboarding"})
	suite.Require().Nil(svcErr)
	suite.Require().Len(instances, 1)
	suite.Equal(first.ID, instances[0].ID)
	suite.Equal("onboarding", instances[0].SpecName)
	suite.Equal("3", instances[0].SpecVersion)
}

func (suite *InstanceServiceTestSuite) TestSaveWorkflowFailureLeavesCacheClean() {
	backing := &failingUpdateStore{fakeInstanceStore: newFakeInstanceStore()}
	cached := &store.CachedBackedInstanceStore{
		InstanceCacheManager: &stubCacheManager{
			entries: make(map[cache.CacheKey]*model.Instance),
		},
		Store: backing,
	}
	svc := NewInstanceServiceWith(cached, serializer.NewDefaultDocumentSerializer())

	basic, svcErr := svc.CreateInstance(onboardingSpec(), onboardingRuntime())
	suite.Require().Nil(svcErr)

	// Warm the cache with the persisted document.
	_, _, svcErr = svc.LoadWorkflow(basic.ID)
	suite.Require().Nil(svcErr)

	spec, runtime, svcErr := svc.LoadWorkflow(basic.ID)
	suite.Require().Nil(svcErr)
	suite.NoError(spec.AddNode(specmodel.NewSimpleTask("review")))

	backing.failUpdate = true
	svcErr = svc.SaveWorkflow(basic.ID, spec, runtime)
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorInternalServerError.Code, svcErr.Code)

	// The failed save must not leave the unpersisted graph in the cache.
	reloaded, _, svcErr := svc.LoadWorkflow(basic.ID)
	suite.Require().Nil(svcErr)
	suite.Equal(3, reloaded.Size())
	_, ok := reloaded.GetNode("review")
	suite.False(ok)
}

func (suite *InstanceServiceTestSuite) TestLoadWorkflowUnsupportedDocument() {
	id := uuid.New().String()
	suite.fakeStore.blobs[id] = `{"serializer_version":"9.9","nodes":{},"event_definitions":{},"tasks":{}}`
	suite.fakeStore.statuses[id] = model.InstanceStatusActive

	_, _, svcErr := suite.service.LoadWorkflow(id)
	suite.Require().NotNil(svcErr)
	suite.Equal(constants.ErrorUnsupportedDocument.Code, svcErr.Code)
}
