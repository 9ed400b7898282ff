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
	"github.com/asgardeo/flowkit/internal/instance/model"
	"github.com/asgardeo/flowkit/internal/system/cache"
)

const instanceDocumentCacheName = "instanceDocument"

// CachedBackedInstanceStore is an InstanceStoreInterface implementation that
// caches loaded instances in front of a backing store.
type CachedBackedInstanceStore struct {
	InstanceCacheManager cache.CacheManagerInterface[*model.Instance]
	Store                InstanceStoreInterface
}

// NewCachedBackedInstanceStore creates a new instance of CachedBackedInstanceStore.
func NewCachedBackedInstanceStore() InstanceStoreInterface {
	return &CachedBackedInstanceStore{
		InstanceCacheManager: cache.GetCacheManager[*model.Instance](instanceDocumentCacheName),
		Store:                NewInstanceStore(),
	}
}

// CreateInstance creates a new instance and caches it.
func (s *CachedBackedInstanceStore) CreateInstance(instance model.Instance) error {
	if err := s.Store.CreateInstance(instance); err != nil {
		return err
	}
	s.cacheInstance(&instance)
	return nil
}

// GetInstance retrieves an instance by its identifier, using the cache if available.
func (s *CachedBackedInstanceStore) GetInstance(instanceID string) (*model.Instance, error) {
	cacheKey := cache.CacheKey{
		Key: instanceID,
	}
	cachedInstance, ok := s.InstanceCacheManager.Get(cacheKey)
	if ok {
		return cachedInstance, nil
	}

	instance, err := s.Store.GetInstance(instanceID)
	if err != nil || instance == nil {
		return instance, err
	}
	s.cacheInstance(instance)

	return instance, nil
}

// UpdateInstance updates an instance and refreshes the cache.
func (s *CachedBackedInstanceStore) UpdateInstance(instance model.Instance) error {
	if err := s.Store.UpdateInstance(instance); err != nil {
		return err
	}

	s.invalidateInstanceCache(instance.ID)
	s.cacheInstance(&instance)

	return nil
}

// UpdateInstanceStatus updates an instance's status and invalidates the cache.
func (s *CachedBackedInstanceStore) UpdateInstanceStatus(instanceID string,
	status model.InstanceStatus) error {
	if err := s.Store.UpdateInstanceStatus(instanceID, status); err != nil {
		return err
	}
	s.invalidateInstanceCache(instanceID)
	return nil
}

// DeleteInstance deletes an instance and invalidates the cache.
func (s *CachedBackedInstanceStore) DeleteInstance(instanceID string) error {
	if err := s.Store.DeleteInstance(instanceID); err != nil {
		return err
	}
	s.invalidateInstanceCache(instanceID)
	return nil
}

// ListInstances lists instances matching the given filters. List results are not cached.
func (s *CachedBackedInstanceStore) ListInstances(
	filters map[string]interface{}) ([]model.BasicInstance, error) {
	return s.Store.ListInstances(filters)
}

// UpdateTaskData patches a task's runtime data and invalidates the cache.
func (s *CachedBackedInstanceStore) UpdateTaskData(instanceID string, nodeID string,
	data map[string]any) error {
	if err := s.Store.UpdateTaskData(instanceID, nodeID, data); err != nil {
		return err
	}
	s.invalidateInstanceCache(instanceID)
	return nil
}

// cacheInstance caches the given instance.
func (s *CachedBackedInstanceStore) cacheInstance(instance *model.Instance) {
	if instance == nil || instance.ID == "" {
		return
	}
	cacheKey := cache.CacheKey{
		Key: instance.ID,
	}
	s.InstanceCacheManager.Set(cacheKey, instance)
}

// invalidateInstanceCache removes the cached entry for the given instance identifier.
func (s *CachedBackedInstanceStore) invalidateInstanceCache(instanceID string) {
	cacheKey := cache.CacheKey{
		Key: instanceID,
	}
	s.InstanceCacheManager.Delete(cacheKey)
}
