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

package config

import "sync"

// FlowKitRuntime holds the runtime configuration for the FlowKit deployment.
type FlowKitRuntime struct {
	FlowKitHome string `yaml:"flowkit_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *FlowKitRuntime
	once          sync.Once
)

// InitializeFlowKitRuntime initializes the FlowKitRuntime configuration.
func InitializeFlowKitRuntime(flowKitHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &FlowKitRuntime{
			FlowKitHome: flowKitHome,
			Config:      *config,
		}
	})

	return nil
}

// GetFlowKitRuntime returns the FlowKitRuntime configuration.
func GetFlowKitRuntime() *FlowKitRuntime {
	if runtimeConfig == nil {
		panic("FlowKitRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetFlowKitRuntime resets the FlowKitRuntime.
// This should only be used in tests to reset the singleton state.
func ResetFlowKitRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
