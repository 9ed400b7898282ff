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

package model

import (
	"github.com/asgardeo/flowkit/internal/spec/constants"
)

// ExclusiveGateway represents a gateway that selects exactly one outgoing path.
// Conditions maps a successor identifier to the expression guarding that path;
// DefaultNext names the successor taken when no condition matches.
type ExclusiveGateway struct {
	NodeSpec
	Conditions  map[string]string
	DefaultNext string
}

// NewExclusiveGateway creates a new ExclusiveGateway with the given identifier.
func NewExclusiveGateway(id string) *ExclusiveGateway {
	return &ExclusiveGateway{
		NodeSpec:   NodeSpec{ID: id, Kind: constants.NodeKindExclusiveGateway},
		Conditions: make(map[string]string),
	}
}

// ParallelGateway represents a gateway that forks or joins parallel paths.
type ParallelGateway struct {
	NodeSpec
}

// NewParallelGateway creates a new ParallelGateway with the given identifier.
func NewParallelGateway(id string) *ParallelGateway {
	return &ParallelGateway{NodeSpec: NodeSpec{ID: id, Kind: constants.NodeKindParallelGateway}}
}
