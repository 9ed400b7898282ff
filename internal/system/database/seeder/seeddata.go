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

package seeder

// seedData holds the sample data to be seeded into the runtime database.
type seedData struct {
	Instances []InstanceData `json:"instances"`
}

// InstanceData represents a workflow instance row to be seeded.
type InstanceData struct {
	InstanceID string `json:"instance_id"`
	Status     string `json:"status"`
	Document   string `json:"document"`
}

// getSeedData returns the sample instances: a minimal linear onboarding flow
// suspended at its one task, ready for the patch and verify commands.
func getSeedData() seedData {
	return seedData{
		Instances: []InstanceData{
			{
				InstanceID: "550e8400-e29b-41d4-a716-446655440000",
				Status:     "SUSPENDED",
				Document: `{
  "serializer_version": "1.0",
  "spec_name": "sample-onboarding",
  "spec_version": "1",
  "start_node_id": "start",
  "nodes": {
    "start": {"typename": "start-event", "id": "start", "next": ["collect"]},
    "collect": {"typename": "simple-task", "id": "collect", "previous": ["start"], "next": ["end"]},
    "end": {"typename": "end-event", "id": "end", "previous": ["collect"]}
  },
  "event_definitions": {
    "start": {"typename": "none-event"}
  },
  "tasks": {
    "collect": {"status": "ACTIVE", "data": {}}
  }
}`,
			},
		},
	}
}
