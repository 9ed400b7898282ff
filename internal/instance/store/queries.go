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

// Package store provides the implementation for workflow instance persistence operations.
package store

import (
	"github.com/asgardeo/flowkit/internal/system/database/model"
)

var (
	// QueryCreateInstanceDocument is the query to create a new instance document.
	QueryCreateInstanceDocument = model.DBQuery{
		ID:    "INQ-INST_DOC-01",
		Query: "INSERT INTO INSTANCE_DOCUMENT (INSTANCE_ID, STATUS, DOCUMENT) VALUES ($1, $2, $3)",
	}

	// QueryGetInstanceDocument is the query to retrieve an instance document by instance id.
	QueryGetInstanceDocument = model.DBQuery{
		ID:    "INQ-INST_DOC-02",
		Query: "SELECT INSTANCE_ID, STATUS, DOCUMENT FROM INSTANCE_DOCUMENT WHERE INSTANCE_ID = $1",
	}

	// QueryUpdateInstanceDocument is the query to update an instance's status and document.
	QueryUpdateInstanceDocument = model.DBQuery{
		ID: "INQ-INST_DOC-03",
		Query: "UPDATE INSTANCE_DOCUMENT SET STATUS = $2, DOCUMENT = $3, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE INSTANCE_ID = $1",
	}

	// QueryUpdateInstanceDocumentBlob is the query to replace an instance's document
	// without touching its status.
	QueryUpdateInstanceDocumentBlob = model.DBQuery{
		ID: "INQ-INST_DOC-04",
		Query: "UPDATE INSTANCE_DOCUMENT SET DOCUMENT = $2, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE INSTANCE_ID = $1",
	}

	// QueryUpdateInstanceStatus is the query to update an instance's status.
	QueryUpdateInstanceStatus = model.DBQuery{
		ID: "INQ-INST_DOC-05",
		Query: "UPDATE INSTANCE_DOCUMENT SET STATUS = $2, " +
			"UPDATED_AT = CURRENT_TIMESTAMP WHERE INSTANCE_ID = $1",
	}

	// QueryDeleteInstanceDocument is the query to delete an instance document.
	QueryDeleteInstanceDocument = model.DBQuery{
		ID:    "INQ-INST_DOC-06",
		Query: "DELETE FROM INSTANCE_DOCUMENT WHERE INSTANCE_ID = $1",
	}

	// QueryGetInstanceListBase is the base query to list instances. Filters over
	// fields of the stored document are appended by the query builder.
	QueryGetInstanceListBase = model.DBQuery{
		ID:    "INQ-INST_DOC-07",
		Query: "SELECT INSTANCE_ID, STATUS, DOCUMENT FROM INSTANCE_DOCUMENT WHERE 1 = 1",
	}
)
