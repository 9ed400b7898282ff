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

// Package constants defines error constants for workflow instance management operations.
package constants

import (
	"github.com/asgardeo/flowkit/internal/system/error/serviceerror"
)

// Client errors for workflow instance management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FKI-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request is malformed or required fields are missing/empty",
	}
	// ErrorInstanceNotFound is the error returned when a workflow instance is not found.
	ErrorInstanceNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FKI-1002",
		Error:            "Instance not found",
		ErrorDescription: "The workflow instance with the specified id does not exist",
	}
	// ErrorTaskNotFound is the error returned when an instance has no task entry for a node.
	ErrorTaskNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FKI-1003",
		Error:            "Task not found",
		ErrorDescription: "The instance document has no task entry for the specified node",
	}
	// ErrorInstanceNotSuspended is the error returned when patching a non-suspended instance.
	ErrorInstanceNotSuspended = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FKI-1004",
		Error:            "Instance not suspended",
		ErrorDescription: "Task data can only be patched while the instance is suspended",
	}
	// ErrorInvalidInstanceStatus is the error returned when an unknown status value is given.
	ErrorInvalidInstanceStatus = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FKI-1005",
		Error:            "Invalid instance status",
		ErrorDescription: "The specified status is not a valid instance lifecycle status",
	}
	// ErrorUnsupportedDocument is the error returned when a stored document cannot be decoded.
	ErrorUnsupportedDocument = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FKI-1006",
		Error:            "Unsupported instance document",
		ErrorDescription: "The stored instance document cannot be decoded",
	}
)

// Server errors for workflow instance management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FKI-5001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
