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

// Package serializer implements the registry-based codec that converts workflow
// graphs and their event definitions to and from flat, tagged documents.
package serializer

import (
	"fmt"
)

// UnknownTypeError is returned when a record's discriminator kind has no
// registered converter. It signals a build or version mismatch between the
// writer and the reader of a document; decode never falls back to a default.
type UnknownTypeError struct {
	Registry string
	Kind     string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no converter registered for kind %q in %s registry", e.Kind, e.Registry)
}

// MalformedRecordError is returned when a record's shape does not match its
// declared discriminator kind. Decode fails rather than defaulting the field,
// since silent defaulting masks version-skew bugs.
type MalformedRecordError struct {
	Kind   string
	Field  string
	Detail string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record for kind %q: field %q: %s", e.Kind, e.Field, e.Detail)
}

// DanglingReferenceError is returned when an identifier referenced by an edge
// or an event definition owner has no corresponding decoded node. It signals a
// corrupted or truncated document.
type DanglingReferenceError struct {
	NodeID   string
	RefID    string
	Relation string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("node %q references unknown node %q via %s", e.NodeID, e.RefID, e.Relation)
}

// UnsupportedVersionError is returned when a document carries a missing or
// unsupported serializer version tag. Loading proceeds only for versions this
// build knows how to read; guessing would mask version skew.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	if e.Version == "" {
		return "document carries no serializer version"
	}
	return fmt.Sprintf("unsupported serializer version %q", e.Version)
}

// RegistryConfigError is returned when a registry build is given an invalid
// override configuration, such as a removal naming a converter not present in
// the defaults.
type RegistryConfigError struct {
	Registry string
	Detail   string
}

func (e *RegistryConfigError) Error() string {
	return fmt.Sprintf("invalid %s registry configuration: %s", e.Registry, e.Detail)
}
