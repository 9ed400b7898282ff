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

package serializer

// Record is a tagged, JSON-compatible encoding of one node or event
// definition. Values are limited to strings, numbers, booleans, null, and
// nested maps and sequences of the same, so a Record survives a trip through
// any JSON store unchanged.
type Record map[string]any

const (
	// recordKeyKind is the discriminator key carried by every record.
	recordKeyKind = "typename"

	recordKeyID       = "id"
	recordKeyNext     = "next"
	recordKeyPrevious = "previous"
	recordKeyChildren = "children"
)

// Kind returns the record's discriminator kind, or an empty string if absent.
func (r Record) Kind() string {
	kind, _ := r[recordKeyKind].(string)
	return kind
}

// stringField reads a required string field from the record.
func stringField(r Record, kind string, key string) (string, error) {
	value, exists := r[key]
	if !exists {
		return "", &MalformedRecordError{Kind: kind, Field: key, Detail: "missing"}
	}
	str, ok := value.(string)
	if !ok {
		return "", &MalformedRecordError{Kind: kind, Field: key, Detail: "not a string"}
	}
	return str, nil
}

// optionalStringField reads a string field from the record, returning an empty
// string when the field is absent.
func optionalStringField(r Record, kind string, key string) (string, error) {
	if _, exists := r[key]; !exists {
		return "", nil
	}
	return stringField(r, kind, key)
}

// boolField reads a bool field from the record, returning false when the field
// is absent.
func boolField(r Record, kind string, key string) (bool, error) {
	value, exists := r[key]
	if !exists {
		return false, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, &MalformedRecordError{Kind: kind, Field: key, Detail: "not a boolean"}
	}
	return b, nil
}

// intField reads an integer field from the record, returning zero when the
// field is absent. JSON decoding yields float64 for all numbers, so both
// forms are accepted.
func intField(r Record, kind string, key string) (int, error) {
	value, exists := r[key]
	if !exists {
		return 0, nil
	}
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, &MalformedRecordError{Kind: kind, Field: key, Detail: "not a number"}
	}
}

// stringSliceField reads a sequence-of-strings field from the record,
// returning nil when the field is absent. Both []string and the []any form
// produced by JSON decoding are accepted.
func stringSliceField(r Record, kind string, key string) ([]string, error) {
	value, exists := r[key]
	if !exists || value == nil {
		return nil, nil
	}
	switch seq := value.(type) {
	case []string:
		if len(seq) == 0 {
			return nil, nil
		}
		out := make([]string, len(seq))
		copy(out, seq)
		return out, nil
	case []any:
		if len(seq) == 0 {
			return nil, nil
		}
		out := make([]string, len(seq))
		for i, item := range seq {
			str, ok := item.(string)
			if !ok {
				return nil, &MalformedRecordError{Kind: kind, Field: key, Detail: "not a sequence of strings"}
			}
			out[i] = str
		}
		return out, nil
	default:
		return nil, &MalformedRecordError{Kind: kind, Field: key, Detail: "not a sequence"}
	}
}

// stringMapField reads a mapping-of-strings field from the record, returning
// nil when the field is absent. Both map[string]string and the map[string]any
// form produced by JSON decoding are accepted.
func stringMapField(r Record, kind string, key string) (map[string]string, error) {
	value, exists := r[key]
	if !exists || value == nil {
		return nil, nil
	}
	switch m := value.(type) {
	case map[string]string:
		if len(m) == 0 {
			return nil, nil
		}
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	case map[string]any:
		if len(m) == 0 {
			return nil, nil
		}
		out := make(map[string]string, len(m))
		for k, v := range m {
			str, ok := v.(string)
			if !ok {
				return nil, &MalformedRecordError{Kind: kind, Field: key, Detail: "not a mapping of strings"}
			}
			out[k] = str
		}
		return out, nil
	default:
		return nil, &MalformedRecordError{Kind: kind, Field: key, Detail: "not a mapping"}
	}
}
