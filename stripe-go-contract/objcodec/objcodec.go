// Copyright (c) 2024 the async-stripe-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package objcodec decodes JSON objects into product and sum types under two
// rules: every field a type declares as required must be present in the JSON
// or the decode fails, and keys the type does not declare are ignored so
// server-side additions never break a client.
//
// A resource's UnmarshalJSON parses the body once into an Object, pulls each
// declared field out of it, and routes sum types through the "object"
// discriminator or the "deleted" flag. The discriminator may appear anywhere
// in the body; parsing the whole object first makes its position irrelevant.
package objcodec

import (
	"bytes"
	"encoding/json"

	"github.com/palantir/pkg/safejson"
	werror "github.com/palantir/witchcraft-go-error"
)

// Object is a JSON object parsed into its keys, values left raw.
type Object map[string]json.RawMessage

// Parse reads data as a JSON object. Any other JSON value is rejected.
func Parse(data []byte) (Object, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, werror.Error("expected a JSON object",
			werror.UnsafeParam("got", excerpt(trimmed)))
	}
	var obj Object
	if err := safejson.Unmarshal(data, &obj); err != nil {
		return nil, werror.Wrap(err, "malformed JSON object")
	}
	return obj, nil
}

// Has reports whether the field is present (including explicit null).
func (o Object) Has(field string) bool {
	_, ok := o[field]
	return ok
}

// Required extracts and decodes a declared field. A missing field is a
// decode error naming the enclosing type and the field; a type mismatch
// wraps the underlying decode failure with the same coordinates.
func Required[T any](o Object, typeName, field string) (T, error) {
	var out T
	raw, ok := o[field]
	if !ok {
		return out, werror.Error("missing required field",
			werror.SafeParam("type", typeName),
			werror.SafeParam("field", field))
	}
	if err := safejson.Unmarshal(raw, &out); err != nil {
		return out, werror.Wrap(err, "cannot decode field",
			werror.SafeParam("type", typeName),
			werror.SafeParam("field", field))
	}
	return out, nil
}

// Optional decodes a field that may be absent or null; both yield nil.
func Optional[T any](o Object, typeName, field string) (*T, error) {
	raw, ok := o[field]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var out T
	if err := safejson.Unmarshal(raw, &out); err != nil {
		return nil, werror.Wrap(err, "cannot decode field",
			werror.SafeParam("type", typeName),
			werror.SafeParam("field", field))
	}
	return &out, nil
}

// Discriminator returns the required "object" field used to dispatch
// object-discriminated unions.
func (o Object) Discriminator(typeName string) (string, error) {
	return Required[string](o, typeName, "object")
}

// Deleted reports the "deleted" flag used by maybe-deleted unions. An absent
// flag means the live variant.
func (o Object) Deleted(typeName string) (bool, error) {
	if !o.Has("deleted") {
		return false, nil
	}
	return Required[bool](o, typeName, "deleted")
}

// UnknownDiscriminator builds the decode error for an object-discriminated
// union whose tag matched no variant.
func UnknownDiscriminator(typeName, tag string) error {
	return werror.Error("unknown object discriminator",
		werror.SafeParam("type", typeName),
		werror.SafeParam("object", tag))
}

func excerpt(data []byte) string {
	const max = 32
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
