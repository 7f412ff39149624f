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

package form

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	werror "github.com/palantir/witchcraft-go-error"
)

// Encoder may be implemented by parameter types that need custom form
// encoding (for example enums whose wire value differs from their Go value).
type Encoder interface {
	EncodeValues(key string, v *Values) error
}

// Marshal encodes a parameter struct into bracket-convention form values.
//
// Struct fields are named by their `form` tag; fields tagged `form:"-"` or
// untagged unexported fields are skipped. Nil pointers are omitted entirely,
// which is distinct from an empty string (Stripe reads an empty string as
// "unset this value"). Nested structs encode as parent[child], slices as
// parent[], and maps as parent[key].
func Marshal(in interface{}) (*Values, error) {
	v := &Values{}
	if in == nil {
		return v, nil
	}
	if err := appendValue(v, "", reflect.ValueOf(in)); err != nil {
		return nil, err
	}
	return v, nil
}

func appendValue(v *Values, key string, rv reflect.Value) error {
	if enc, ok := encoderFor(rv); ok {
		return enc.EncodeValues(key, v)
	}
	if tm, ok := textMarshalerFor(rv); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return werror.Wrap(err, "form: MarshalText failed", werror.SafeParam("key", key))
		}
		v.Add(key, string(text))
		return nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return appendValue(v, key, rv.Elem())
	case reflect.Struct:
		return appendStruct(v, key, rv)
	case reflect.Map:
		return appendMap(v, key, rv)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := appendValue(v, key+"[]", rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.String:
		v.Add(key, rv.String())
	case reflect.Bool:
		v.Add(key, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.Add(key, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.Add(key, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		v.Add(key, strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	default:
		return werror.Error("form: unsupported parameter kind",
			werror.SafeParam("kind", rv.Kind().String()),
			werror.SafeParam("key", key))
	}
	return nil
}

func appendStruct(v *Values, parent string, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name, ok := field.Tag.Lookup("form")
		if name == "-" {
			continue
		}
		if !ok {
			if field.Anonymous {
				if err := appendValue(v, parent, rv.Field(i)); err != nil {
					return err
				}
			}
			continue
		}
		key := name
		if parent != "" {
			key = parent + "[" + name + "]"
		}
		if err := appendValue(v, key, rv.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func appendMap(v *Values, parent string, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return werror.Error("form: map keys must be strings",
			werror.SafeParam("keyType", rv.Type().Key().String()),
			werror.SafeParam("key", parent))
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := k
		if parent != "" {
			key = parent + "[" + k + "]"
		}
		if err := appendValue(v, key, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))); err != nil {
			return err
		}
	}
	return nil
}

func encoderFor(rv reflect.Value) (Encoder, bool) {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil, false
	}
	if enc, ok := rv.Interface().(Encoder); ok {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return nil, false
		}
		return enc, true
	}
	if rv.CanAddr() {
		if enc, ok := rv.Addr().Interface().(Encoder); ok {
			return enc, true
		}
	}
	return nil, false
}

func textMarshalerFor(rv reflect.Value) (encoding.TextMarshaler, bool) {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil, false
	}
	if tm, ok := rv.Interface().(encoding.TextMarshaler); ok {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return nil, false
		}
		return tm, true
	}
	return nil, false
}

var _ fmt.Stringer = (*Values)(nil)

// String renders the encoded form; it exists so Values prints usefully in
// logs and test failures.
func (v *Values) String() string { return v.Encode() }
