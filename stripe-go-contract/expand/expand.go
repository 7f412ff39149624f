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

// Package expand models Stripe's expandable references: a response field that
// carries a bare ID unless the caller asked for it to be inlined via the
// expand[] request parameter.
package expand

import (
	"bytes"
	"encoding/json"

	werror "github.com/palantir/witchcraft-go-error"
)

// Identifiable is implemented by resource types whose identifier is
// recoverable without expansion.
type Identifiable[ID ~string] interface {
	ObjectID() ID
}

// Expandable is a two-state reference: either the bare ID of a resource, or
// the resource itself. Which state a response decodes into depends only on
// what the server sent; the ID recoverable from an inlined object equals the
// ID the non-expanded form would have carried.
type Expandable[ID ~string, T Identifiable[ID]] struct {
	id  ID
	obj *T
}

// ID constructs the unexpanded state.
func ID[ID ~string, T Identifiable[ID]](id ID) Expandable[ID, T] {
	return Expandable[ID, T]{id: id}
}

// Object constructs the expanded state.
func Object[ID ~string, T Identifiable[ID]](obj T) Expandable[ID, T] {
	return Expandable[ID, T]{obj: &obj}
}

// IsExpanded reports whether the full object is inlined.
func (e Expandable[ID, T]) IsExpanded() bool {
	return e.obj != nil
}

// ObjectID returns the reference's ID in either state without copying the
// inlined object.
func (e Expandable[ID, T]) ObjectID() ID {
	if e.obj != nil {
		return (*e.obj).ObjectID()
	}
	return e.id
}

// Get returns the inlined object when expanded.
func (e Expandable[ID, T]) Get() (T, bool) {
	if e.obj == nil {
		var zero T
		return zero, false
	}
	return *e.obj, true
}

func (e Expandable[ID, T]) MarshalJSON() ([]byte, error) {
	if e.obj != nil {
		return json.Marshal(e.obj)
	}
	return json.Marshal(e.id)
}

func (e *Expandable[ID, T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return werror.Error("expandable: empty JSON value")
	}
	switch trimmed[0] {
	case '"':
		e.obj = nil
		return json.Unmarshal(data, &e.id)
	case '{':
		var obj T
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		var zero ID
		e.id = zero
		e.obj = &obj
		return nil
	}
	return werror.Error("expandable: expected JSON string or object",
		werror.UnsafeParam("got", string(trimmed[:1])))
}
