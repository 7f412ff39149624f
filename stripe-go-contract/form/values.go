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

// Package form encodes request parameters using Stripe's bracket
// convention for nested values: a[b]=1&a[c][]=2&a[c][]=3.
package form

import (
	"io"
	"net/url"
	"strings"
)

type pair struct {
	key   string
	value string
}

// Values is an ordered collection of key/value pairs destined for a query
// string or an application/x-www-form-urlencoded body. Unlike url.Values,
// insertion order is preserved so that array entries (`parent[]`) arrive at
// the server in the order the caller appended them.
type Values struct {
	pairs []pair
}

// Add appends a key/value pair, keeping any existing pairs with the same key.
func (v *Values) Add(key, value string) {
	v.pairs = append(v.pairs, pair{key: key, value: value})
}

// Set replaces all pairs with the given key by a single pair.
func (v *Values) Set(key, value string) {
	v.Del(key)
	v.Add(key, value)
}

// Get returns the first value associated with key, or "".
func (v *Values) Get(key string) string {
	for _, p := range v.pairs {
		if p.key == key {
			return p.value
		}
	}
	return ""
}

// Del removes all pairs with the given key.
func (v *Values) Del(key string) {
	kept := v.pairs[:0]
	for _, p := range v.pairs {
		if p.key != key {
			kept = append(kept, p)
		}
	}
	v.pairs = kept
}

// Empty reports whether no pairs have been added.
func (v *Values) Empty() bool {
	return v == nil || len(v.pairs) == 0
}

// Clone returns a deep copy. Cloning nil returns an empty Values.
func (v *Values) Clone() *Values {
	clone := &Values{}
	if v != nil {
		clone.pairs = append([]pair(nil), v.pairs...)
	}
	return clone
}

// Encode renders the pairs as a URL-encoded string in insertion order.
// An empty value is encoded as `key=`; Stripe interprets that as "unset".
func (v *Values) Encode() string {
	if v == nil {
		return ""
	}
	var sb strings.Builder
	for i, p := range v.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

// Reader returns an io.Reader over the encoded form.
func (v *Values) Reader() io.Reader {
	return strings.NewReader(v.Encode())
}
