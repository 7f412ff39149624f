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

// Package page holds the envelope Stripe wraps every paginated collection in.
package page

import (
	"encoding/json"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/objcodec"
)

// List is one page of a collection: {"object":"list","data":[...],
// "has_more":bool,"url":"/v1/..."}. All four fields are required.
type List[T any] struct {
	Data    []T
	HasMore bool
	URL     string
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	obj, err := objcodec.Parse(data)
	if err != nil {
		return err
	}
	const typeName = "page.List"
	tag, err := obj.Discriminator(typeName)
	if err != nil {
		return err
	}
	if tag != "list" {
		return objcodec.UnknownDiscriminator(typeName, tag)
	}
	items, err := objcodec.Required[[]json.RawMessage](obj, typeName, "data")
	if err != nil {
		return err
	}
	decoded := make([]T, 0, len(items))
	for _, raw := range items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return err
		}
		decoded = append(decoded, item)
	}
	hasMore, err := objcodec.Required[bool](obj, typeName, "has_more")
	if err != nil {
		return err
	}
	url, err := objcodec.Required[string](obj, typeName, "url")
	if err != nil {
		return err
	}
	l.Data = decoded
	l.HasMore = hasMore
	l.URL = url
	return nil
}

func (l List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Object  string `json:"object"`
		Data    []T    `json:"data"`
		HasMore bool   `json:"has_more"`
		URL     string `json:"url"`
	}{Object: "list", Data: l.Data, HasMore: l.HasMore, URL: l.URL})
}
