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

package page

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type charge struct {
	ID string `json:"id"`
}

func TestUnmarshalListEnvelope(t *testing.T) {
	var list List[charge]
	require.NoError(t, json.Unmarshal([]byte(`{
		"object": "list",
		"data": [{"id": "ch_1"}, {"id": "ch_2"}],
		"has_more": true,
		"url": "/v1/charges"
	}`), &list))

	require.Len(t, list.Data, 2)
	assert.Equal(t, "ch_1", list.Data[0].ID)
	assert.True(t, list.HasMore)
	assert.Equal(t, "/v1/charges", list.URL)
}

func TestUnmarshalRejectsWrongObject(t *testing.T) {
	var list List[charge]
	err := json.Unmarshal([]byte(`{"object":"search_result","data":[],"has_more":false,"url":"/v1/charges"}`), &list)
	require.Error(t, err)
}

func TestUnmarshalRequiresEnvelopeFields(t *testing.T) {
	for _, body := range []string{
		`{"object":"list","data":[],"url":"/v1/charges"}`,
		`{"object":"list","has_more":false,"url":"/v1/charges"}`,
		`{"object":"list","data":[],"has_more":false}`,
		`{"data":[],"has_more":false,"url":"/v1/charges"}`,
	} {
		var list List[charge]
		assert.Error(t, json.Unmarshal([]byte(body), &list), body)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	list := List[charge]{
		Data:    []charge{{ID: "ch_1"}},
		HasMore: false,
		URL:     "/v1/charges",
	}
	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `{"object":"list","data":[{"id":"ch_1"}],"has_more":false,"url":"/v1/charges"}`, string(data))
}

func TestEmptyList(t *testing.T) {
	var list List[charge]
	require.NoError(t, json.Unmarshal([]byte(`{"object":"list","data":[],"has_more":false,"url":"/v1/charges"}`), &list))
	assert.Empty(t, list.Data)
	assert.False(t, list.HasMore)
}
