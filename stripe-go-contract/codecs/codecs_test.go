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

package codecs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/form"
)

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}

	var buf bytes.Buffer
	require.NoError(t, JSON.Encode(&buf, payload{ID: "cus_1", Count: 3}))

	var out payload
	require.NoError(t, JSON.Decode(&buf, &out))
	assert.Equal(t, payload{ID: "cus_1", Count: 3}, out)
}

func TestJSONContentType(t *testing.T) {
	assert.Equal(t, "application/json", JSON.ContentType())
	assert.Equal(t, "application/json", JSON.Accept())
}

func TestFormURLEncodedValues(t *testing.T) {
	v := &form.Values{}
	v.Add("amount", "100")
	v.Add("metadata[order]", "6735")

	out, err := FormURLEncoded.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "amount=100&metadata%5Border%5D=6735", string(out))
}

func TestFormURLEncodedStruct(t *testing.T) {
	type params struct {
		Amount   int64  `form:"amount"`
		Currency string `form:"currency"`
	}

	var buf bytes.Buffer
	require.NoError(t, FormURLEncoded.Encode(&buf, params{Amount: 100, Currency: "usd"}))
	assert.Equal(t, "amount=100&currency=usd", buf.String())
	assert.Equal(t, "application/x-www-form-urlencoded", FormURLEncoded.ContentType())
}
