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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesPreserveInsertionOrder(t *testing.T) {
	v := &Values{}
	v.Add("currency", "usd")
	v.Add("amount", "2000")
	v.Add("expand[]", "customer")
	v.Add("expand[]", "invoice")

	assert.Equal(t, "currency=usd&amount=2000&expand%5B%5D=customer&expand%5B%5D=invoice", v.Encode())
}

func TestValuesSetReplacesAll(t *testing.T) {
	v := &Values{}
	v.Add("limit", "10")
	v.Add("limit", "20")
	v.Set("limit", "30")

	assert.Equal(t, "30", v.Get("limit"))
	assert.Equal(t, "limit=30", v.Encode())
}

func TestValuesDel(t *testing.T) {
	v := &Values{}
	v.Add("a", "1")
	v.Add("b", "2")
	v.Del("a")

	assert.Equal(t, "", v.Get("a"))
	assert.Equal(t, "b=2", v.Encode())
}

func TestValuesCloneIsIndependent(t *testing.T) {
	v := &Values{}
	v.Add("a", "1")

	clone := v.Clone()
	clone.Add("b", "2")

	assert.Equal(t, "a=1", v.Encode())
	assert.Equal(t, "a=1&b=2", clone.Encode())
}

type createChargeParams struct {
	Amount         int64             `form:"amount"`
	Currency       string            `form:"currency"`
	Description    *string           `form:"description"`
	Capture        *bool             `form:"capture"`
	Metadata       map[string]string `form:"metadata"`
	Shipping       *shippingParams   `form:"shipping"`
	PaymentIgnored string            `form:"-"`
}

type shippingParams struct {
	Name    string        `form:"name"`
	Address addressParams `form:"address"`
}

type addressParams struct {
	Line1 string `form:"line1"`
	City  string `form:"city"`
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestMarshalFlatFields(t *testing.T) {
	v, err := Marshal(createChargeParams{Amount: 2000, Currency: "usd"})
	require.NoError(t, err)

	assert.Equal(t, "amount=2000&currency=usd", v.Encode())
}

func TestMarshalNilPointersOmitted(t *testing.T) {
	v, err := Marshal(createChargeParams{Amount: 100, Currency: "eur", Capture: boolPtr(false)})
	require.NoError(t, err)

	encoded := v.Encode()
	assert.NotContains(t, encoded, "description")
	assert.Contains(t, encoded, "capture=false")
}

func TestMarshalEmptyStringIsSent(t *testing.T) {
	// an empty string unsets the value server-side and must survive encoding.
	v, err := Marshal(createChargeParams{Amount: 100, Currency: "eur", Description: strPtr("")})
	require.NoError(t, err)

	assert.Contains(t, v.Encode(), "description=")
}

func TestMarshalNestedStruct(t *testing.T) {
	v, err := Marshal(createChargeParams{
		Amount:   100,
		Currency: "usd",
		Shipping: &shippingParams{
			Name:    "Jenny Rosen",
			Address: addressParams{Line1: "510 Townsend St", City: "San Francisco"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jenny Rosen", v.Get("shipping[name]"))
	assert.Equal(t, "510 Townsend St", v.Get("shipping[address][line1]"))
	assert.Equal(t, "San Francisco", v.Get("shipping[address][city]"))
}

func TestMarshalMap(t *testing.T) {
	v, err := Marshal(createChargeParams{
		Amount:   100,
		Currency: "usd",
		Metadata: map[string]string{"order_id": "6735", "shard": "eu-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "6735", v.Get("metadata[order_id]"))
	assert.Equal(t, "eu-1", v.Get("metadata[shard]"))
	// map keys are sorted so encoding is deterministic.
	assert.Contains(t, v.Encode(), "metadata%5Border_id%5D=6735&metadata%5Bshard%5D=eu-1")
}

func TestMarshalSlice(t *testing.T) {
	type listParams struct {
		Expand []string `form:"expand"`
	}
	v, err := Marshal(listParams{Expand: []string{"data.customer", "data.invoice"}})
	require.NoError(t, err)

	assert.Equal(t, "expand%5B%5D=data.customer&expand%5B%5D=data.invoice", v.Encode())
}

func TestMarshalSkipsDashTag(t *testing.T) {
	v, err := Marshal(createChargeParams{Amount: 1, Currency: "usd", PaymentIgnored: "nope"})
	require.NoError(t, err)

	assert.NotContains(t, v.Encode(), "nope")
}
