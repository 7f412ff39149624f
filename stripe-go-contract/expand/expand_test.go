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

package expand_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlyon/async-stripe-go/stripe-go-contract/expand"
	"github.com/arlyon/async-stripe-go/stripe-go-contract/ids"
)

type customer struct {
	ID    ids.Customer `json:"id"`
	Email string       `json:"email"`
}

func (c customer) ObjectID() ids.Customer { return c.ID }

type charge struct {
	ID       ids.Charge                                `json:"id"`
	Customer expand.Expandable[ids.Customer, customer] `json:"customer"`
}

func TestUnmarshalIDState(t *testing.T) {
	var c charge
	require.NoError(t, json.Unmarshal([]byte(`{"id":"ch_1","customer":"cus_9s6XKzkNRiz8i3"}`), &c))

	assert.False(t, c.Customer.IsExpanded())
	assert.Equal(t, ids.Customer("cus_9s6XKzkNRiz8i3"), c.Customer.ObjectID())

	_, ok := c.Customer.Get()
	assert.False(t, ok)
}

func TestUnmarshalObjectState(t *testing.T) {
	var c charge
	require.NoError(t, json.Unmarshal([]byte(`{"id":"ch_1","customer":{"id":"cus_9s6XKzkNRiz8i3","email":"jenny@example.com"}}`), &c))

	assert.True(t, c.Customer.IsExpanded())
	assert.Equal(t, ids.Customer("cus_9s6XKzkNRiz8i3"), c.Customer.ObjectID())

	obj, ok := c.Customer.Get()
	require.True(t, ok)
	assert.Equal(t, "jenny@example.com", obj.Email)
}

func TestUnmarshalInvalidID(t *testing.T) {
	// the concrete ID type still validates inside the expandable.
	var c charge
	err := json.Unmarshal([]byte(`{"id":"ch_1","customer":"ch_123"}`), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ids.Customer")
}

func TestMarshalSymmetry(t *testing.T) {
	From := func(s string) expand.Expandable[ids.Customer, customer] {
		return expand.ID[ids.Customer, customer](ids.Customer(s))
	}

	data, err := json.Marshal(From("cus_1"))
	require.NoError(t, err)
	assert.Equal(t, `"cus_1"`, string(data))

	expanded := expand.Object[ids.Customer](customer{ID: "cus_1", Email: "jenny@example.com"})
	data, err = json.Marshal(expanded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"cus_1","email":"jenny@example.com"}`, string(data))

	var back expand.Expandable[ids.Customer, customer]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.IsExpanded())
}
